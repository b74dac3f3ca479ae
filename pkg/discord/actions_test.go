package discord

import "testing"

func TestClampFetchAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount int
		want   int
	}{
		{"under the limit", 5, 5},
		{"at the limit", 100, 100},
		{"one over", 101, 100},
		{"far over", 500, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampFetchAmount(tt.amount); got != tt.want {
				t.Errorf("clampFetchAmount(%d) = %d, want %d", tt.amount, got, tt.want)
			}
		})
	}
}
