package warns

import (
	"sync"

	"github.com/PancyStudios/PancyModGo/pkg/database"
	"github.com/PancyStudios/PancyModGo/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
)

// MongoStore persists warn history through the warns DataManager. Writes to
// the same (guild, user) key are serialized with a striped lock so the
// read-append-write cycle stays atomic from the caller's point of view.
type MongoStore struct {
	dm    *database.DataManager[models.WarnsDocument]
	locks [64]sync.Mutex
}

// NewMongoStore creates a MongoStore over the given DataManager
func NewMongoStore(dm *database.DataManager[models.WarnsDocument]) *MongoStore {
	return &MongoStore{dm: dm}
}

func (s *MongoStore) lockFor(guildID, userID string) *sync.Mutex {
	h := uint32(2166136261)
	for _, c := range []byte(guildID + "/" + userID) {
		h = (h ^ uint32(c)) * 16777619
	}
	return &s.locks[h%uint32(len(s.locks))]
}

func warnQuery(guildID, userID string) bson.M {
	return bson.M{"guildId": guildID, "userId": userID}
}

// Record appends a warn and returns the new total for the user
func (s *MongoStore) Record(guildID, userID, reason, moderatorTag string) (int, models.Warn, error) {
	warn := newWarn(reason, moderatorTag)

	mu := s.lockFor(guildID, userID)
	mu.Lock()
	defer mu.Unlock()

	query := warnQuery(guildID, userID)

	doc, err := s.dm.Get(query)
	if err != nil {
		return 0, models.Warn{}, err
	}
	if doc == nil {
		doc = &models.WarnsDocument{GuildID: guildID, UserID: userID}
	}

	doc.Warns = append(doc.Warns, warn)

	updated, err := s.dm.Set(query, doc)
	if err != nil {
		return 0, models.Warn{}, err
	}
	return len(updated.Warns), warn, nil
}

// List returns the user's warns in insertion order
func (s *MongoStore) List(guildID, userID string) ([]models.Warn, error) {
	doc, err := s.dm.Get(warnQuery(guildID, userID))
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return []models.Warn{}, nil
	}
	return doc.Warns, nil
}

// Count returns the number of warns recorded for the user
func (s *MongoStore) Count(guildID, userID string) (int, error) {
	list, err := s.List(guildID, userID)
	if err != nil {
		return 0, err
	}
	return len(list), nil
}
