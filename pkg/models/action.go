package models

// ModActionEvent es el evento que se publica tras cada acción de moderación
// exitosa. Lo consumen el feed websocket y el tópico MQTT de auditoría.
type ModActionEvent struct {
	ID        string `json:"id"`
	Action    string `json:"action"`
	GuildID   string `json:"guildId"`
	ChannelID string `json:"channelId"`
	Moderator string `json:"moderator"`
	TargetID  string `json:"targetId,omitempty"`
	TargetTag string `json:"targetTag,omitempty"`
	Reason    string `json:"reason,omitempty"`
	Timestamp int64  `json:"timestamp"`
}
