package models

// Warn representa una advertencia individual registrada contra un usuario
type Warn struct {
	ID        string `bson:"id" json:"id"`
	Reason    string `bson:"reason" json:"reason"`
	Moderator string `bson:"moderator" json:"moderator"`
	Timestamp int64  `bson:"timestamp" json:"timestamp"`
}

// WarnsDocument representa el documento completo en la colección "warns"
// Clave compuesta: guildId + userId
type WarnsDocument struct {
	GuildID string `bson:"guildId" json:"guildId"`
	UserID  string `bson:"userId" json:"userId"`
	Warns   []Warn `bson:"warns" json:"warns"`
}
