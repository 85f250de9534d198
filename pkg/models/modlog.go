package models

import "time"

// Action types registrables en el historial de moderación
const (
	ActionWarn   = "warn"
	ActionKick   = "kick"
	ActionBan    = "ban"
	ActionUnban  = "unban"
	ActionMute   = "mute"
	ActionUnmute = "unmute"
	ActionPurge  = "purge"
)

// CaseStatusActive is the default status of a freshly created case.
const CaseStatusActive = "active"

// ModLog representa un caso de moderación en la colección "modlogs".
// CaseNumber es único por servidor, empieza en 1 y nunca se reutiliza.
type ModLog struct {
	GuildID     string    `bson:"guildId" json:"guildId"`
	CaseNumber  int       `bson:"caseNumber" json:"caseNumber"`
	Type        string    `bson:"type" json:"type"`
	TargetID    string    `bson:"targetId" json:"targetId"`
	ModeratorID string    `bson:"moderatorId" json:"moderatorId"`
	Reason      string    `bson:"reason" json:"reason"`
	Duration    int64     `bson:"duration,omitempty" json:"duration,omitempty"` // en segundos, solo mute
	Evidence    string    `bson:"evidence,omitempty" json:"evidence,omitempty"`
	Status      string    `bson:"status" json:"status"`
	Timestamp   time.Time `bson:"timestamp" json:"timestamp"`
}

// ModLogFilter restringe una consulta de casos de moderación.
// CaseNumber > 0 limita el resultado a ese caso concreto.
type ModLogFilter struct {
	TargetID   string
	Type       string
	CaseNumber int
}

// CaseCounter es el documento de secuencia por servidor en la colección "counters".
// Seq se incrementa de forma atómica al asignar un nuevo número de caso.
type CaseCounter struct {
	GuildID string `bson:"guildId" json:"guildId"`
	Seq     int    `bson:"seq" json:"seq"`
}
