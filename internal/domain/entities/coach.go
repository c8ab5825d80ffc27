package entities

import "time"

// CoachRole identifies the author of a coach message
type CoachRole string

const (
	CoachRoleUser      CoachRole = "user"
	CoachRoleAssistant CoachRole = "assistant"
)

// MaxCoachMessageLength bounds a single message body
const MaxCoachMessageLength = 8000

// MaxCoachMessages bounds the message history accepted in one request
const MaxCoachMessages = 100

// CoachMessage is one turn of the follow-up coaching chat. A conversation is
// an ordered, append-only sequence of these.
type CoachMessage struct {
	ID        string    `json:"id"`
	Role      CoachRole `json:"role" validate:"oneof=user assistant"`
	Content   string    `json:"content" validate:"max=8000"`
	Timestamp time.Time `json:"timestamp"`
}
