package consult

import (
	"github.com/stationprep/consult-assistant/internal/domain/entities"
)

// AssessRequest asks for a finished consultation to be graded. The client
// sends the case it practised against verbatim; the server does not resolve
// it from the catalogue.
type AssessRequest struct {
	ConversationID string                `json:"conversationId" validate:"required,min=1,max=255"`
	MedicalCase    *entities.MedicalCase `json:"medicalCase" validate:"required"`
}

// ChatRequest carries the full consultation context plus the message history
// for one coach exchange. The server is stateless between exchanges; the
// client resends the history every time. Assessment arrives pre-serialized.
type ChatRequest struct {
	// ConversationID is optional; without it the exchange is not persisted
	ConversationID string                  `json:"conversationId,omitempty" validate:"omitempty,max=255"`
	Messages       []entities.CoachMessage `json:"messages" validate:"required,min=1,max=100,dive"`
	Transcript     string                  `json:"transcript,omitempty"`
	Assessment     string                  `json:"assessment,omitempty"`
	MedicalCase    *entities.MedicalCase   `json:"medicalCase" validate:"required"`
}
