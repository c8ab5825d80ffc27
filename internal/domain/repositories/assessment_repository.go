package repositories

import (
	"context"

	"github.com/stationprep/consult-assistant/internal/domain/entities"
)

// AssessmentRepository persists graded consultations
type AssessmentRepository interface {
	Insert(ctx context.Context, record *entities.AssessmentRecord) error
	FindByConversationID(ctx context.Context, conversationID string) (*entities.AssessmentRecord, error)
}

// CoachRepository persists coaching conversations, keyed uniquely by
// conversation id. The client resends the full history on every exchange,
// so nothing reads conversations back.
type CoachRepository interface {
	Upsert(ctx context.Context, conversation *entities.CoachConversation) error
}
