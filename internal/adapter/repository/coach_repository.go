package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/stationprep/consult-assistant/internal/domain/entities"
	repo "github.com/stationprep/consult-assistant/internal/domain/repositories"
)

// CoachRepository implements the coach repository interface using GORM
type CoachRepository struct {
	db *gorm.DB
}

// NewCoachRepository creates a new coach repository
func NewCoachRepository(db *gorm.DB) repo.CoachRepository {
	return &CoachRepository{db: db}
}

// Upsert replaces the stored conversation keyed by conversation id. The full
// message array is overwritten, last write wins.
func (r *CoachRepository) Upsert(ctx context.Context, conversation *entities.CoachConversation) error {
	q := `INSERT INTO coach_conversations (id, conversation_id, case_id, messages, created_at, updated_at)
        VALUES (?, ?, ?, ?::jsonb, ?, ?)
        ON CONFLICT (conversation_id) DO UPDATE SET messages = EXCLUDED.messages, case_id = EXCLUDED.case_id, updated_at = NOW()`

	now := time.Now()
	if err := r.db.WithContext(ctx).Exec(
		q,
		conversation.ID,
		conversation.ConversationID,
		conversation.CaseID,
		string(conversation.Messages),
		now,
		now,
	).Error; err != nil {
		return fmt.Errorf("failed to upsert coach conversation: %w", err)
	}
	return nil
}
