package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/stationprep/consult-assistant/internal/domain/entities"
	repo "github.com/stationprep/consult-assistant/internal/domain/repositories"
)

// AssessmentRepository implements the assessment repository interface using GORM
type AssessmentRepository struct {
	db *gorm.DB
}

// NewAssessmentRepository creates a new assessment repository
func NewAssessmentRepository(db *gorm.DB) repo.AssessmentRepository {
	return &AssessmentRepository{db: db}
}

// Insert stores a graded consultation
func (r *AssessmentRepository) Insert(ctx context.Context, record *entities.AssessmentRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to insert assessment: %w", err)
	}
	return nil
}

// FindByConversationID returns the most recent assessment for a conversation
func (r *AssessmentRepository) FindByConversationID(ctx context.Context, conversationID string) (*entities.AssessmentRecord, error) {
	var record entities.AssessmentRecord
	if err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC").
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find assessment: %w", err)
	}
	return &record, nil
}
