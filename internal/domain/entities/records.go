package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AssessmentRecord is the persisted form of a graded consultation. The
// assessment itself is stored as a JSONB blob keyed by the voice-platform
// conversation id.
type AssessmentRecord struct {
	ID             uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ConversationID string         `json:"conversation_id" gorm:"type:varchar(255);not null;index"`
	CaseID         int            `json:"case_id" gorm:"not null"`
	Transcript     string         `json:"transcript" gorm:"type:text"`
	Assessment     datatypes.JSON `json:"assessment" gorm:"type:jsonb"`
	CreatedAt      time.Time      `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (AssessmentRecord) TableName() string {
	return "assessments"
}

// NewAssessmentRecord creates a record ready for insert
func NewAssessmentRecord(conversationID string, caseID int, transcript string, assessment datatypes.JSON) *AssessmentRecord {
	return &AssessmentRecord{
		ID:             uuid.New(),
		ConversationID: conversationID,
		CaseID:         caseID,
		Transcript:     transcript,
		Assessment:     assessment,
		CreatedAt:      time.Now(),
	}
}

// CoachConversation is the persisted coaching chat, keyed uniquely by
// conversation id. The full message array is replaced on every upsert
// (last write wins).
type CoachConversation struct {
	ID             uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ConversationID string         `json:"conversation_id" gorm:"type:varchar(255);not null;uniqueIndex"`
	CaseID         int            `json:"case_id"`
	Messages       datatypes.JSON `json:"messages" gorm:"type:jsonb"`
	CreatedAt      time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (CoachConversation) TableName() string {
	return "coach_conversations"
}
