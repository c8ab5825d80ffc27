package coach

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	apperrors "github.com/stationprep/consult-assistant/errors"
	"github.com/stationprep/consult-assistant/internal/domain/entities"
	"github.com/stationprep/consult-assistant/internal/domain/repositories"
	"github.com/stationprep/consult-assistant/pkg/ai"
	"github.com/stationprep/consult-assistant/pkg/config"
)

const coachPersona = `You are an experienced OSCE examiner and communication skills coach for ophthalmology specialty training interviews. A candidate has just completed a simulated patient consultation and received a structured assessment of their performance. Your job is to help them understand the feedback and improve.

Guidelines:
- Be specific. Quote or paraphrase moments from the transcript when discussing what the candidate did.
- Tie advice back to the assessment dimensions rather than generic communication tips.
- Be encouraging but honest. Do not soften genuine red flags.
- Keep answers focused on the question asked. Offer concrete phrasings the candidate could have used.
- If asked about something outside the consultation or assessment, briefly redirect to the feedback session.`

// Service answers follow-up questions about a graded consultation, streaming
// the reply and persisting the conversation history after each exchange
type Service interface {
	Stream(ctx context.Context, req *StreamRequest, fn func(chunk string) error) error
	SaveConversation(ctx context.Context, conversationID string, caseID int, messages []entities.CoachMessage) error
}

// StreamRequest carries everything the coach needs for one reply. Assessment
// arrives already serialized by the client and is embedded verbatim.
type StreamRequest struct {
	MedicalCase *entities.MedicalCase
	Assessment  string
	Transcript  string
	Messages    []entities.CoachMessage
}

type coachService struct {
	geminiClient *ai.GeminiClient
	repo         repositories.CoachRepository
	cfg          *config.Config
	logger       *zap.Logger
}

// NewService constructs the coach service
func NewService(geminiClient *ai.GeminiClient, repo repositories.CoachRepository, cfg *config.Config, logger *zap.Logger) Service {
	return &coachService{
		geminiClient: geminiClient,
		repo:         repo,
		cfg:          cfg,
		logger:       logger,
	}
}

// Stream generates a coach reply to the latest user message and forwards each
// text chunk to fn as it arrives
func (s *coachService) Stream(ctx context.Context, req *StreamRequest, fn func(chunk string) error) error {
	instruction, err := BuildSystemInstruction(req.MedicalCase, req.Assessment, req.Transcript)
	if err != nil {
		return err
	}

	contents := make([]string, 0, len(req.Messages))
	for _, m := range req.Messages {
		contents = append(contents, string(m.Role)+": "+m.Content)
	}

	if err := s.geminiClient.StreamGenerate(ctx, instruction, contents, s.cfg.Gemini.CoachModel, fn); err != nil {
		return apperrors.ErrUpstream("gemini", err)
	}
	return nil
}

// SaveConversation stores the full message history for a conversation,
// replacing any earlier snapshot
func (s *coachService) SaveConversation(ctx context.Context, conversationID string, caseID int, messages []entities.CoachMessage) error {
	blob, err := json.Marshal(messages)
	if err != nil {
		return apperrors.ErrPersistence(err)
	}

	conversation := &entities.CoachConversation{
		ID:             uuid.New(),
		ConversationID: conversationID,
		CaseID:         caseID,
		Messages:       datatypes.JSON(blob),
	}
	if err := s.repo.Upsert(ctx, conversation); err != nil {
		return apperrors.ErrPersistence(err)
	}

	s.logger.Debug("coach conversation saved",
		zap.String("conversation_id", conversationID),
		zap.Int("messages", len(messages)),
	)
	return nil
}

// BuildSystemInstruction assembles the coach prompt from the persona and the
// consultation context. Sections are labelled so the model can reference them.
func BuildSystemInstruction(medicalCase *entities.MedicalCase, assessment string, transcript string) (string, error) {
	sections := []string{coachPersona}

	if medicalCase != nil {
		caseJSON, err := json.MarshalIndent(medicalCase, "", "  ")
		if err != nil {
			return "", apperrors.ErrInternal(err)
		}
		sections = append(sections, "=== CASE CONTEXT ===\n"+string(caseJSON))
	}

	if assessment != "" {
		sections = append(sections, "=== ASSESSMENT ===\n"+assessment)
	}

	if transcript != "" {
		sections = append(sections, "=== TRANSCRIPT ===\n"+transcript)
	}

	return strings.Join(sections, "\n\n"), nil
}
