package assessment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	apperrors "github.com/stationprep/consult-assistant/errors"
	"github.com/stationprep/consult-assistant/internal/domain/entities"
	"github.com/stationprep/consult-assistant/internal/domain/repositories"
	"github.com/stationprep/consult-assistant/internal/infrastructure/cache"
	"github.com/stationprep/consult-assistant/pkg/ai"
	"github.com/stationprep/consult-assistant/pkg/config"
)

// Service orchestrates the assessment pipeline: transcript retrieval,
// schema-constrained generation with validation retries, and persistence
type Service interface {
	Assess(ctx context.Context, conversationID string, medicalCase *entities.MedicalCase) (*Result, error)
	FetchTranscript(ctx context.Context, conversationID string) (string, error)
}

// Result is the user-facing outcome of grading one conversation
type Result struct {
	Transcript string               `json:"transcript"`
	Assessment *entities.Assessment `json:"assessment"`
}

type assessmentService struct {
	voiceClient  *ai.ElevenLabsClient
	geminiClient *ai.GeminiClient
	repo         repositories.AssessmentRepository
	transcripts  cache.Store
	cfg          *config.Config
	logger       *zap.Logger
}

// NewService constructs the assessment service
func NewService(
	voiceClient *ai.ElevenLabsClient,
	geminiClient *ai.GeminiClient,
	repo repositories.AssessmentRepository,
	transcripts cache.Store,
	cfg *config.Config,
	logger *zap.Logger,
) Service {
	return &assessmentService{
		voiceClient:  voiceClient,
		geminiClient: geminiClient,
		repo:         repo,
		transcripts:  transcripts,
		cfg:          cfg,
		logger:       logger,
	}
}

// Assess runs the full pipeline for one finished conversation. A conversation
// that was already graded is served from storage, so a retried request does
// not re-run the model.
func (s *assessmentService) Assess(ctx context.Context, conversationID string, medicalCase *entities.MedicalCase) (*Result, error) {
	if stored := s.storedResult(ctx, conversationID); stored != nil {
		return stored, nil
	}

	transcript, err := s.FetchTranscript(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	caseJSON, err := json.Marshal(medicalCase)
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}

	result, err := s.generateWithRetries(ctx, assessmentSystemInstruction, []string{string(caseJSON), transcript})
	if err != nil {
		return nil, err
	}

	// Best-effort write: the assessment is the deliverable, a failed insert
	// must not turn a graded conversation into a 5xx
	if err := s.persist(ctx, conversationID, medicalCase.ID, transcript, result); err != nil {
		s.logger.Warn("assessment persist failed",
			zap.String("conversation_id", conversationID),
			zap.Error(err),
		)
	}

	return &Result{Transcript: transcript, Assessment: result}, nil
}

// storedResult returns the persisted outcome for an already-graded
// conversation, or nil when none is usable. Lookup failures degrade to a
// fresh run rather than failing the request.
func (s *assessmentService) storedResult(ctx context.Context, conversationID string) *Result {
	record, err := s.repo.FindByConversationID(ctx, conversationID)
	if err != nil {
		s.logger.Warn("stored assessment lookup failed",
			zap.String("conversation_id", conversationID),
			zap.Error(err),
		)
		return nil
	}
	if record == nil {
		return nil
	}

	var stored entities.Assessment
	if err := json.Unmarshal(record.Assessment, &stored); err != nil || !stored.Validate() {
		return nil
	}

	s.logger.Info("assessment served from storage",
		zap.String("conversation_id", conversationID),
		zap.String("record_id", record.ID.String()),
	)
	return &Result{Transcript: record.Transcript, Assessment: &stored}
}

// FetchTranscript polls the voice platform until the conversation finishes or
// the wall-clock budget is exhausted. A finished transcript is cached so a
// retried request does not re-poll the provider.
func (s *assessmentService) FetchTranscript(ctx context.Context, conversationID string) (string, error) {
	cacheKey := "transcript:" + conversationID
	if cached, ok, err := s.transcripts.Get(ctx, cacheKey); err == nil && ok {
		s.logger.Debug("transcript cache hit", zap.String("conversation_id", conversationID))
		return cached, nil
	}

	p := s.cfg.Pipeline
	deadline := time.Now().Add(time.Duration(p.TranscriptPollMaxMs) * time.Millisecond)

	for attempt := 0; ; attempt++ {
		conv, err := s.voiceClient.GetConversation(ctx, conversationID)
		if err != nil {
			return "", apperrors.ErrUpstream("elevenlabs", err)
		}

		if conv.Status == ai.ConversationStatusDone {
			transcript, err := SynthesizeTranscript(conv.Transcript)
			if err != nil {
				// Contract violation, not transient unavailability
				return "", apperrors.ErrInvalidUpstreamShape("elevenlabs", err.Error())
			}
			if transcript != "" {
				if err := s.transcripts.Set(ctx, cacheKey, transcript, s.cfg.Pipeline.TranscriptCacheTTL); err != nil {
					s.logger.Warn("transcript cache write failed", zap.Error(err))
				}
				return transcript, nil
			}
			// Finished but empty: keep polling inside the budget, the
			// provider occasionally reports done before the text lands
		}

		if time.Now().After(deadline) {
			return "", apperrors.ErrTranscriptNotReady(conversationID)
		}

		delay := PollDelay(attempt, p.TranscriptPollBaseMs, p.TranscriptPollMaxDelayMs)
		s.logger.Debug("transcript not ready, backing off",
			zap.String("conversation_id", conversationID),
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay),
		)

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay):
		}
	}
}

// generateWithRetries drives the validation-retry loop. Attempt 1 uses the
// base instruction verbatim; later attempts append the corrective reminder.
// Transport failures inside an attempt are retried by their own exponential
// policy before counting against the attempt budget.
func (s *assessmentService) generateWithRetries(ctx context.Context, baseInstruction string, contents []string) (*entities.Assessment, error) {
	p := s.cfg.Pipeline
	schema := entities.AssessmentJSONSchema()

	var lastErr error
	for attempt := 1; attempt <= p.GenMaxAttempts; attempt++ {
		instruction := baseInstruction
		if attempt > 1 {
			instruction = baseInstruction + "\n\n" + retryReminder
		}

		var rawText string
		var parsed map[string]interface{}
		generate := func() error {
			var err error
			rawText, parsed, err = s.geminiClient.GenerateJSON(ctx, instruction, contents, s.cfg.Gemini.AssessmentModel, schema)
			return err
		}

		if err := backoff.Retry(generate, backoff.WithContext(s.transportBackOff(), ctx)); err != nil {
			return nil, apperrors.ErrUpstream("gemini", err)
		}

		if result := NormalizeAssessment(parsed); result != nil {
			s.logger.Info("assessment validated",
				zap.Int("attempt", attempt),
				zap.Int("raw_length", len(rawText)),
			)
			return result, nil
		}

		lastErr = fmt.Errorf("attempt %d produced output that failed validation", attempt)
		s.logger.Warn("model output failed validation",
			zap.Int("attempt", attempt),
			zap.Int("raw_length", len(rawText)),
		)

		if attempt < p.GenMaxAttempts {
			delay := time.Duration(p.GenInitialDelayMs+attempt*p.GenDelayIncrementMs) * time.Millisecond
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return nil, apperrors.ErrGenerationExhausted(p.GenMaxAttempts, lastErr)
}

// transportBackOff is the retry policy for transient provider failures (rate
// limiting, 5xx). Distinct from the linear validation-retry backoff above.
func (s *assessmentService) transportBackOff() *backoff.ExponentialBackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 1 * time.Second
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = time.Duration(s.cfg.Pipeline.LLMTransportMaxElapsedMs) * time.Millisecond
	return bo
}

func (s *assessmentService) persist(ctx context.Context, conversationID string, caseID int, transcript string, result *entities.Assessment) error {
	blob, err := json.Marshal(result)
	if err != nil {
		return apperrors.ErrPersistence(err)
	}

	record := entities.NewAssessmentRecord(conversationID, caseID, transcript, datatypes.JSON(blob))
	if err := s.repo.Insert(ctx, record); err != nil {
		return apperrors.ErrPersistence(err)
	}

	s.logger.Info("assessment stored",
		zap.String("conversation_id", conversationID),
		zap.String("record_id", record.ID.String()),
	)
	return nil
}
