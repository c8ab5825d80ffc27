package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/stationprep/consult-assistant/errors"
	"github.com/stationprep/consult-assistant/internal/adapter/dto/consult"
	"github.com/stationprep/consult-assistant/internal/domain/entities"
	coachUsecase "github.com/stationprep/consult-assistant/internal/usecase/coach"
)

// saveTimeout bounds the fire-and-forget history write after a stream ends
const saveTimeout = 10 * time.Second

// Coach handles the follow-up chat about a graded consultation
type Coach struct {
	service coachUsecase.Service
	logger  *zap.Logger
}

// NewCoachHandler creates a new coach handler
func NewCoachHandler(service coachUsecase.Service, logger *zap.Logger) *Coach {
	return &Coach{
		service: service,
		logger:  logger,
	}
}

// Chat handles POST /chat
// @Summary      Ask the coach about a graded consultation
// @Description  Streams the coach reply as plain text chunks. The client resends the full message history on every exchange.
// @Tags         Coach
// @Accept       json
// @Produce      plain
// @Param        request  body  consult.ChatRequest  true  "Chat request"
// @Success      200      {string}  string  "Streamed reply"
// @Failure      400      {object}  map[string]interface{}  "Invalid request or validation failed"
// @Failure      502      {object}  map[string]interface{}  "Upstream provider failed"
// @Router       /chat [post]
func (h *Coach) Chat(c echo.Context) error {
	var req consult.ChatRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload(err))
	}

	h.logger.Info("coach chat requested",
		zap.String("request_id", getRequestID(c)),
		zap.String("conversation_id", req.ConversationID),
		zap.Int("messages", len(req.Messages)),
	)

	streamReq := &coachUsecase.StreamRequest{
		MedicalCase: req.MedicalCase,
		Assessment:  req.Assessment,
		Transcript:  req.Transcript,
		Messages:    req.Messages,
	}

	// The status stays uncommitted until the first chunk arrives so a
	// failure before any output still gets a proper error response
	resp := c.Response()
	var reply strings.Builder
	err := h.service.Stream(c.Request().Context(), streamReq, func(chunk string) error {
		if !resp.Committed {
			resp.Header().Set(echo.HeaderContentType, "text/plain; charset=utf-8")
			resp.WriteHeader(http.StatusOK)
		}
		if _, werr := resp.Write([]byte(chunk)); werr != nil {
			return werr
		}
		resp.Flush()
		reply.WriteString(chunk)
		return nil
	})
	if err != nil {
		if !resp.Committed {
			return HandleError(h.logger, c, err)
		}
		// Headers are already gone; the broken stream is the error signal
		h.logger.Error("coach stream failed",
			zap.String("request_id", getRequestID(c)),
			zap.String("conversation_id", req.ConversationID),
			zap.Error(err),
		)
		return nil
	}

	// Anonymous exchanges are not persisted
	if req.ConversationID == "" {
		return nil
	}

	history := req.Messages
	if reply.Len() > 0 {
		history = append(history, entities.CoachMessage{
			ID:        uuid.NewString(),
			Role:      entities.CoachRoleAssistant,
			Content:   reply.String(),
			Timestamp: time.Now(),
		})
	}

	// History write happens off the request path so a slow database never
	// delays the final chunk
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		if err := h.service.SaveConversation(ctx, req.ConversationID, req.MedicalCase.ID, history); err != nil {
			h.logger.Warn("coach history save failed",
				zap.String("conversation_id", req.ConversationID),
				zap.Error(err),
			)
		}
	}()

	return nil
}
