package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// HeaderRequestID carries the per-request identifier
	HeaderRequestID = "X-Request-ID"
	// HeaderCorrelationID is accepted as an alias from clients that use it
	HeaderCorrelationID = "X-Correlation-ID"
)

// RequestID propagates an incoming X-Request-ID (or X-Correlation-ID), minting
// one when absent, and echoes it on the response so clients can correlate logs
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			id := req.Header.Get(HeaderRequestID)
			if id == "" {
				id = req.Header.Get(HeaderCorrelationID)
			}
			if id == "" {
				id = uuid.NewString()
			}

			// Normalize so downstream code only looks in one place
			req.Header.Set(HeaderRequestID, id)
			c.Response().Header().Set(HeaderRequestID, id)

			return next(c)
		}
	}
}
