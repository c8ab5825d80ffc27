package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func run(t *testing.T, headers map[string]string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	handler := RequestID()(func(c echo.Context) error {
		seen = c.Request().Header.Get(HeaderRequestID)
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return rec, seen
}

func TestRequestID_PropagatesIncoming(t *testing.T) {
	rec, seen := run(t, map[string]string{HeaderRequestID: "req-42"})
	if seen != "req-42" {
		t.Fatalf("handler saw %q", seen)
	}
	if got := rec.Header().Get(HeaderRequestID); got != "req-42" {
		t.Fatalf("response carries %q", got)
	}
}

func TestRequestID_AcceptsCorrelationAlias(t *testing.T) {
	rec, seen := run(t, map[string]string{HeaderCorrelationID: "corr-7"})
	if seen != "corr-7" {
		t.Fatalf("handler saw %q", seen)
	}
	if got := rec.Header().Get(HeaderRequestID); got != "corr-7" {
		t.Fatalf("response carries %q", got)
	}
}

func TestRequestID_MintsWhenAbsent(t *testing.T) {
	rec, seen := run(t, nil)
	if seen == "" {
		t.Fatal("no id minted")
	}
	if got := rec.Header().Get(HeaderRequestID); got != seen {
		t.Fatalf("response id %q differs from request id %q", got, seen)
	}
}
