package assessment

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/stationprep/consult-assistant/pkg/ai"
)

// PollDelay computes the full-jitter backoff delay for one polling attempt:
// a random duration in [0, min(maxDelayMs, baseMs*2^attempt)].
func PollDelay(attempt, baseMs, maxDelayMs int) time.Duration {
	if baseMs <= 0 {
		return 0
	}

	capMs := maxDelayMs
	// Shifted base overflows quickly; clamp once it passes the cap
	if attempt < 31 && baseMs<<attempt < capMs {
		capMs = baseMs << attempt
	}
	if capMs <= 0 {
		return 0
	}
	return time.Duration(rand.Int63n(int64(capMs)+1)) * time.Millisecond
}

// SynthesizeTranscript renders a provider transcript payload as line-oriented
// text. An array of turns becomes one "Agent: ..." / "User: ..." line per
// turn; a plain string passes through. A missing or null field yields an
// empty transcript, the provider sends that while text is still landing.
// Any other shape is a contract violation.
func SynthesizeTranscript(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}

	var turns []ai.ConversationTurn
	if err := json.Unmarshal(raw, &turns); err == nil {
		lines := make([]string, 0, len(turns))
		for _, t := range turns {
			lines = append(lines, strings.TrimSpace(fmt.Sprintf("%s: %s", speakerLabel(t.Role), t.Message)))
		}
		return strings.Join(lines, "\n"), nil
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text, nil
	}

	return "", fmt.Errorf("transcript is neither an array of turns nor a string")
}

// speakerLabel normalizes provider roles case-insensitively; unrecognized
// roles pass through verbatim
func speakerLabel(role string) string {
	switch strings.ToLower(role) {
	case "agent":
		return "Agent"
	case "user":
		return "User"
	default:
		if role == "" {
			return "Unknown"
		}
		return role
	}
}
