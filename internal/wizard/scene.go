package wizard

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
)

// CancelData is the callback payload that aborts a conversation at any step.
const CancelData = "cancel"

// State is the key/value context a conversation accumulates.
type State map[string]string

func (s State) clone() State {
	out := make(State, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Event is one inbound update for an actor: a button press or a text message.
type Event struct {
	ActorID   int64
	Data      string
	Text      string
	IsButton  bool
	MessageID int
}

type Button struct {
	Text string
	Data string
}

type Prompt struct {
	Text    string
	Buttons [][]Button
}

// Step renders an optional prompt and consumes exactly one event.
type Step struct {
	Name   string
	Prompt func(state State) Prompt
	Handle func(state State, ev Event) error
}

// CompleteFunc receives the accumulated state once the last step succeeds.
type CompleteFunc func(ctx context.Context, actorID int64, state State) error

type Scene struct {
	Key   string
	Steps []Step
	// MaxRetries is how many times a step is re-entered on a validation error.
	// Zero terminates the conversation on the first bad input.
	MaxRetries int
	Complete   CompleteFunc
}

type ValidationError struct {
	Step    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("step %s: %s", e.Step, e.Message)
}

func Invalid(step, message string) error {
	return &ValidationError{Step: step, Message: message}
}

func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

// ParsePositiveDecimal accepts "199.99" and "199,99".
func ParsePositiveDecimal(text string) (float64, error) {
	text = strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", text)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, fmt.Errorf("%q must be greater than zero", text)
	}
	return v, nil
}

// ParseAbsoluteURL accepts http and https URLs with a host.
func ParseAbsoluteURL(text string) (string, error) {
	text = strings.TrimSpace(text)
	u, err := url.Parse(text)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return "", fmt.Errorf("%q is not an absolute URL", text)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	return u.String(), nil
}

func RequireText(ev Event, maxRunes int) (string, error) {
	if ev.IsButton {
		return "", errors.New("expected a text message")
	}
	text := strings.TrimSpace(ev.Text)
	if text == "" {
		return "", errors.New("text is empty")
	}
	if maxRunes > 0 && len([]rune(text)) > maxRunes {
		return "", fmt.Errorf("text is longer than %d characters", maxRunes)
	}
	return text, nil
}
