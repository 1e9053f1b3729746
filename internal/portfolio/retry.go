package portfolio

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tahmid/folio/internal/apperr"
)

// Terminal user-facing messages for failed saves.
const (
	MsgNoResponse     = "No response from server. Please try again."
	MsgGenericFailure = "Error saving data. Please try again."
)

// SavePolicy wraps a save call with bounded retries: Attempts total tries
// with Delay between them, stopping at the first success.
type SavePolicy struct {
	Attempts int
	Delay    time.Duration

	sleep func(context.Context, time.Duration) error
}

// NewSavePolicy returns the default policy: 3 attempts, 1 second apart.
func NewSavePolicy() SavePolicy {
	return SavePolicy{
		Attempts: 3,
		Delay:    time.Second,
		sleep:    sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Do runs save until it succeeds or the attempts are exhausted, returning
// the last error. A cancelled context stops the retries early.
func (p SavePolicy) Do(ctx context.Context, save func(context.Context) error) error {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}
	sleep := p.sleep
	if sleep == nil {
		sleep = sleepCtx
	}

	var last error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			if err := sleep(ctx, p.Delay); err != nil {
				return fmt.Errorf("save aborted: %w", err)
			}
		}
		if last = save(ctx); last == nil {
			return nil
		}
	}
	return last
}

// UserMessage classifies a terminal save error into the short text shown to
// the admin. A response-carrying error yields the server's message (or a
// status-coded generic), a request that got no response yields the
// connectivity message, anything else the generic failure text.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, apperr.ErrNoResponse) {
		return MsgNoResponse
	}
	var re *RequestError
	if errors.As(err, &re) {
		if re.Message != "" {
			return re.Message
		}
		return fmt.Sprintf("Request failed with status %d. Please try again.", re.StatusCode)
	}
	if errors.Is(err, apperr.ErrNotFound) {
		return "The requested item could not be found."
	}
	return MsgGenericFailure
}
