package translation

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// Translator is the external translation service. Text is a block of
// newline-separated lines; the reply is expected to keep line count and order.
type Translator interface {
	Translate(ctx context.Context, src, dst language.Tag, text string) (string, error)
}

// Cache stores symbol translations for one source/destination pair.
type Cache interface {
	Get(ctx context.Context, symbol string) (string, bool)
	Set(ctx context.Context, symbol, translated string) error
}

// ErrDesync is returned when a batch reply does not line up with the request.
var ErrDesync = errors.New("translation desynchronized")

// DesyncError reports a batch whose reply line count differs from what was sent.
type DesyncError struct {
	Batch    int
	Sent     int
	Received int
}

func (e *DesyncError) Error() string {
	return fmt.Sprintf("batch %d: sent %d lines, received %d: %v", e.Batch, e.Sent, e.Received, ErrDesync)
}

func (e *DesyncError) Unwrap() error { return ErrDesync }
