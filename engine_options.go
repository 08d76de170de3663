package mediaview

import (
	"fmt"
	"log/slog"
	"math"
)

// EngineOption is a functional option for configuring an Engine.
type EngineOption func(*Engine) error

// WithLogger routes the engine's stage records to l.
// By default records go to the process debug logger, which is silent
// unless MEDIAVIEW_DEBUG is set.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) error {
		if l == nil {
			return fmt.Errorf("logger must not be nil")
		}
		e.logger = l
		return nil
	}
}

// WithAttachmentHeightRatio sets the share of the available height the
// attachment may occupy. Default is 0.9. Valid range is (0, 1].
func WithAttachmentHeightRatio(ratio float64) EngineOption {
	return func(e *Engine) error {
		if math.IsNaN(ratio) || ratio <= 0 || ratio > 1 {
			return fmt.Errorf("attachment height ratio must be in (0, 1], got %v", ratio)
		}
		e.attachmentHeightRatio = ratio
		return nil
	}
}
