package mediaview

import (
	"log/slog"

	"github.com/grindlemire/mediaview/internal/debug"
)

// DefaultAttachmentHeightRatio is the share of the available height the
// attachment may occupy.
const DefaultAttachmentHeightRatio = 0.9

// Engine lays out media cards. It holds only configuration, so a single
// Engine may serve any number of containers, including from several
// goroutines at once. Each container's children must not be laid out
// concurrently.
type Engine struct {
	logger                *slog.Logger
	attachmentHeightRatio float64
}

var defaultEngine = &Engine{attachmentHeightRatio: DefaultAttachmentHeightRatio}

// NewEngine creates an Engine with the given options applied over the defaults.
func NewEngine(opts ...EngineOption) (*Engine, error) {
	e := &Engine{attachmentHeightRatio: DefaultAttachmentHeightRatio}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Layout measures and places the four children of c using the default engine.
func Layout(c Container, children []Child) (Placements, error) {
	return defaultEngine.Layout(c, children)
}

// MustLayout is like Layout but panics on a precondition violation.
func MustLayout(c Container, children []Child) Placements {
	return defaultEngine.MustLayout(c, children)
}

// Layout measures and places children in the fixed order attachment, title,
// description, icon, and returns the committed rectangles.
//
// children must hold exactly ChildCount non-nil entries indexed by Role.
// Otherwise Layout returns a *PreconditionError without calling any child.
func (e *Engine) Layout(c Container, children []Child) (Placements, error) {
	if err := checkChildren(children); err != nil {
		e.log().Error("layout aborted", "error", err)
		return Placements{}, err
	}

	f := newFrame(c)
	att := e.placeAttachment(f, children[RoleAttachment])
	stack := e.placeTextStack(f, att, children[RoleTitle], children[RoleDescription])
	icon := e.placeIcon(f, att, stack, children[RoleIcon])

	return Placements{
		Attachment:  att.rect,
		Title:       stack.title,
		Description: stack.description,
		Icon:        icon,
	}, nil
}

// MustLayout is like Layout but panics on a precondition violation.
// Use it where a wrong child count is a programming error in the host.
func (e *Engine) MustLayout(c Container, children []Child) Placements {
	p, err := e.Layout(c, children)
	if err != nil {
		panic(err)
	}
	return p
}

func (e *Engine) log() *slog.Logger {
	if e.logger != nil {
		return e.logger
	}
	return debug.Logger()
}
