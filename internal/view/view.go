package view

import (
	"errors"
	"fmt"
)

// Engine names accepted by New.
const (
	EngineInline   = "inline"
	EngineTemplate = "template"
)

var (
	ErrUnknownEngine = errors.New("unknown view engine")
	ErrNoTemplate    = errors.New("template not available")
)

// Renderer produces the HTML bodies served by the greeting routes.
// Implementations are safe for concurrent use.
type Renderer interface {
	// Index renders the root page for the given user agent.
	Index(userAgent string) (string, error)
	// User renders the greeting page for name.
	User(name string) (string, error)
	// Home renders the static home page. Engines without one return ErrNoTemplate.
	Home() (string, error)
	// HasHome reports whether Home can succeed.
	HasHome() bool
	// Name returns the engine name.
	Name() string
}

// New returns the renderer registered under engine.
func New(engine string) (Renderer, error) {
	switch engine {
	case EngineInline:
		return NewInline(), nil
	case EngineTemplate:
		return NewTemplate()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, engine)
	}
}
