package service

import (
	"context"
	"errors"
	"fmt"

	"helloweb/internal/view"
)

var (
	ErrRendererNil     = errors.New("renderer is nil")
	ErrHomeUnavailable = errors.New("home page not available")
)

// GreetingService defines the use cases behind the HTML routes.
type GreetingService interface {
	// Index renders the root page echoing the caller's user agent.
	Index(ctx context.Context, userAgent string) (string, error)

	// User renders a greeting for name. Any string is accepted, including the empty one.
	User(ctx context.Context, name string) (string, error)

	// Home renders the static home page, or ErrHomeUnavailable if the engine has none.
	Home(ctx context.Context) (string, error)

	// HomeEnabled reports whether Home is served at all.
	HomeEnabled() bool
}

// greetingService is a concrete implementation of GreetingService.
type greetingService struct {
	renderer view.Renderer
}

// NewGreetingService constructs a new GreetingService.
func NewGreetingService(r view.Renderer) (GreetingService, error) {
	if r == nil {
		return nil, ErrRendererNil
	}
	return &greetingService{renderer: r}, nil
}

func (s *greetingService) Index(ctx context.Context, userAgent string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	out, err := s.renderer.Index(userAgent)
	if err != nil {
		return "", fmt.Errorf("render index: %w", err)
	}
	return out, nil
}

func (s *greetingService) User(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	out, err := s.renderer.User(name)
	if err != nil {
		return "", fmt.Errorf("render user: %w", err)
	}
	return out, nil
}

func (s *greetingService) Home(ctx context.Context) (string, error) {
	if !s.renderer.HasHome() {
		return "", ErrHomeUnavailable
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	out, err := s.renderer.Home()
	if err != nil {
		return "", fmt.Errorf("render home: %w", err)
	}
	return out, nil
}

func (s *greetingService) HomeEnabled() bool {
	return s.renderer.HasHome()
}
