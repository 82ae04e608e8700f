// Package redline wires core services together for the CLI commands.
package redline

import (
	"context"
	"errors"
	"fmt"

	"github.com/inkfold/redline/internal/core/config"
	"github.com/inkfold/redline/internal/core/review"
)

// App carries the shared service handles commands operate on. It is
// populated once in the root command's Before hook.
type App struct {
	Config *config.Config
	Review *review.Service
	Store  review.Store
}

// NewApp creates an App from its dependencies.
func NewApp(cfg *config.Config, svc *review.Service, store review.Store) *App {
	return &App{
		Config: cfg,
		Review: svc,
		Store:  store,
	}
}

// RequireSession ensures a review session is active, resuming the cached
// one when the process has none in memory. Commands that operate on the
// current session call this first.
func (a *App) RequireSession(ctx context.Context) (*review.Session, error) {
	if s := a.Review.Current(); s != nil {
		return s, nil
	}

	if err := a.Review.ResumeActive(ctx); err != nil {
		if errors.Is(err, review.ErrSessionNotFound) {
			return nil, fmt.Errorf("no review in progress; run 'redline start' first")
		}
		return nil, err
	}

	return a.Review.Current(), nil
}
