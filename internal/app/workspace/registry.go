package workspace

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/kaan/campora/internal/app/models"
	"github.com/kaan/campora/internal/pkg/apperrors"
	"github.com/kaan/campora/internal/upstream"
)

// Registry maps bearer tokens to live workspaces. Login creates an
// entry, logout removes it. Tokens expire upstream; a request with a
// token the registry no longer knows simply has to log in again.
type Registry struct {
	mu      sync.RWMutex
	byToken map[string]*Workspace
	client  *upstream.Client
	logger  zerolog.Logger
}

// NewRegistry creates an empty workspace registry.
func NewRegistry(client *upstream.Client, logger zerolog.Logger) *Registry {
	return &Registry{
		byToken: make(map[string]*Workspace),
		client:  client,
		logger:  logger,
	}
}

// Create builds and registers a workspace for a fresh login. An existing
// workspace for the same token is replaced.
func (r *Registry) Create(token string, user models.User, roles []models.UserRole) *Workspace {
	ws := New(r.client, token, user, roles, r.logger)
	r.mu.Lock()
	r.byToken[token] = ws
	r.mu.Unlock()
	r.logger.Info().Int64("userID", user.ID).Msg("Workspace created")
	return ws
}

// Get resolves the workspace for a token.
func (r *Registry) Get(token string) (*Workspace, error) {
	r.mu.RLock()
	ws, ok := r.byToken[token]
	r.mu.RUnlock()
	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}
	return ws, nil
}

// Remove tears a workspace down on logout.
func (r *Registry) Remove(token string) {
	r.mu.Lock()
	ws, ok := r.byToken[token]
	delete(r.byToken, token)
	r.mu.Unlock()
	if ok {
		r.logger.Info().Int64("userID", ws.User.ID).Msg("Workspace removed")
	}
}
