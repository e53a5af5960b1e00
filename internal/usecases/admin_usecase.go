package usecases

import (
	"context"

	"go.uber.org/zap"

	"event-portal.backend/internal/config"
	domainerrors "event-portal.backend/internal/domain/errors"
	"event-portal.backend/pkg/crypto"
	"event-portal.backend/pkg/logger"
	"event-portal.backend/pkg/session"
	"event-portal.backend/pkg/token"
)

// AdminSession is what a successful login hands back: a session ID for the
// cookie flow and a bearer token for scripted clients.
type AdminSession struct {
	SessionID string
	Token     string
}

// AdminUsecase handles the administrator login/logout workflow
type AdminUsecase struct {
	cfg      config.AdminConfig
	sessions *session.Store
	tokens   *token.Service
	ttl      config.SessionConfig
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(cfg config.AdminConfig, sessionCfg config.SessionConfig, sessions *session.Store, tokens *token.Service) *AdminUsecase {
	return &AdminUsecase{
		cfg:      cfg,
		sessions: sessions,
		tokens:   tokens,
		ttl:      sessionCfg,
	}
}

// Login checks the submitted credentials against the configured admin
// account and, on success, establishes a server-side session.
func (u *AdminUsecase) Login(ctx context.Context, username, password string) (*AdminSession, error) {
	if !u.credentialsMatch(username, password) {
		return nil, domainerrors.Unauthorized("Invalid credentials. Try again.")
	}

	sid := session.NewSessionID()
	if err := u.sessions.Create(ctx, sid, &session.Data{Username: username, IsAdmin: true}, u.ttl.TTL); err != nil {
		logger.Error(ctx, "Failed to create admin session", zap.Error(err))
		return nil, domainerrors.InternalError(err)
	}

	bearer, err := u.tokens.Generate(username)
	if err != nil {
		logger.Error(ctx, "Failed to issue admin token", zap.Error(err))
		return nil, domainerrors.InternalError(err)
	}

	logger.Info(ctx, "Admin logged in", zap.String("username", username))
	return &AdminSession{SessionID: sid, Token: bearer}, nil
}

// Logout destroys the session. Calling it without a session, or repeatedly,
// is harmless.
func (u *AdminUsecase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := u.sessions.Delete(ctx, sessionID); err != nil {
		logger.Warn(ctx, "Failed to delete admin session", zap.Error(err))
		return err
	}
	return nil
}

func (u *AdminUsecase) credentialsMatch(username, password string) bool {
	userOK := crypto.ConstantTimeEquals(username, u.cfg.User)

	var passOK bool
	if u.cfg.PassHash != "" {
		passOK = crypto.CheckPassword(password, u.cfg.PassHash)
	} else {
		passOK = crypto.ConstantTimeEquals(password, u.cfg.Pass)
	}

	return userOK && passOK
}
