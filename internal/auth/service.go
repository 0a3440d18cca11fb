package auth

import (
	"log/slog"

	"github.com/frahmantamala/hrm/internal"
)

// Service is the credential and session service
type Service struct {
	credentials    *Credentials
	sessions       *SessionStore
	tokenGenerator TokenGenerator
	logger         *slog.Logger
}

// NewService creates a new auth service
func NewService(credentials *Credentials, sessions *SessionStore, tokenGen TokenGenerator, logger *slog.Logger) *Service {
	return &Service{
		credentials:    credentials,
		sessions:       sessions,
		tokenGenerator: tokenGen,
		logger:         logger,
	}
}

// Login starts a session when the pair matches. A failed attempt leaves any
// live session untouched.
func (s *Service) Login(dto LoginDTO) (LoginResponse, error) {
	if !s.credentials.Matches(dto.Username, dto.Password) {
		s.logger.Warn("login rejected", "username", normalizeUsername(dto.Username))
		return LoginResponse{}, internal.ErrInvalidCredentials
	}

	sess := s.sessions.Start()
	token, err := s.tokenGenerator.GenerateSessionToken(sess.ID, sess.ExpiresAt)
	if err != nil {
		s.sessions.End(sess.ID)
		s.logger.Error("failed to sign session token", "error", err)
		return LoginResponse{}, internal.NewInternalError("failed to start session", err)
	}

	s.logger.Info("operator logged in", "session_id", sess.ID)
	return LoginResponse{
		Token:     token,
		SessionID: sess.ID,
		Section:   sess.Section,
		ExpiresAt: sess.ExpiresAt,
	}, nil
}

// Logout marks the session unauthenticated and forgets it.
func (s *Service) Logout(sessionID string) {
	if _, ok := s.sessions.End(sessionID); ok {
		s.logger.Info("operator logged out", "session_id", sessionID)
	}
}

// ResetCredentials replaces the stored pair. On a validation failure the
// previous pair keeps working. A successful reset ends the live session.
func (s *Service) ResetCredentials(dto ResetCredentialsDTO) error {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("credential reset rejected", "error", err)
		return err
	}

	if err := s.credentials.Replace(dto.Username, dto.Password); err != nil {
		s.logger.Error("failed to hash new password", "error", err)
		return internal.NewInternalError("failed to reset credentials", err)
	}

	s.sessions.EndAll()
	s.logger.Info("credentials reset", "username", s.credentials.Username())
	return nil
}

// Authorize resolves a bearer token to its live session.
func (s *Service) Authorize(token string) (Session, error) {
	claims, err := s.tokenGenerator.ValidateToken(token)
	if err != nil {
		return Session{}, err
	}

	sess, ok := s.sessions.Get(claims.SessionID)
	if !ok {
		return Session{}, internal.ErrSessionEnded
	}
	return sess, nil
}

func (s *Service) CurrentSession(sessionID string) (SessionResponse, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return SessionResponse{}, internal.ErrSessionEnded
	}
	return sess.ToResponse(s.credentials.Username()), nil
}

func (s *Service) SelectSection(sessionID string, dto SelectSectionDTO) (SessionResponse, error) {
	section, err := ParseSection(dto.Section)
	if err != nil {
		return SessionResponse{}, err
	}

	sess, err := s.sessions.SelectSection(sessionID, section)
	if err != nil {
		return SessionResponse{}, err
	}

	s.logger.Info("section selected", "session_id", sessionID, "section", section)
	return sess.ToResponse(s.credentials.Username()), nil
}
