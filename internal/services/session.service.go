package services

import (
	"context"
	"errors"
	"time"

	"modreport/config"
	"modreport/internal/database"
	"modreport/internal/logger"
	. "modreport/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	SESSION_CACHE_PREFIX = "session:"
	SessionCookieName    = "mod_session"
)

var ErrInvalidSession = errors.New("invalid session")

// Session is the server-side record backing a session cookie. Deleting it
// from the cache revokes the session even while the signed token is unexpired.
type Session struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type SessionService struct {
	db     database.DB
	secret []byte
	ttl    time.Duration
	log    logger.Logger
}

func NewSessionService(db database.DB, config config.Config) *SessionService {
	return &SessionService{
		db:     db,
		secret: []byte(config.SessionSecret),
		ttl:    time.Duration(config.SessionTTLHours) * time.Hour,
		log:    logger.New("sessionService"),
	}
}

func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

// Create issues a signed session token for the user and stores the session
// record in the cache with a matching TTL.
func (s *SessionService) Create(ctx context.Context, user *User) (string, error) {
	log := s.log.Function("Create")

	now := time.Now()
	session := Session{
		ID:        uuid.Must(uuid.NewV7()),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": session.ID.String(),
		"sub": user.ID.String(),
		"exp": session.ExpiresAt.Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", log.Err("failed to sign session token", err, "userID", user.ID)
	}

	err = database.NewCacheBuilder(s.db.Cache.Session, SESSION_CACHE_PREFIX+session.ID.String()).
		WithStruct(session).
		WithTTL(s.ttl).
		WithContext(ctx).
		Set()
	if err != nil {
		return "", log.Err("failed to store session", err, "userID", user.ID)
	}

	return signed, nil
}

// Validate parses a session token and resolves it against the cache. Tokens
// whose session record is gone (logout, TTL expiry, flush) are invalid.
func (s *SessionService) Validate(ctx context.Context, token string) (*Session, error) {
	sessionID, err := s.parseSessionID(token)
	if err != nil {
		return nil, ErrInvalidSession
	}

	var session Session
	found, err := database.NewCacheBuilder(s.db.Cache.Session, SESSION_CACHE_PREFIX+sessionID.String()).
		WithContext(ctx).
		Get(&session)
	if err != nil || !found {
		return nil, ErrInvalidSession
	}

	if time.Now().After(session.ExpiresAt) {
		return nil, ErrInvalidSession
	}

	return &session, nil
}

// Destroy deletes the session record so the token can no longer validate.
func (s *SessionService) Destroy(ctx context.Context, token string) error {
	log := s.log.Function("Destroy")

	sessionID, err := s.parseSessionID(token)
	if err != nil {
		return ErrInvalidSession
	}

	err = database.NewCacheBuilder(s.db.Cache.Session, SESSION_CACHE_PREFIX+sessionID.String()).
		WithContext(ctx).
		Delete()
	if err != nil {
		return log.Err("failed to delete session", err, "sessionID", sessionID)
	}

	return nil
}

func (s *SessionService) parseSessionID(token string) (uuid.UUID, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return uuid.Nil, ErrInvalidSession
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, ErrInvalidSession
	}

	sid, ok := claims["sid"].(string)
	if !ok {
		return uuid.Nil, ErrInvalidSession
	}

	sessionID, err := uuid.Parse(sid)
	if err != nil {
		return uuid.Nil, ErrInvalidSession
	}

	return sessionID, nil
}
