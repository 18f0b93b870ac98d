package services

import (
	"context"

	"hrm/config"
	"hrm/internal/database"
	"hrm/internal/logger"

	"github.com/google/uuid"
)

const sessionKeyPrefix = "session:"

type sessionRecord struct {
	UserID string `json:"userId"`
}

// SessionService stores login sessions in the Session cache keyspace.
// Sessions are opaque random tokens; the cookie only ever holds the token.
type SessionService struct {
	db     database.DB
	config config.Config
	log    logger.Logger
}

func NewSessionService(db database.DB, config config.Config) *SessionService {
	return &SessionService{
		db:     db,
		config: config,
		log:    logger.New("SessionService"),
	}
}

func (s *SessionService) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	log := s.log.Function("Create")

	token := uuid.NewString()
	record := sessionRecord{UserID: userID.String()}

	if err := database.NewCacheBuilder(s.db.Cache.Session, sessionKeyPrefix+token).
		WithStruct(record).
		WithTTL(s.config.SessionTTL()).
		WithContext(ctx).
		Set(); err != nil {
		return "", log.Err("failed to store session", err, "userID", userID)
	}

	return token, nil
}

// Resolve returns the user id for a session token. The boolean reports
// whether the session exists.
func (s *SessionService) Resolve(ctx context.Context, token string) (uuid.UUID, bool, error) {
	log := s.log.Function("Resolve")

	var record sessionRecord
	found, err := database.NewCacheBuilder(s.db.Cache.Session, sessionKeyPrefix+token).
		WithContext(ctx).
		Get(&record)
	if err != nil {
		return uuid.Nil, false, log.Err("failed to read session", err)
	}
	if !found {
		return uuid.Nil, false, nil
	}

	userID, err := uuid.Parse(record.UserID)
	if err != nil {
		return uuid.Nil, false, log.Err("failed to parse session user id", err)
	}

	return userID, true, nil
}

func (s *SessionService) Revoke(ctx context.Context, token string) error {
	if err := database.NewCacheBuilder(s.db.Cache.Session, sessionKeyPrefix+token).
		WithContext(ctx).
		Delete(); err != nil {
		return s.log.Function("Revoke").Err("failed to revoke session", err)
	}
	return nil
}
