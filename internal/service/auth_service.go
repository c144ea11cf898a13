package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"docintel-be/internal/dto"
	"docintel-be/internal/entity"
	"docintel-be/internal/pkg/logger"
	"docintel-be/internal/pkg/sessioncache"
	"docintel-be/internal/repository/specification"
	"docintel-be/internal/repository/unitofwork"
)

var ErrInvalidCredentials = errors.New("Invalid credentials")

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*entity.User, error)
	// CreateSession issues a fresh opaque token for an already authenticated
	// user. Used by the OAuth callback path.
	CreateSession(ctx context.Context, userId uint) (string, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      sessioncache.Cache
	sessionTTL time.Duration
	log        logger.ILogger
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	cache sessioncache.Cache,
	sessionTTL time.Duration,
	log logger.ILogger,
) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		cache:      cache,
		sessionTTL: sessionTTL,
		log:        log,
	}
}

// generateSessionToken returns the raw opaque token handed to the client.
// Only its hash ever reaches storage.
func generateSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	// Uniform failure: never reveal whether the email or the password was wrong.
	if user == nil || user.PasswordHash == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.CreateSession(ctx, user.Id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := uow.UserRepository().UpdateLastLogin(ctx, user.Id, now); err != nil {
		s.log.Warn("auth", "Failed to update last login", map[string]interface{}{
			"user_id": user.Id,
			"error":   err.Error(),
		})
	}
	user.LastLoginAt = &now

	return &dto.LoginResponse{
		User:  toUserResponse(user),
		Token: token,
	}, nil
}

func (s *authService) CreateSession(ctx context.Context, userId uint) (string, error) {
	token, err := generateSessionToken()
	if err != nil {
		return "", err
	}

	tokenHash := hashToken(token)
	expiresAt := time.Now().Add(s.sessionTTL)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session := &entity.Session{
		UserId:    userId,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
	}
	if err := uow.SessionRepository().Create(ctx, session); err != nil {
		return "", err
	}

	if err := s.cache.Set(ctx, tokenHash, sessioncache.CachedSession{
		UserId:    userId,
		ExpiresAt: expiresAt,
	}, s.sessionTTL); err != nil {
		s.log.Warn("auth", "Session cache write failed", map[string]interface{}{"error": err.Error()})
	}

	return token, nil
}

// Logout is best-effort and idempotent: an unknown token is not an error.
func (s *authService) Logout(ctx context.Context, token string) error {
	tokenHash := hashToken(token)

	if err := s.cache.Delete(ctx, tokenHash); err != nil {
		s.log.Warn("auth", "Session cache delete failed", map[string]interface{}{"error": err.Error()})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.SessionRepository().DeleteByTokenHash(ctx, tokenHash)
}

func (s *authService) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	tokenHash := hashToken(token)
	uow := s.uowFactory.NewUnitOfWork(ctx)

	userId, ok, err := s.resolveSession(ctx, uow, tokenHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	return uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
}

func (s *authService) resolveSession(ctx context.Context, uow unitofwork.UnitOfWork, tokenHash string) (uint, bool, error) {
	now := time.Now()

	if cached, found, err := s.cache.Get(ctx, tokenHash); err == nil && found {
		if now.After(cached.ExpiresAt) {
			s.expireSession(ctx, uow, tokenHash)
			return 0, false, nil
		}
		return cached.UserId, true, nil
	}

	session, err := uow.SessionRepository().FindByTokenHash(ctx, tokenHash)
	if err != nil {
		return 0, false, err
	}
	if session == nil {
		return 0, false, nil
	}
	// Expired sessions are purged lazily on first touch after the deadline.
	if session.Expired(now) {
		s.expireSession(ctx, uow, tokenHash)
		return 0, false, nil
	}

	return session.UserId, true, nil
}

func (s *authService) expireSession(ctx context.Context, uow unitofwork.UnitOfWork, tokenHash string) {
	if err := s.cache.Delete(ctx, tokenHash); err != nil {
		s.log.Warn("auth", "Session cache delete failed", map[string]interface{}{"error": err.Error()})
	}
	if err := uow.SessionRepository().DeleteByTokenHash(ctx, tokenHash); err != nil {
		s.log.Warn("auth", "Expired session delete failed", map[string]interface{}{"error": err.Error()})
	}
}
