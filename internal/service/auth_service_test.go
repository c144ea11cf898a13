package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"docintel-be/internal/dto"
	"docintel-be/internal/entity"
	"docintel-be/internal/pkg/logger"
	"docintel-be/internal/pkg/sessioncache"
	"docintel-be/internal/repository/memory"
	"docintel-be/internal/repository/unitofwork"
)

func newTestFactory() unitofwork.RepositoryFactory {
	return memory.NewFactory(memory.NewStore())
}

func seedUser(t *testing.T, factory unitofwork.RepositoryFactory, email, password string, role entity.UserRole) *entity.User {
	t.Helper()
	ctx := context.Background()

	user := &entity.User{
		Username:       "tester",
		Email:          email,
		Role:           role,
		FirstName:      "Test",
		LastName:       "User",
		StorageLimitMB: entity.DefaultStorageLimitMB,
		IsApproved:     true,
	}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		require.NoError(t, err)
		hashStr := string(hash)
		user.PasswordHash = &hashStr
	}

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.UserRepository().Create(ctx, user))
	return user
}

func TestLoginSuccess(t *testing.T) {
	factory := newTestFactory()
	svc := NewAuthService(factory, sessioncache.NewMemoryCache(), 24*time.Hour, logger.NewNopLogger())
	seedUser(t, factory, "jane@company.com", "secret123", entity.UserRoleUser)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@company.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "jane@company.com", resp.User.Email)
	assert.NotNil(t, resp.User.LastLoginAt)

	// The token must resolve back to the same user.
	user, err := svc.CurrentUser(context.Background(), resp.Token)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "jane@company.com", user.Email)
}

func TestLoginInvalidCredentials(t *testing.T) {
	factory := newTestFactory()
	svc := NewAuthService(factory, sessioncache.NewMemoryCache(), 24*time.Hour, logger.NewNopLogger())
	seedUser(t, factory, "jane@company.com", "secret123", entity.UserRoleUser)

	cases := []dto.LoginRequest{
		{Email: "jane@company.com", Password: "wrong"},
		{Email: "nobody@company.com", Password: "secret123"},
	}
	for _, req := range cases {
		resp, err := svc.Login(context.Background(), &req)
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}
}

func TestLoginMicrosoftOnlyAccountHasNoPassword(t *testing.T) {
	factory := newTestFactory()
	svc := NewAuthService(factory, sessioncache.NewMemoryCache(), 24*time.Hour, logger.NewNopLogger())
	// OAuth-provisioned accounts carry a nil password hash.
	seedUser(t, factory, "graph@company.com", "", entity.UserRoleUser)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "graph@company.com",
		Password: "anything",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutInvalidatesToken(t *testing.T) {
	factory := newTestFactory()
	svc := NewAuthService(factory, sessioncache.NewMemoryCache(), 24*time.Hour, logger.NewNopLogger())
	seedUser(t, factory, "jane@company.com", "secret123", entity.UserRoleUser)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@company.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), resp.Token))

	user, err := svc.CurrentUser(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Nil(t, user)

	// Logging out twice is fine.
	assert.NoError(t, svc.Logout(context.Background(), resp.Token))
}

func TestCurrentUserUnknownToken(t *testing.T) {
	factory := newTestFactory()
	svc := NewAuthService(factory, sessioncache.NewMemoryCache(), 24*time.Hour, logger.NewNopLogger())

	user, err := svc.CurrentUser(context.Background(), "deadbeef")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestExpiredSessionIsPurgedLazily(t *testing.T) {
	factory := newTestFactory()
	svc := NewAuthService(factory, sessioncache.NewMemoryCache(), 24*time.Hour, logger.NewNopLogger())
	owner := seedUser(t, factory, "jane@company.com", "secret123", entity.UserRoleUser)

	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)

	// A session that has not reached its deadline still resolves.
	liveToken := "still-valid-token"
	require.NoError(t, uow.SessionRepository().Create(ctx, &entity.Session{
		UserId:    owner.Id,
		TokenHash: hashToken(liveToken),
		ExpiresAt: time.Now().Add(time.Minute),
	}))
	user, err := svc.CurrentUser(ctx, liveToken)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, owner.Id, user.Id)

	token := "expired-token"
	require.NoError(t, uow.SessionRepository().Create(ctx, &entity.Session{
		UserId:    owner.Id,
		TokenHash: hashToken(token),
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	user, err = svc.CurrentUser(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, user)

	// The stale row is gone after the first touch.
	session, err := uow.SessionRepository().FindByTokenHash(ctx, hashToken(token))
	require.NoError(t, err)
	assert.Nil(t, session)

	// Looking the purged token up again stays a clean miss.
	user, err = svc.CurrentUser(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestCreateSessionHashesToken(t *testing.T) {
	factory := newTestFactory()
	svc := NewAuthService(factory, sessioncache.NewMemoryCache(), time.Hour, logger.NewNopLogger())
	owner := seedUser(t, factory, "jane@company.com", "secret123", entity.UserRoleUser)

	ctx := context.Background()
	token, err := svc.CreateSession(ctx, owner.Id)
	require.NoError(t, err)
	assert.Len(t, token, 64) // 32 random bytes, hex encoded

	uow := factory.NewUnitOfWork(ctx)
	// The raw token is never stored.
	session, err := uow.SessionRepository().FindByTokenHash(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, session)

	session, err = uow.SessionRepository().FindByTokenHash(ctx, hashToken(token))
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, owner.Id, session.UserId)
}
