package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docintel-be/internal/dto"
	"docintel-be/internal/entity"
	"docintel-be/internal/pkg/logger"
	"docintel-be/internal/repository/specification"
	"docintel-be/internal/repository/unitofwork"
)

type captureMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

type sentMail struct {
	To       string
	Approved bool
}

func (m *captureMailer) SendApprovalDecision(toEmail, firstName string, approved bool, notes string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{To: toEmail, Approved: approved})
	return nil
}

func seedApprovalRequest(t *testing.T, factory unitofwork.RepositoryFactory, email, microsoftId string) *entity.ApprovalRequest {
	t.Helper()
	ctx := context.Background()
	request := &entity.ApprovalRequest{
		Email:       email,
		FirstName:   "New",
		LastName:    "Hire",
		MicrosoftId: microsoftId,
		Status:      entity.ApprovalStatusPending,
	}
	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.ApprovalRequestRepository().Create(ctx, request))
	return request
}

func TestApproveRequestCreatesLinkedUser(t *testing.T) {
	factory := newTestFactory()
	svc := NewAdminService(factory, &captureMailer{}, logger.NewNopLogger())
	admin := seedUser(t, factory, "admin@company.com", "secret123", entity.UserRoleAdmin)
	request := seedApprovalRequest(t, factory, "newhire@company.com", "ms-oid-1")

	resp, err := svc.DecideApprovalRequest(context.Background(), admin.Id, request.Id, &dto.ApprovalDecisionRequest{
		Decision: "approved",
	})
	require.NoError(t, err)
	assert.Equal(t, "User approved and account created", resp.Message)
	require.NotNil(t, resp.User)
	assert.Equal(t, "newhire", resp.User.Username)
	assert.True(t, resp.User.IsApproved)

	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByMicrosoftId{MicrosoftId: "ms-oid-1"})
	require.NoError(t, err)
	require.NotNil(t, user)
	// Graph-provisioned accounts never carry a password.
	assert.Nil(t, user.PasswordHash)
	assert.Equal(t, entity.DefaultStorageLimitMB, user.StorageLimitMB)
	require.NotNil(t, user.ApprovedBy)
	assert.Equal(t, admin.Id, *user.ApprovedBy)
}

func TestApprovalUsernameCollisionGetsSuffix(t *testing.T) {
	factory := newTestFactory()
	svc := NewAdminService(factory, &captureMailer{}, logger.NewNopLogger())
	admin := seedUser(t, factory, "admin@company.com", "secret123", entity.UserRoleAdmin)

	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.UserRepository().Create(ctx, &entity.User{
		Username:       "newhire",
		Email:          "newhire@contoso.com",
		Role:           entity.UserRoleUser,
		StorageLimitMB: entity.DefaultStorageLimitMB,
		IsApproved:     true,
	}))

	request := seedApprovalRequest(t, factory, "newhire@company.com", "ms-oid-9")
	resp, err := svc.DecideApprovalRequest(ctx, admin.Id, request.Id, &dto.ApprovalDecisionRequest{
		Decision: "approved",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.User)
	// The email prefix is taken, so the new account gets the next free variant.
	assert.Equal(t, "newhire2", resp.User.Username)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: "newhire"})
	require.NoError(t, err)
	require.NotNil(t, existing)
	assert.Equal(t, "newhire@contoso.com", existing.Email)
}

func TestRejectRequestCreatesNoUser(t *testing.T) {
	factory := newTestFactory()
	svc := NewAdminService(factory, &captureMailer{}, logger.NewNopLogger())
	admin := seedUser(t, factory, "admin@company.com", "secret123", entity.UserRoleAdmin)
	request := seedApprovalRequest(t, factory, "newhire@company.com", "ms-oid-1")

	notes := "contractor accounts are not allowed"
	resp, err := svc.DecideApprovalRequest(context.Background(), admin.Id, request.Id, &dto.ApprovalDecisionRequest{
		Decision:    "rejected",
		ReviewNotes: &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, "User access rejected", resp.Message)
	assert.Nil(t, resp.User)

	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByMicrosoftId{MicrosoftId: "ms-oid-1"})
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestDecisionIsTerminal(t *testing.T) {
	factory := newTestFactory()
	svc := NewAdminService(factory, &captureMailer{}, logger.NewNopLogger())
	admin := seedUser(t, factory, "admin@company.com", "secret123", entity.UserRoleAdmin)
	request := seedApprovalRequest(t, factory, "newhire@company.com", "ms-oid-1")

	_, err := svc.DecideApprovalRequest(context.Background(), admin.Id, request.Id, &dto.ApprovalDecisionRequest{
		Decision: "rejected",
	})
	require.NoError(t, err)

	_, err = svc.DecideApprovalRequest(context.Background(), admin.Id, request.Id, &dto.ApprovalDecisionRequest{
		Decision: "approved",
	})
	assert.ErrorIs(t, err, ErrApprovalAlreadyDecided)
}

func TestDecideUnknownRequest(t *testing.T) {
	factory := newTestFactory()
	svc := NewAdminService(factory, &captureMailer{}, logger.NewNopLogger())
	admin := seedUser(t, factory, "admin@company.com", "secret123", entity.UserRoleAdmin)

	_, err := svc.DecideApprovalRequest(context.Background(), admin.Id, 404, &dto.ApprovalDecisionRequest{
		Decision: "approved",
	})
	assert.ErrorIs(t, err, ErrApprovalRequestNotFound)
}

func TestPendingApprovalRequestsFiltersDecided(t *testing.T) {
	factory := newTestFactory()
	svc := NewAdminService(factory, &captureMailer{}, logger.NewNopLogger())
	admin := seedUser(t, factory, "admin@company.com", "secret123", entity.UserRoleAdmin)
	seedApprovalRequest(t, factory, "one@company.com", "ms-oid-1")
	decided := seedApprovalRequest(t, factory, "two@company.com", "ms-oid-2")

	_, err := svc.DecideApprovalRequest(context.Background(), admin.Id, decided.Id, &dto.ApprovalDecisionRequest{
		Decision: "rejected",
	})
	require.NoError(t, err)

	pending, err := svc.PendingApprovalRequests(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "one@company.com", pending[0].Email)
}
