package unitofwork

import (
	"context"

	"docintel-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	DocumentRepository() contract.DocumentRepository
	MessageRepository() contract.MessageRepository
	SessionRepository() contract.SessionRepository
	SystemStatusRepository() contract.SystemStatusRepository
	LlmServerStatusRepository() contract.LlmServerStatusRepository
	ApprovalRequestRepository() contract.ApprovalRequestRepository
	MicrosoftFileRepository() contract.MicrosoftFileRepository
}
