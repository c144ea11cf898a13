// Package memory provides an in-memory implementation of the repository
// contracts. It backs the test suite and the STORAGE_DRIVER=memory mode;
// state lives in maps guarded by a single RWMutex with explicit id counters.
package memory

import (
	"context"
	"sync"

	"docintel-be/internal/entity"
	"docintel-be/internal/repository/contract"
	"docintel-be/internal/repository/unitofwork"
)

type Store struct {
	mu sync.RWMutex

	users        map[uint]*entity.User
	documents    map[uint]*entity.Document
	messages     map[uint]*entity.Message
	sessions     map[string]*entity.Session // keyed by token hash
	systemStatus map[string]*entity.SystemStatus
	llmStatus    map[string]*entity.LlmServerStatus
	approvals    map[uint]*entity.ApprovalRequest
	msFiles      map[uint]*entity.MicrosoftFile

	nextUserId     uint
	nextDocumentId uint
	nextMessageId  uint
	nextSessionId  uint
	nextStatusId   uint
	nextLlmId      uint
	nextApprovalId uint
	nextMsFileId   uint
}

func NewStore() *Store {
	return &Store{
		users:          make(map[uint]*entity.User),
		documents:      make(map[uint]*entity.Document),
		messages:       make(map[uint]*entity.Message),
		sessions:       make(map[string]*entity.Session),
		systemStatus:   make(map[string]*entity.SystemStatus),
		llmStatus:      make(map[string]*entity.LlmServerStatus),
		approvals:      make(map[uint]*entity.ApprovalRequest),
		msFiles:        make(map[uint]*entity.MicrosoftFile),
		nextUserId:     1,
		nextDocumentId: 1,
		nextMessageId:  1,
		nextSessionId:  1,
		nextStatusId:   1,
		nextLlmId:      1,
		nextApprovalId: 1,
		nextMsFileId:   1,
	}
}

// unitOfWork satisfies the unitofwork interface over the shared store.
// Begin/Commit/Rollback are no-ops: every repository operation is atomic
// under the store mutex and no multi-statement isolation is provided.
type unitOfWork struct {
	store *Store
}

func (u *unitOfWork) Begin(ctx context.Context) error { return nil }
func (u *unitOfWork) Commit() error                   { return nil }
func (u *unitOfWork) Rollback() error                 { return nil }

func (u *unitOfWork) UserRepository() contract.UserRepository {
	return &userRepository{store: u.store}
}

func (u *unitOfWork) DocumentRepository() contract.DocumentRepository {
	return &documentRepository{store: u.store}
}

func (u *unitOfWork) MessageRepository() contract.MessageRepository {
	return &messageRepository{store: u.store}
}

func (u *unitOfWork) SessionRepository() contract.SessionRepository {
	return &sessionRepository{store: u.store}
}

func (u *unitOfWork) SystemStatusRepository() contract.SystemStatusRepository {
	return &systemStatusRepository{store: u.store}
}

func (u *unitOfWork) LlmServerStatusRepository() contract.LlmServerStatusRepository {
	return &llmServerStatusRepository{store: u.store}
}

func (u *unitOfWork) ApprovalRequestRepository() contract.ApprovalRequestRepository {
	return &approvalRequestRepository{store: u.store}
}

func (u *unitOfWork) MicrosoftFileRepository() contract.MicrosoftFileRepository {
	return &microsoftFileRepository{store: u.store}
}

type factory struct {
	store *Store
}

func NewFactory(store *Store) unitofwork.RepositoryFactory {
	return &factory{store: store}
}

func (f *factory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &unitOfWork{store: f.store}
}
