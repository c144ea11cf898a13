package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docintel-be/internal/entity"
	"docintel-be/internal/repository/specification"
)

func TestDocumentSpecificationFiltering(t *testing.T) {
	ctx := context.Background()
	uow := NewFactory(NewStore()).NewUnitOfWork(ctx)
	repo := uow.DocumentRepository()

	seed := []entity.Document{
		{UserId: 1, Filename: "budget.xlsx", OriginalName: "Budget 2026.xlsx", FileType: "application/vnd.ms-excel"},
		{UserId: 1, Filename: "notes.docx", OriginalName: "Notes.docx", FileType: "application/msword", IsShared: true},
		{UserId: 2, Filename: "budget-v2.xlsx", OriginalName: "Budget v2.xlsx", FileType: "application/vnd.ms-excel", IsProcessing: true},
	}
	for i := range seed {
		require.NoError(t, repo.Create(ctx, &seed[i]))
		assert.NotZero(t, seed[i].Id)
	}

	owned, err := repo.FindAll(ctx, specification.OwnedBy{UserID: 1})
	require.NoError(t, err)
	assert.Len(t, owned, 2)

	shared, err := repo.FindAll(ctx, specification.SharedOnly{})
	require.NoError(t, err)
	require.Len(t, shared, 1)
	assert.Equal(t, "notes.docx", shared[0].Filename)

	processing, err := repo.Count(ctx, specification.ProcessingOnly{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), processing)

	// Name search is case-insensitive and matches the original name too.
	matches, err := repo.FindAll(ctx, specification.OwnedBy{UserID: 1}, specification.NameContains{Query: "BUDGET"})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "budget.xlsx", matches[0].Filename)
}

func TestDocumentDeleteReportsMiss(t *testing.T) {
	ctx := context.Background()
	uow := NewFactory(NewStore()).NewUnitOfWork(ctx)
	repo := uow.DocumentRepository()

	doc := entity.Document{UserId: 1, Filename: "a.pdf", OriginalName: "a.pdf", FileType: "application/pdf"}
	require.NoError(t, repo.Create(ctx, &doc))

	deleted, err := repo.Delete(ctx, doc.Id)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, doc.Id)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestRepositoriesReturnClones(t *testing.T) {
	ctx := context.Background()
	uow := NewFactory(NewStore()).NewUnitOfWork(ctx)
	repo := uow.DocumentRepository()

	doc := entity.Document{UserId: 1, Filename: "a.pdf", OriginalName: "a.pdf", FileType: "application/pdf"}
	require.NoError(t, repo.Create(ctx, &doc))

	loaded, err := repo.FindOne(ctx, specification.ByID{ID: doc.Id})
	require.NoError(t, err)
	loaded.Filename = "mutated.pdf"

	// Mutating a returned entity must not leak into the store.
	reloaded, err := repo.FindOne(ctx, specification.ByID{ID: doc.Id})
	require.NoError(t, err)
	assert.Equal(t, "a.pdf", reloaded.Filename)
}

func TestMessagePaginationAndOrdering(t *testing.T) {
	ctx := context.Background()
	uow := NewFactory(NewStore()).NewUnitOfWork(ctx)
	repo := uow.MessageRepository()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &entity.Message{
			UserId:    1,
			Content:   "m",
			Role:      entity.MessageRoleUser,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	msgs, err := repo.FindAll(ctx,
		specification.OwnedBy{UserID: 1},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: 3},
	)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.True(t, msgs[0].CreatedAt.After(msgs[1].CreatedAt))
	assert.True(t, msgs[1].CreatedAt.After(msgs[2].CreatedAt))
}

func TestUserStorageAccounting(t *testing.T) {
	ctx := context.Background()
	uow := NewFactory(NewStore()).NewUnitOfWork(ctx)
	repo := uow.UserRepository()

	user := entity.User{Username: "jane", Email: "jane@company.com", StorageLimitMB: 2500}
	require.NoError(t, repo.Create(ctx, &user))

	require.NoError(t, repo.AddStorageUsed(ctx, user.Id, 12))
	require.NoError(t, repo.AddStorageUsed(ctx, user.Id, 3))

	loaded, err := repo.FindOne(ctx, specification.ByID{ID: user.Id})
	require.NoError(t, err)
	assert.Equal(t, 15, loaded.StorageUsedMB)
}

func TestSessionRepositoryKeyedByHash(t *testing.T) {
	ctx := context.Background()
	uow := NewFactory(NewStore()).NewUnitOfWork(ctx)
	repo := uow.SessionRepository()

	require.NoError(t, repo.Create(ctx, &entity.Session{
		UserId:    1,
		TokenHash: "hash-a",
		ExpiresAt: time.Now().Add(time.Hour),
	}))
	require.NoError(t, repo.Create(ctx, &entity.Session{
		UserId:    1,
		TokenHash: "hash-b",
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	found, err := repo.FindByTokenHash(ctx, "hash-a")
	require.NoError(t, err)
	require.NotNil(t, found)

	missing, err := repo.FindByTokenHash(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.DeleteByTokenHash(ctx, "hash-a"))
	require.NoError(t, repo.DeleteByTokenHash(ctx, "hash-a")) // idempotent

	gone, err := repo.FindByTokenHash(ctx, "hash-a")
	require.NoError(t, err)
	assert.Nil(t, gone)

	// Deleting one token leaves the user's other sessions alone.
	remaining, err := repo.FindByTokenHash(ctx, "hash-b")
	require.NoError(t, err)
	assert.NotNil(t, remaining)
}

func TestSystemStatusUpsertKeepsOneRowPerComponent(t *testing.T) {
	ctx := context.Background()
	uow := NewFactory(NewStore()).NewUnitOfWork(ctx)
	repo := uow.SystemStatusRepository()

	require.NoError(t, repo.Upsert(ctx, &entity.SystemStatus{Component: "llm_engine", Status: "online"}))
	require.NoError(t, repo.Upsert(ctx, &entity.SystemStatus{Component: "llm_engine", Status: "degraded"}))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "degraded", string(all[0].Status))
	assert.Equal(t, uint(1), all[0].Id)
}

func TestMicrosoftFileUpsertPreservesIdentity(t *testing.T) {
	ctx := context.Background()
	uow := NewFactory(NewStore()).NewUnitOfWork(ctx)
	repo := uow.MicrosoftFileRepository()

	first := entity.MicrosoftFile{UserId: 1, MicrosoftFileId: "od-1", FileName: "a.docx"}
	require.NoError(t, repo.Upsert(ctx, &first))

	second := entity.MicrosoftFile{UserId: 1, MicrosoftFileId: "od-1", FileName: "a-renamed.docx"}
	require.NoError(t, repo.Upsert(ctx, &second))
	assert.Equal(t, first.Id, second.Id)

	// Same drive item under a different user is a distinct row.
	other := entity.MicrosoftFile{UserId: 2, MicrosoftFileId: "od-1", FileName: "a.docx"}
	require.NoError(t, repo.Upsert(ctx, &other))
	assert.NotEqual(t, first.Id, other.Id)
}
