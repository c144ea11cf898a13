package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docintel-be/internal/constant"
	"docintel-be/internal/dto"
	"docintel-be/internal/entity"
	"docintel-be/internal/pkg/logger"
	"docintel-be/internal/repository/specification"
)

// capturePublisher records published messages instead of routing them.
type capturePublisher struct {
	mu       sync.Mutex
	messages []capturedMessage
}

type capturedMessage struct {
	Topic   string
	Payload []byte
}

func (p *capturePublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, capturedMessage{Topic: topic, Payload: payload})
	return nil
}

func (p *capturePublisher) captured() []capturedMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]capturedMessage, len(p.messages))
	copy(out, p.messages)
	return out
}

func TestDocumentCreateDefaults(t *testing.T) {
	factory := newTestFactory()
	svc := NewDocumentService(factory, &capturePublisher{}, logger.NewNopLogger())
	owner := seedUser(t, factory, "jane@company.com", "secret123", entity.UserRoleUser)

	doc, err := svc.Create(context.Background(), owner.Id, &dto.CreateDocumentRequest{
		Filename:     "report.pdf",
		OriginalName: "Q3 Report.pdf",
		FileType:     "application/pdf",
		FileSize:     2048,
	})
	require.NoError(t, err)
	assert.NotZero(t, doc.Id)
	assert.Equal(t, owner.Id, doc.UserId)
	// Plain creates are not queued for indexing.
	assert.False(t, doc.IsProcessing)
	assert.False(t, doc.IsIndexed)
}

func TestDocumentUpdatePartial(t *testing.T) {
	factory := newTestFactory()
	svc := NewDocumentService(factory, &capturePublisher{}, logger.NewNopLogger())
	owner := seedUser(t, factory, "jane@company.com", "secret123", entity.UserRoleUser)

	doc, err := svc.Create(context.Background(), owner.Id, &dto.CreateDocumentRequest{
		Filename:     "report.pdf",
		OriginalName: "Q3 Report.pdf",
		FileType:     "application/pdf",
	})
	require.NoError(t, err)

	shared := true
	updated, err := svc.Update(context.Background(), owner.Id, doc.Id, &dto.UpdateDocumentRequest{
		IsShared: &shared,
	})
	require.NoError(t, err)
	assert.True(t, updated.IsShared)
	// Untouched fields survive.
	assert.Equal(t, "report.pdf", updated.Filename)
	assert.Equal(t, "Q3 Report.pdf", updated.OriginalName)
}

func TestDocumentUpdateForeignDocument(t *testing.T) {
	factory := newTestFactory()
	svc := NewDocumentService(factory, &capturePublisher{}, logger.NewNopLogger())
	owner := seedUser(t, factory, "jane@company.com", "secret123", entity.UserRoleUser)

	doc, err := svc.Create(context.Background(), owner.Id, &dto.CreateDocumentRequest{
		Filename:     "report.pdf",
		OriginalName: "Q3 Report.pdf",
		FileType:     "application/pdf",
	})
	require.NoError(t, err)

	shared := true
	_, err = svc.Update(context.Background(), owner.Id+1, doc.Id, &dto.UpdateDocumentRequest{
		IsShared: &shared,
	})
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestDocumentDelete(t *testing.T) {
	factory := newTestFactory()
	svc := NewDocumentService(factory, &capturePublisher{}, logger.NewNopLogger())
	owner := seedUser(t, factory, "jane@company.com", "secret123", entity.UserRoleUser)

	doc, err := svc.Create(context.Background(), owner.Id, &dto.CreateDocumentRequest{
		Filename:     "report.pdf",
		OriginalName: "Q3 Report.pdf",
		FileType:     "application/pdf",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), owner.Id, doc.Id))
	assert.ErrorIs(t, svc.Delete(context.Background(), owner.Id, doc.Id), ErrDocumentNotFound)
}

func TestDocumentSearch(t *testing.T) {
	factory := newTestFactory()
	svc := NewDocumentService(factory, &capturePublisher{}, logger.NewNopLogger())
	owner := seedUser(t, factory, "jane@company.com", "secret123", entity.UserRoleUser)
	other := seedUser(t, factory, "bob@company.com", "secret123", entity.UserRoleUser)

	for _, name := range []string{"budget-2026.xlsx", "meeting-notes.docx"} {
		_, err := svc.Create(context.Background(), owner.Id, &dto.CreateDocumentRequest{
			Filename:     name,
			OriginalName: name,
			FileType:     "application/octet-stream",
		})
		require.NoError(t, err)
	}
	_, err := svc.Create(context.Background(), other.Id, &dto.CreateDocumentRequest{
		Filename:     "budget-private.xlsx",
		OriginalName: "budget-private.xlsx",
		FileType:     "application/octet-stream",
	})
	require.NoError(t, err)

	results, err := svc.Search(context.Background(), owner.Id, "BUDGET")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "budget-2026.xlsx", results[0].Filename)

	// Empty query short-circuits to an empty list, not all documents.
	results, err = svc.Search(context.Background(), owner.Id, "")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestDocumentUpload(t *testing.T) {
	factory := newTestFactory()
	pub := &capturePublisher{}
	svc := NewDocumentService(factory, pub, logger.NewNopLogger())
	owner := seedUser(t, factory, "jane@company.com", "secret123", entity.UserRoleUser)

	doc, err := svc.Upload(context.Background(), owner.Id, &dto.UploadRequest{})
	require.NoError(t, err)

	// Metadata-only stub defaults.
	assert.Equal(t, "uploaded_file.pdf", doc.Filename)
	assert.Equal(t, "application/pdf", doc.FileType)
	assert.Equal(t, int64(1024000), doc.FileSize)
	assert.True(t, doc.IsProcessing)
	assert.False(t, doc.IsIndexed)

	// Storage accounting rounds bytes up to whole megabytes.
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)
	stored, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: owner.Id})
	require.NoError(t, err)
	assert.Equal(t, 1, stored.StorageUsedMB)

	// Exactly one indexing task was scheduled for this document.
	msgs := pub.captured()
	require.Len(t, msgs, 1)
	assert.Equal(t, constant.TopicDocumentIndexing, msgs[0].Topic)
	var task dto.DocumentIndexingMessage
	require.NoError(t, json.Unmarshal(msgs[0].Payload, &task))
	assert.Equal(t, doc.Id, task.DocumentId)
}

func TestClearKnowledgeBaseRemovesOnlyOwnDocuments(t *testing.T) {
	factory := newTestFactory()
	svc := NewDocumentService(factory, &capturePublisher{}, logger.NewNopLogger())
	owner := seedUser(t, factory, "jane@company.com", "secret123", entity.UserRoleUser)
	other := seedUser(t, factory, "bob@company.com", "secret123", entity.UserRoleUser)

	for _, uid := range []uint{owner.Id, owner.Id, other.Id} {
		_, err := svc.Create(context.Background(), uid, &dto.CreateDocumentRequest{
			Filename:     "doc.pdf",
			OriginalName: "doc.pdf",
			FileType:     "application/pdf",
		})
		require.NoError(t, err)
	}

	require.NoError(t, svc.ClearKnowledgeBase(context.Background(), owner.Id))

	mine, err := svc.List(context.Background(), owner.Id)
	require.NoError(t, err)
	assert.Empty(t, mine)

	theirs, err := svc.List(context.Background(), other.Id)
	require.NoError(t, err)
	assert.Len(t, theirs, 1)
}

func TestExportBundlesUserDocumentsAndMessages(t *testing.T) {
	factory := newTestFactory()
	svc := NewDocumentService(factory, &capturePublisher{}, logger.NewNopLogger())
	owner := seedUser(t, factory, "jane@company.com", "secret123", entity.UserRoleUser)

	_, err := svc.Create(context.Background(), owner.Id, &dto.CreateDocumentRequest{
		Filename:     "report.pdf",
		OriginalName: "report.pdf",
		FileType:     "application/pdf",
	})
	require.NoError(t, err)

	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.MessageRepository().Create(ctx, &entity.Message{
		UserId:  owner.Id,
		Content: "what is in the report?",
		Role:    entity.MessageRoleUser,
	}))

	export, err := svc.Export(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, owner.Email, export.User.Email)
	assert.Len(t, export.Documents, 1)
	assert.Len(t, export.Messages, 1)
	assert.False(t, export.ExportDate.IsZero())
}
