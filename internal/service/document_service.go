package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"docintel-be/internal/constant"
	"docintel-be/internal/dto"
	"docintel-be/internal/entity"
	"docintel-be/internal/pkg/logger"
	"docintel-be/internal/repository/specification"
	"docintel-be/internal/repository/unitofwork"
)

var ErrDocumentNotFound = errors.New("document not found")

type IDocumentService interface {
	List(ctx context.Context, userId uint) ([]dto.DocumentResponse, error)
	Shared(ctx context.Context) ([]dto.DocumentResponse, error)
	Create(ctx context.Context, userId uint, req *dto.CreateDocumentRequest) (*dto.DocumentResponse, error)
	Update(ctx context.Context, userId uint, id uint, req *dto.UpdateDocumentRequest) (*dto.DocumentResponse, error)
	Delete(ctx context.Context, userId uint, id uint) error
	Search(ctx context.Context, userId uint, query string) ([]dto.DocumentResponse, error)
	Upload(ctx context.Context, userId uint, req *dto.UploadRequest) (*dto.DocumentResponse, error)
	ClearKnowledgeBase(ctx context.Context, userId uint) error
	Export(ctx context.Context, user *entity.User) (*dto.ExportResponse, error)
}

type documentService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	log              logger.ILogger
}

func NewDocumentService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) IDocumentService {
	return &documentService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		log:              log,
	}
}

func (s *documentService) List(ctx context.Context, userId uint) ([]dto.DocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	docs, err := uow.DocumentRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	return toDocumentResponses(docs), nil
}

func (s *documentService) Shared(ctx context.Context) ([]dto.DocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	docs, err := uow.DocumentRepository().FindAll(ctx,
		specification.SharedOnly{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	return toDocumentResponses(docs), nil
}

func (s *documentService) Create(ctx context.Context, userId uint, req *dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc := &entity.Document{
		UserId:       userId,
		Filename:     req.Filename,
		OriginalName: req.OriginalName,
		FileType:     req.FileType,
		FileSize:     req.FileSize,
		FilePath:     req.FilePath,
		IsShared:     req.IsShared,
		Metadata:     req.Metadata,
	}
	if err := uow.DocumentRepository().Create(ctx, doc); err != nil {
		return nil, err
	}

	res := toDocumentResponse(doc)
	return &res, nil
}

func (s *documentService) Update(ctx context.Context, userId uint, id uint, req *dto.UpdateDocumentRequest) (*dto.DocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.DocumentRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrDocumentNotFound
	}

	// Only fields present in the request body are touched.
	if req.Filename != nil {
		doc.Filename = *req.Filename
	}
	if req.OriginalName != nil {
		doc.OriginalName = *req.OriginalName
	}
	if req.FileType != nil {
		doc.FileType = *req.FileType
	}
	if req.IsShared != nil {
		doc.IsShared = *req.IsShared
	}
	if req.IsIndexed != nil {
		doc.IsIndexed = *req.IsIndexed
	}
	if req.IsProcessing != nil {
		doc.IsProcessing = *req.IsProcessing
	}
	if req.Metadata != nil {
		doc.Metadata = *req.Metadata
	}

	if err := uow.DocumentRepository().Update(ctx, doc); err != nil {
		return nil, err
	}

	res := toDocumentResponse(doc)
	return &res, nil
}

func (s *documentService) Delete(ctx context.Context, userId uint, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.DocumentRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if doc == nil {
		return ErrDocumentNotFound
	}

	deleted, err := uow.DocumentRepository().Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrDocumentNotFound
	}
	return nil
}

func (s *documentService) Search(ctx context.Context, userId uint, query string) ([]dto.DocumentResponse, error) {
	if query == "" {
		return []dto.DocumentResponse{}, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	docs, err := uow.DocumentRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.NameContains{Query: query},
	)
	if err != nil {
		return nil, err
	}
	return toDocumentResponses(docs), nil
}

// Upload is a metadata-only stub: no bytes are received. The document starts
// in the processing state and a delayed task flips it to indexed; storage
// accounting is committed atomically with the document row.
func (s *documentService) Upload(ctx context.Context, userId uint, req *dto.UploadRequest) (*dto.DocumentResponse, error) {
	filename := req.Filename
	if filename == "" {
		filename = "uploaded_file.pdf"
	}
	fileType := req.FileType
	if fileType == "" {
		fileType = "application/pdf"
	}
	fileSize := req.FileSize
	if fileSize == 0 {
		fileSize = 1024000
	}

	doc := &entity.Document{
		UserId:       userId,
		Filename:     filename,
		OriginalName: filename,
		FileType:     fileType,
		FileSize:     fileSize,
		FilePath:     "/uploads/" + uuid.NewString() + "_" + filename,
		IsShared:     false,
		IsIndexed:    false,
		IsProcessing: true,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.DocumentRepository().Create(ctx, doc); err != nil {
		return nil, err
	}
	if err := uow.UserRepository().AddStorageUsed(ctx, userId, sizeToMB(fileSize)); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	payload, _ := json.Marshal(dto.DocumentIndexingMessage{DocumentId: doc.Id})
	if err := s.publisherService.Publish(ctx, constant.TopicDocumentIndexing, payload); err != nil {
		s.log.Error("document", "Failed to schedule indexing", map[string]interface{}{
			"document_id": doc.Id,
			"error":       err.Error(),
		})
	}

	res := toDocumentResponse(doc)
	return &res, nil
}

func (s *documentService) ClearKnowledgeBase(ctx context.Context, userId uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Deletes the caller's documents only. Messages and shared documents of
	// other users are out of scope.
	docs, err := uow.DocumentRepository().FindAll(ctx, specification.OwnedBy{UserID: userId})
	if err != nil {
		return err
	}
	for _, doc := range docs {
		if _, err := uow.DocumentRepository().Delete(ctx, doc.Id); err != nil {
			return err
		}
	}
	return nil
}

func (s *documentService) Export(ctx context.Context, user *entity.User) (*dto.ExportResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	docs, err := uow.DocumentRepository().FindAll(ctx, specification.OwnedBy{UserID: user.Id})
	if err != nil {
		return nil, err
	}
	msgs, err := uow.MessageRepository().FindAll(ctx, specification.OwnedBy{UserID: user.Id})
	if err != nil {
		return nil, err
	}

	return &dto.ExportResponse{
		User:       toUserResponse(user),
		Documents:  toDocumentResponses(docs),
		Messages:   toMessageResponses(msgs),
		ExportDate: time.Now(),
	}, nil
}

// sizeToMB rounds byte counts up so small files still consume quota.
func sizeToMB(bytes int64) int {
	const mb = 1024 * 1024
	return int((bytes + mb - 1) / mb)
}
