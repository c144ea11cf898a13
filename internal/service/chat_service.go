package service

import (
	"context"
	"encoding/json"

	"docintel-be/internal/constant"
	"docintel-be/internal/dto"
	"docintel-be/internal/entity"
	"docintel-be/internal/pkg/logger"
	"docintel-be/internal/repository/specification"
	"docintel-be/internal/repository/unitofwork"
)

const chatHistoryLimit = 50

type IChatService interface {
	List(ctx context.Context, userId uint) ([]dto.MessageResponse, error)
	Create(ctx context.Context, userId uint, req *dto.CreateMessageRequest) (*dto.MessageResponse, error)
}

type chatService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	log              logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		log:              log,
	}
}

func (s *chatService) List(ctx context.Context, userId uint) ([]dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	msgs, err := uow.MessageRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: chatHistoryLimit},
	)
	if err != nil {
		return nil, err
	}
	return toMessageResponses(msgs), nil
}

func (s *chatService) Create(ctx context.Context, userId uint, req *dto.CreateMessageRequest) (*dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	msg := &entity.Message{
		UserId:  userId,
		Content: req.Content,
		Role:    entity.MessageRole(req.Role),
		Sources: req.Sources,
	}
	if err := uow.MessageRepository().Create(ctx, msg); err != nil {
		return nil, err
	}

	// Every user message gets a delayed assistant reply.
	if msg.Role == entity.MessageRoleUser {
		payload, _ := json.Marshal(dto.ChatReplyMessage{UserId: userId})
		if err := s.publisherService.Publish(ctx, constant.TopicChatReply, payload); err != nil {
			s.log.Error("chat", "Failed to schedule assistant reply", map[string]interface{}{
				"user_id": userId,
				"error":   err.Error(),
			})
		}
	}

	res := toMessageResponse(msg)
	return &res, nil
}
