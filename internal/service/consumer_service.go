package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"docintel-be/internal/constant"
	"docintel-be/internal/dto"
	"docintel-be/internal/entity"
	"docintel-be/internal/pkg/logger"
	"docintel-be/internal/repository/specification"
	"docintel-be/internal/repository/unitofwork"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService runs the simulated processing pipeline: delayed document
// indexing flips and delayed canned assistant replies. Jobs live only on the
// in-process channel; losing them on restart is an accepted property of the
// simulation.
type consumerService struct {
	pubSub              *gochannel.GoChannel
	uowFactory          unitofwork.RepositoryFactory
	processingDelay     time.Duration
	assistantReplyDelay time.Duration
	log                 logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	uowFactory unitofwork.RepositoryFactory,
	processingDelay time.Duration,
	assistantReplyDelay time.Duration,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:              pubSub,
		uowFactory:          uowFactory,
		processingDelay:     processingDelay,
		assistantReplyDelay: assistantReplyDelay,
		log:                 log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	indexing, err := cs.pubSub.Subscribe(ctx, constant.TopicDocumentIndexing)
	if err != nil {
		return err
	}
	replies, err := cs.pubSub.Subscribe(ctx, constant.TopicChatReply)
	if err != nil {
		return err
	}

	// The in-process broker withholds the next message until the current one
	// is acked, so each job is acked on receipt and handled on its own
	// goroutine. Concurrent uploads then index independently and one user's
	// pending reply never stalls another's. Failures are absorbed by the
	// handlers' bounded in-place retries.
	go func() {
		for msg := range indexing {
			msg.Ack()
			go cs.processIndexing(ctx, msg.Payload)
		}
	}()
	go func() {
		for msg := range replies {
			msg.Ack()
			go cs.processReply(ctx, msg.Payload)
		}
	}()

	return nil
}

const (
	consumerMaxAttempts  = 3
	consumerRetryBackoff = 250 * time.Millisecond
)

func (cs *consumerService) processIndexing(ctx context.Context, raw []byte) {
	var payload dto.DocumentIndexingMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		cs.log.Error("consumer", "Failed to unmarshal indexing message", map[string]interface{}{"error": err.Error()})
		return
	}

	time.Sleep(cs.processingDelay)

	indexed := false
	err := cs.withRetry(func() error {
		uow := cs.uowFactory.NewUnitOfWork(ctx)
		doc, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: payload.DocumentId})
		if err != nil {
			return err
		}
		if doc == nil {
			// Deleted before the delay elapsed. Nothing to do.
			return nil
		}

		// Only the two pipeline flags change; every other field stays untouched.
		doc.IsProcessing = false
		doc.IsIndexed = true
		if err := uow.DocumentRepository().Update(ctx, doc); err != nil {
			return err
		}
		indexed = true
		return nil
	})
	if err != nil {
		cs.log.Error("consumer", "Giving up on indexing job", map[string]interface{}{
			"document_id": payload.DocumentId,
			"attempts":    consumerMaxAttempts,
			"error":       err.Error(),
		})
	} else if indexed {
		cs.log.Info("consumer", "Document indexed", map[string]interface{}{"document_id": payload.DocumentId})
	}
}

func (cs *consumerService) processReply(ctx context.Context, raw []byte) {
	var payload dto.ChatReplyMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		cs.log.Error("consumer", "Failed to unmarshal reply message", map[string]interface{}{"error": err.Error()})
		return
	}

	time.Sleep(cs.assistantReplyDelay)

	err := cs.withRetry(func() error {
		uow := cs.uowFactory.NewUnitOfWork(ctx)
		reply := &entity.Message{
			UserId:  payload.UserId,
			Content: constant.AssistantReplyContent,
			Role:    entity.MessageRoleAssistant,
		}
		return uow.MessageRepository().Create(ctx, reply)
	})
	if err != nil {
		cs.log.Error("consumer", "Giving up on reply job", map[string]interface{}{
			"user_id":  payload.UserId,
			"attempts": consumerMaxAttempts,
			"error":    err.Error(),
		})
	}
}

// withRetry runs fn up to consumerMaxAttempts times with a short pause between
// attempts. The in-memory broker redelivers nacked messages immediately, which
// would re-run the full simulated delay on every attempt, so failed jobs are
// retried in place instead.
func (cs *consumerService) withRetry(fn func() error) error {
	var err error
	for attempt := 1; attempt <= consumerMaxAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if attempt < consumerMaxAttempts {
			time.Sleep(consumerRetryBackoff)
		}
	}
	return err
}
