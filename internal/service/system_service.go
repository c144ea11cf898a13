package service

import (
	"context"
	"time"

	"docintel-be/internal/dto"
	"docintel-be/internal/entity"
	"docintel-be/internal/repository/unitofwork"
)

type ISystemService interface {
	SystemStatus(ctx context.Context) ([]dto.SystemStatusResponse, error)
	UpsertComponentStatus(ctx context.Context, component string, status entity.ComponentStatus, message *string) error
	LlmServerStatus(ctx context.Context) ([]dto.LlmServerStatusResponse, error)
	LlmServerPing(ctx context.Context, req *dto.LlmServerPingRequest) (*dto.LlmServerStatusResponse, error)
}

type systemService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewSystemService(uowFactory unitofwork.RepositoryFactory) ISystemService {
	return &systemService{
		uowFactory: uowFactory,
	}
}

func (s *systemService) SystemStatus(ctx context.Context) ([]dto.SystemStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	statuses, err := uow.SystemStatusRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.SystemStatusResponse, 0, len(statuses))
	for _, st := range statuses {
		result = append(result, toSystemStatusResponse(st))
	}
	return result, nil
}

func (s *systemService) UpsertComponentStatus(ctx context.Context, component string, status entity.ComponentStatus, message *string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.SystemStatusRepository().Upsert(ctx, &entity.SystemStatus{
		Component: component,
		Status:    status,
		Message:   message,
	})
}

func (s *systemService) LlmServerStatus(ctx context.Context) ([]dto.LlmServerStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	statuses, err := uow.LlmServerStatusRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.LlmServerStatusResponse, 0, len(statuses))
	for _, st := range statuses {
		result = append(result, toLlmServerStatusResponse(st))
	}
	return result, nil
}

// LlmServerPing upserts by endpoint: one current row per server, refreshed on
// every ping rather than appended.
func (s *systemService) LlmServerPing(ctx context.Context, req *dto.LlmServerPingRequest) (*dto.LlmServerStatusResponse, error) {
	status := &entity.LlmServerStatus{
		ServerEndpoint: req.ServerEndpoint,
		Status:         entity.ComponentStatusOnline,
		LastPing:       time.Now(),
		Version:        req.Version,
		Capabilities:   req.Capabilities,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.LlmServerStatusRepository().Upsert(ctx, status); err != nil {
		return nil, err
	}

	res := toLlmServerStatusResponse(status)
	return &res, nil
}
