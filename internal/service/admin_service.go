package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"docintel-be/internal/dto"
	"docintel-be/internal/entity"
	"docintel-be/internal/pkg/logger"
	"docintel-be/internal/pkg/mailer"
	"docintel-be/internal/repository/specification"
	"docintel-be/internal/repository/unitofwork"
)

var (
	ErrApprovalRequestNotFound = errors.New("approval request not found")
	ErrApprovalAlreadyDecided  = errors.New("approval request already decided")
)

type IAdminService interface {
	PendingApprovalRequests(ctx context.Context) ([]dto.ApprovalRequestResponse, error)
	DecideApprovalRequest(ctx context.Context, adminId uint, requestId uint, req *dto.ApprovalDecisionRequest) (*dto.ApprovalDecisionResponse, error)
}

type adminService struct {
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
	log          logger.ILogger
}

func NewAdminService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IAdminService {
	return &adminService{
		uowFactory:   uowFactory,
		emailService: emailService,
		log:          log,
	}
}

func (s *adminService) PendingApprovalRequests(ctx context.Context) ([]dto.ApprovalRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	requests, err := uow.ApprovalRequestRepository().FindAll(ctx,
		specification.ByStatus{Status: string(entity.ApprovalStatusPending)},
	)
	if err != nil {
		return nil, err
	}

	result := make([]dto.ApprovalRequestResponse, 0, len(requests))
	for _, r := range requests {
		result = append(result, toApprovalRequestResponse(r))
	}
	return result, nil
}

// DecideApprovalRequest transitions a pending request to its terminal state.
// Approval creates the linked user account in the same transaction.
func (s *adminService) DecideApprovalRequest(ctx context.Context, adminId uint, requestId uint, req *dto.ApprovalDecisionRequest) (*dto.ApprovalDecisionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.ApprovalRequestRepository().FindOne(ctx, specification.ByID{ID: requestId})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, ErrApprovalRequestNotFound
	}
	if request.Status != entity.ApprovalStatusPending {
		return nil, ErrApprovalAlreadyDecided
	}

	now := time.Now()
	request.Status = entity.ApprovalStatus(req.Decision)
	request.ReviewedBy = &adminId
	request.ReviewedAt = &now
	request.ReviewNotes = req.ReviewNotes

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ApprovalRequestRepository().Update(ctx, request); err != nil {
		return nil, err
	}

	var createdUser *entity.User
	if request.Status == entity.ApprovalStatusApproved {
		username, err := s.availableUsername(ctx, uow, usernameFromEmail(request.Email))
		if err != nil {
			return nil, err
		}
		microsoftId := request.MicrosoftId
		createdUser = &entity.User{
			Username:       username,
			Email:          request.Email,
			PasswordHash:   nil, // Microsoft Graph accounts have no password
			Role:           entity.UserRoleUser,
			FirstName:      request.FirstName,
			LastName:       request.LastName,
			StorageLimitMB: entity.DefaultStorageLimitMB,
			MicrosoftId:    &microsoftId,
			IsApproved:     true,
			ApprovedBy:     &adminId,
			ApprovedAt:     &now,
		}
		if err := uow.UserRepository().Create(ctx, createdUser); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// Notification is best-effort; the decision stands regardless.
	go func(email, firstName string, approved bool, notes *string) {
		notesStr := ""
		if notes != nil {
			notesStr = *notes
		}
		if err := s.emailService.SendApprovalDecision(email, firstName, approved, notesStr); err != nil {
			s.log.Warn("admin", "Approval decision email failed", map[string]interface{}{
				"email": email,
				"error": err.Error(),
			})
		}
	}(request.Email, request.FirstName, request.Status == entity.ApprovalStatusApproved, request.ReviewNotes)

	if createdUser != nil {
		user := toUserResponse(createdUser)
		return &dto.ApprovalDecisionResponse{
			Message: "User approved and account created",
			User:    &user,
		}, nil
	}
	return &dto.ApprovalDecisionResponse{Message: "User access rejected"}, nil
}

func usernameFromEmail(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}

// availableUsername returns base unchanged when it is free, otherwise the
// first numeric-suffixed variant no existing account uses.
func (s *adminService) availableUsername(ctx context.Context, uow unitofwork.UnitOfWork, base string) (string, error) {
	username := base
	for suffix := 2; ; suffix++ {
		existing, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: username})
		if err != nil {
			return "", err
		}
		if existing == nil {
			return username, nil
		}
		username = fmt.Sprintf("%s%d", base, suffix)
	}
}
