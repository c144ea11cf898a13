package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"docintel-be/internal/entity"
	"docintel-be/internal/repository/specification"
)

type approvalRequestRepository struct {
	store *Store
}

func cloneApproval(a *entity.ApprovalRequest) *entity.ApprovalRequest {
	if a == nil {
		return nil
	}
	c := *a
	if a.RequestReason != nil {
		v := *a.RequestReason
		c.RequestReason = &v
	}
	if a.ReviewedBy != nil {
		v := *a.ReviewedBy
		c.ReviewedBy = &v
	}
	if a.ReviewedAt != nil {
		v := *a.ReviewedAt
		c.ReviewedAt = &v
	}
	if a.ReviewNotes != nil {
		v := *a.ReviewNotes
		c.ReviewNotes = &v
	}
	return &c
}

func approvalMatches(a *entity.ApprovalRequest, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if a.Id != s.ID {
				return false
			}
		case specification.ByEmail:
			if a.Email != s.Email {
				return false
			}
		case specification.ByMicrosoftId:
			if a.MicrosoftId != s.MicrosoftId {
				return false
			}
		case specification.ByStatus:
			if string(a.Status) != s.Status {
				return false
			}
		}
	}
	return true
}

func (r *approvalRequestRepository) Create(ctx context.Context, req *entity.ApprovalRequest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	req.Id = r.store.nextApprovalId
	r.store.nextApprovalId++
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now()
	}
	r.store.approvals[req.Id] = cloneApproval(req)
	return nil
}

func (r *approvalRequestRepository) Update(ctx context.Context, req *entity.ApprovalRequest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.approvals[req.Id]; !ok {
		return fmt.Errorf("approval request %d not found", req.Id)
	}
	r.store.approvals[req.Id] = cloneApproval(req)
	return nil
}

func (r *approvalRequestRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ApprovalRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, a := range r.store.approvals {
		if approvalMatches(a, specs) {
			return cloneApproval(a), nil
		}
	}
	return nil, nil
}

func (r *approvalRequestRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ApprovalRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var result []*entity.ApprovalRequest
	for _, a := range r.store.approvals {
		if approvalMatches(a, specs) {
			result = append(result, cloneApproval(a))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}
