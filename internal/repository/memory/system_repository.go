package memory

import (
	"context"
	"sort"
	"time"

	"docintel-be/internal/entity"
)

type systemStatusRepository struct {
	store *Store
}

func cloneSystemStatus(s *entity.SystemStatus) *entity.SystemStatus {
	if s == nil {
		return nil
	}
	c := *s
	if s.Message != nil {
		msg := *s.Message
		c.Message = &msg
	}
	return &c
}

func (r *systemStatusRepository) Upsert(ctx context.Context, status *entity.SystemStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if existing, ok := r.store.systemStatus[status.Component]; ok {
		status.Id = existing.Id
	} else {
		status.Id = r.store.nextStatusId
		r.store.nextStatusId++
	}
	status.UpdatedAt = time.Now()
	r.store.systemStatus[status.Component] = cloneSystemStatus(status)
	return nil
}

func (r *systemStatusRepository) FindAll(ctx context.Context) ([]*entity.SystemStatus, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*entity.SystemStatus, 0, len(r.store.systemStatus))
	for _, s := range r.store.systemStatus {
		result = append(result, cloneSystemStatus(s))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Id < result[j].Id })
	return result, nil
}

type llmServerStatusRepository struct {
	store *Store
}

func cloneLlmStatus(s *entity.LlmServerStatus) *entity.LlmServerStatus {
	if s == nil {
		return nil
	}
	c := *s
	if s.Version != nil {
		v := *s.Version
		c.Version = &v
	}
	if s.Capabilities != nil {
		c.Capabilities = append(c.Capabilities[:0:0], s.Capabilities...)
	}
	return &c
}

func (r *llmServerStatusRepository) Upsert(ctx context.Context, status *entity.LlmServerStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if existing, ok := r.store.llmStatus[status.ServerEndpoint]; ok {
		status.Id = existing.Id
	} else {
		status.Id = r.store.nextLlmId
		r.store.nextLlmId++
	}
	status.UpdatedAt = time.Now()
	r.store.llmStatus[status.ServerEndpoint] = cloneLlmStatus(status)
	return nil
}

func (r *llmServerStatusRepository) FindAll(ctx context.Context) ([]*entity.LlmServerStatus, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*entity.LlmServerStatus, 0, len(r.store.llmStatus))
	for _, s := range r.store.llmStatus {
		result = append(result, cloneLlmStatus(s))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Id < result[j].Id })
	return result, nil
}
