package memory

import (
	"context"
	"sort"
	"time"

	"docintel-be/internal/entity"
	"docintel-be/internal/repository/specification"
)

type messageRepository struct {
	store *Store
}

func cloneMessage(m *entity.Message) *entity.Message {
	if m == nil {
		return nil
	}
	c := *m
	if m.Sources != nil {
		c.Sources = append(c.Sources[:0:0], m.Sources...)
	}
	return &c
}

func messageMatches(m *entity.Message, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if m.Id != s.ID {
				return false
			}
		case specification.OwnedBy:
			if m.UserId != s.UserID {
				return false
			}
		case specification.ByRole:
			if string(m.Role) != s.Role {
				return false
			}
		case specification.CreatedSince:
			if m.CreatedAt.Before(s.Since) {
				return false
			}
		}
	}
	return true
}

func (r *messageRepository) Create(ctx context.Context, msg *entity.Message) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	msg.Id = r.store.nextMessageId
	r.store.nextMessageId++
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	r.store.messages[msg.Id] = cloneMessage(msg)
	return nil
}

func (r *messageRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var result []*entity.Message
	for _, m := range r.store.messages {
		if messageMatches(m, specs) {
			result = append(result, cloneMessage(m))
		}
	}
	for _, spec := range specs {
		if s, ok := spec.(specification.OrderBy); ok && s.Field == "created_at" {
			sort.Slice(result, func(i, j int) bool {
				if s.Desc {
					return result[i].CreatedAt.After(result[j].CreatedAt)
				}
				return result[i].CreatedAt.Before(result[j].CreatedAt)
			})
		}
	}
	for _, spec := range specs {
		if s, ok := spec.(specification.Pagination); ok {
			if s.Offset >= len(result) {
				return nil, nil
			}
			result = result[s.Offset:]
			if s.Limit > 0 && s.Limit < len(result) {
				result = result[:s.Limit]
			}
		}
	}
	return result, nil
}

func (r *messageRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var count int64
	for _, m := range r.store.messages {
		if messageMatches(m, specs) {
			count++
		}
	}
	return count, nil
}
