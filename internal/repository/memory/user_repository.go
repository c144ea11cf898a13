package memory

import (
	"context"
	"fmt"
	"time"

	"docintel-be/internal/entity"
	"docintel-be/internal/repository/specification"
)

type userRepository struct {
	store *Store
}

func cloneUser(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

func userMatches(u *entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if u.Id != s.ID {
				return false
			}
		case specification.ByEmail:
			if u.Email != s.Email {
				return false
			}
		case specification.ByUsername:
			if u.Username != s.Username {
				return false
			}
		case specification.ByMicrosoftId:
			if u.MicrosoftId == nil || *u.MicrosoftId != s.MicrosoftId {
				return false
			}
		}
	}
	return true
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.users {
		if existing.Email == user.Email {
			return fmt.Errorf("duplicate email: %s", user.Email)
		}
		if existing.Username == user.Username {
			return fmt.Errorf("duplicate username: %s", user.Username)
		}
		if user.MicrosoftId != nil && existing.MicrosoftId != nil && *existing.MicrosoftId == *user.MicrosoftId {
			return fmt.Errorf("duplicate microsoft id: %s", *user.MicrosoftId)
		}
	}

	user.Id = r.store.nextUserId
	r.store.nextUserId++
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.store.users[user.Id] = cloneUser(user)
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[user.Id]; !ok {
		return fmt.Errorf("user %d not found", user.Id)
	}
	user.UpdatedAt = time.Now()
	r.store.users[user.Id] = cloneUser(user)
	return nil
}

func (r *userRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if userMatches(u, specs) {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (r *userRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var result []*entity.User
	for _, u := range r.store.users {
		if userMatches(u, specs) {
			result = append(result, cloneUser(u))
		}
	}
	return result, nil
}

func (r *userRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var count int64
	for _, u := range r.store.users {
		if userMatches(u, specs) {
			count++
		}
	}
	return count, nil
}

func (r *userRepository) UpdateLastLogin(ctx context.Context, id uint, at time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	u, ok := r.store.users[id]
	if !ok {
		return fmt.Errorf("user %d not found", id)
	}
	t := at
	u.LastLoginAt = &t
	u.UpdatedAt = time.Now()
	return nil
}

func (r *userRepository) UpdateMicrosoftTokens(ctx context.Context, id uint, accessToken, refreshToken string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	u, ok := r.store.users[id]
	if !ok {
		return fmt.Errorf("user %d not found", id)
	}
	u.MicrosoftAccessToken = &accessToken
	u.MicrosoftRefreshToken = &refreshToken
	u.UpdatedAt = time.Now()
	return nil
}

func (r *userRepository) AddStorageUsed(ctx context.Context, id uint, deltaMB int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	u, ok := r.store.users[id]
	if !ok {
		return fmt.Errorf("user %d not found", id)
	}
	u.StorageUsedMB += deltaMB
	u.UpdatedAt = time.Now()
	return nil
}
