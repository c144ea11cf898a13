package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"docintel-be/internal/entity"
	"docintel-be/internal/repository/specification"
)

type microsoftFileRepository struct {
	store *Store
}

func cloneMicrosoftFile(f *entity.MicrosoftFile) *entity.MicrosoftFile {
	if f == nil {
		return nil
	}
	c := *f
	if f.Metadata != nil {
		c.Metadata = append(c.Metadata[:0:0], f.Metadata...)
	}
	return &c
}

func microsoftFileMatches(f *entity.MicrosoftFile, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if f.Id != s.ID {
				return false
			}
		case specification.OwnedBy:
			if f.UserId != s.UserID {
				return false
			}
		}
	}
	return true
}

func (r *microsoftFileRepository) Upsert(ctx context.Context, file *entity.MicrosoftFile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.msFiles {
		if existing.UserId == file.UserId && existing.MicrosoftFileId == file.MicrosoftFileId {
			file.Id = existing.Id
			file.CreatedAt = existing.CreatedAt
			r.store.msFiles[file.Id] = cloneMicrosoftFile(file)
			return nil
		}
	}
	file.Id = r.store.nextMsFileId
	r.store.nextMsFileId++
	if file.CreatedAt.IsZero() {
		file.CreatedAt = time.Now()
	}
	r.store.msFiles[file.Id] = cloneMicrosoftFile(file)
	return nil
}

func (r *microsoftFileRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MicrosoftFile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var result []*entity.MicrosoftFile
	for _, f := range r.store.msFiles {
		if microsoftFileMatches(f, specs) {
			result = append(result, cloneMicrosoftFile(f))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Id < result[j].Id })
	return result, nil
}

func (r *microsoftFileRepository) TouchLastAccessed(ctx context.Context, id uint, at time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	f, ok := r.store.msFiles[id]
	if !ok {
		return fmt.Errorf("microsoft file %d not found", id)
	}
	f.LastAccessed = at
	return nil
}
