package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"docintel-be/internal/entity"
	"docintel-be/internal/repository/specification"
)

type documentRepository struct {
	store *Store
}

func cloneDocument(d *entity.Document) *entity.Document {
	if d == nil {
		return nil
	}
	c := *d
	if d.Metadata != nil {
		c.Metadata = append(c.Metadata[:0:0], d.Metadata...)
	}
	return &c
}

func documentMatches(d *entity.Document, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if d.Id != s.ID {
				return false
			}
		case specification.OwnedBy:
			if d.UserId != s.UserID {
				return false
			}
		case specification.SharedOnly:
			if !d.IsShared {
				return false
			}
		case specification.ProcessingOnly:
			if !d.IsProcessing {
				return false
			}
		case specification.NameContains:
			q := strings.ToLower(s.Query)
			if !strings.Contains(strings.ToLower(d.Filename), q) &&
				!strings.Contains(strings.ToLower(d.OriginalName), q) {
				return false
			}
		}
	}
	return true
}

func orderDocuments(docs []*entity.Document, specs []specification.Specification) []*entity.Document {
	for _, spec := range specs {
		if s, ok := spec.(specification.OrderBy); ok && s.Field == "created_at" {
			sort.Slice(docs, func(i, j int) bool {
				if s.Desc {
					return docs[i].CreatedAt.After(docs[j].CreatedAt)
				}
				return docs[i].CreatedAt.Before(docs[j].CreatedAt)
			})
		}
	}
	return docs
}

func (r *documentRepository) Create(ctx context.Context, doc *entity.Document) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	doc.Id = r.store.nextDocumentId
	r.store.nextDocumentId++
	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now
	r.store.documents[doc.Id] = cloneDocument(doc)
	return nil
}

func (r *documentRepository) Update(ctx context.Context, doc *entity.Document) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.documents[doc.Id]; !ok {
		return fmt.Errorf("document %d not found", doc.Id)
	}
	doc.UpdatedAt = time.Now()
	r.store.documents[doc.Id] = cloneDocument(doc)
	return nil
}

func (r *documentRepository) Delete(ctx context.Context, id uint) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.documents[id]; !ok {
		return false, nil
	}
	delete(r.store.documents, id)
	return true, nil
}

func (r *documentRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Document, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, d := range r.store.documents {
		if documentMatches(d, specs) {
			return cloneDocument(d), nil
		}
	}
	return nil, nil
}

func (r *documentRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Document, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var result []*entity.Document
	for _, d := range r.store.documents {
		if documentMatches(d, specs) {
			result = append(result, cloneDocument(d))
		}
	}
	return orderDocuments(result, specs), nil
}

func (r *documentRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var count int64
	for _, d := range r.store.documents {
		if documentMatches(d, specs) {
			count++
		}
	}
	return count, nil
}
