package repository

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"github.com/company-mgmt/company-api-backend/internal/storage/fstore"
	"github.com/company-mgmt/company-api-backend/internal/tasks/domain"
)

const collection = "tasks"

// Repo persists tasks in the flat "tasks" Firestore collection keyed by the
// generated id. Tasks reference their company only through the companyId field.
type Repo struct {
	client *firestore.Client
}

func NewRepo(client *firestore.Client) *Repo {
	return &Repo{client: client}
}

func (r *Repo) List(ctx context.Context) ([]domain.Task, error) {
	ctx, cancel := fstore.WithCallTimeout(ctx)
	defer cancel()

	iter := r.client.Collection(collection).Documents(ctx)
	defer iter.Stop()

	out := make([]domain.Task, 0, 16)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fstore.MapError(err)
		}

		var t domain.Task
		if err := doc.DataTo(&t); err != nil {
			return nil, err
		}
		t.ID = doc.Ref.ID
		out = append(out, t)
	}
	return out, nil
}

func (r *Repo) Get(ctx context.Context, id string) (*domain.Task, error) {
	ctx, cancel := fstore.WithCallTimeout(ctx)
	defer cancel()

	doc, err := r.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		return nil, fstore.MapError(err)
	}

	var t domain.Task
	if err := doc.DataTo(&t); err != nil {
		return nil, err
	}
	t.ID = doc.Ref.ID
	return &t, nil
}

func (r *Repo) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	ctx, cancel := fstore.WithCallTimeout(ctx)
	defer cancel()

	now := time.Now().UTC()
	t.ID = uuid.New().String()
	t.CreatedAt = now
	t.UpdatedAt = now

	if _, err := r.client.Collection(collection).Doc(t.ID).Create(ctx, t); err != nil {
		return nil, fstore.MapError(err)
	}
	return t, nil
}

func (r *Repo) Update(ctx context.Context, id string, t *domain.Task) (*domain.Task, error) {
	existing, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := fstore.WithCallTimeout(ctx)
	defer cancel()

	t.ID = id
	t.CreatedAt = existing.CreatedAt
	t.UpdatedAt = time.Now().UTC()

	if _, err := r.client.Collection(collection).Doc(id).Set(ctx, t); err != nil {
		return nil, fstore.MapError(err)
	}
	return t, nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}

	ctx, cancel := fstore.WithCallTimeout(ctx)
	defer cancel()

	if _, err := r.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return fstore.MapError(err)
	}
	return nil
}
