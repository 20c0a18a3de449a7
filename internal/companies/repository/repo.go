package repository

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"github.com/company-mgmt/company-api-backend/internal/companies/domain"
	"github.com/company-mgmt/company-api-backend/internal/storage/fstore"
)

const collection = "companies"

// Repo persists companies in the "companies" Firestore collection, one
// document per company keyed by the generated id.
type Repo struct {
	client *firestore.Client
}

func NewRepo(client *firestore.Client) *Repo {
	return &Repo{client: client}
}

func (r *Repo) List(ctx context.Context) ([]domain.Company, error) {
	ctx, cancel := fstore.WithCallTimeout(ctx)
	defer cancel()

	iter := r.client.Collection(collection).Documents(ctx)
	defer iter.Stop()

	out := make([]domain.Company, 0, 16)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fstore.MapError(err)
		}

		var c domain.Company
		if err := doc.DataTo(&c); err != nil {
			return nil, err
		}
		c.ID = doc.Ref.ID
		out = append(out, c)
	}
	return out, nil
}

func (r *Repo) Get(ctx context.Context, id string) (*domain.Company, error) {
	ctx, cancel := fstore.WithCallTimeout(ctx)
	defer cancel()

	doc, err := r.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		return nil, fstore.MapError(err)
	}

	var c domain.Company
	if err := doc.DataTo(&c); err != nil {
		return nil, err
	}
	c.ID = doc.Ref.ID
	return &c, nil
}

func (r *Repo) Create(ctx context.Context, c *domain.Company) (*domain.Company, error) {
	ctx, cancel := fstore.WithCallTimeout(ctx)
	defer cancel()

	now := time.Now().UTC()
	c.ID = uuid.New().String()
	c.CreatedAt = now
	c.UpdatedAt = now

	if _, err := r.client.Collection(collection).Doc(c.ID).Create(ctx, c); err != nil {
		return nil, fstore.MapError(err)
	}
	return c, nil
}

// Update replaces the stored document. The id and creation time survive the
// replace; a missing id fails with the not-found sentinel before any write.
func (r *Repo) Update(ctx context.Context, id string, c *domain.Company) (*domain.Company, error) {
	existing, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := fstore.WithCallTimeout(ctx)
	defer cancel()

	c.ID = id
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now().UTC()

	if _, err := r.client.Collection(collection).Doc(id).Set(ctx, c); err != nil {
		return nil, fstore.MapError(err)
	}
	return c, nil
}

// Delete removes the document. Deleting an absent id reports not-found rather
// than succeeding, so a second delete of the same id fails.
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
