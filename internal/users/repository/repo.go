package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/company-mgmt/company-api-backend/internal/storage/fstore"
)

const collection = "company-management-users"

// Repo mirrors signed-up accounts into Firestore so the rest of the system
// can reference them. Firebase Auth remains the authority on credentials.
type Repo struct {
	client *firestore.Client
}

func NewRepo(client *firestore.Client) *Repo {
	return &Repo{client: client}
}

type accountDoc struct {
	Email     string    `firestore:"email"`
	CreatedAt time.Time `firestore:"createdAt"`
}

// Ensure writes the account mirror document, keyed by the Firebase uid.
// Re-running for an existing uid overwrites the same document.
func (r *Repo) Ensure(ctx context.Context, uid, email string) error {
	ctx, cancel := fstore.WithCallTimeout(ctx)
	defer cancel()

	_, err := r.client.Collection(collection).Doc(uid).Set(ctx, accountDoc{
		Email:     email,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fstore.MapError(err)
	}
	return nil
}
