// Package fstore owns the Firestore client construction and the translation
// of store failures into the shared storage error taxonomy.
package fstore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"github.com/company-mgmt/company-api-backend/config"
)

// CallTimeout bounds every single store call. The underlying SDK has no
// default deadline, so a stalled connection would otherwise hang the request.
const CallTimeout = 5 * time.Second

// NewClient initializes the Firebase app once and returns its Firestore client.
// Credentials come from the service-account file when configured, otherwise
// from Application Default Credentials.
func NewClient(ctx context.Context, cfg *config.FirebaseConfig) (*firestore.Client, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("FIREBASE_PROJECT_ID is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firestore client: %w", err)
	}

	return client, nil
}

// WithCallTimeout derives the per-call context used by the repositories.
func WithCallTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, CallTimeout)
}
