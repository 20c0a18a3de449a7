package bootstrap

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/company-mgmt/company-api-backend/config"
	"github.com/company-mgmt/company-api-backend/internal/storage/fstore"
)

// Firebase bundles the two clients the service needs: token verification
// for the auth middleware and Firestore for the repositories.
type Firebase struct {
	Auth  *fbauth.Client
	Store *firestore.Client
}

func InitFirebase(ctx context.Context, cfg *config.FirebaseConfig) (*Firebase, error) {
	store, err := fstore.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Auth client: %w", err)
	}

	return &Firebase{Auth: authClient, Store: store}, nil
}
