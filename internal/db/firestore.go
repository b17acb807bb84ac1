package db

import (
	"context"
	"encoding/base64"
	"fmt"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/karizzz/subletez-backend/internal/config"
)

// Clients bundles the external Firebase-backed collaborators: the document
// store, the identity provider's admin surface and the blob store bucket.
// The composition root constructs exactly one Clients value, injects the
// pieces where needed and closes it on shutdown; nothing in this package
// holds global state.
type Clients struct {
	Firestore *firestore.Client
	Auth      *auth.Client
	Bucket    *storage.BucketHandle
}

// NewClients initializes the Firebase Admin SDK from the application config
// and derives the Firestore, Auth and Storage clients from it.
func NewClients(ctx context.Context, appConfig *config.Config) (*Clients, error) {
	if appConfig == nil {
		return nil, fmt.Errorf("db.NewClients: appConfig cannot be nil")
	}

	var opts []option.ClientOption
	switch {
	case appConfig.GoogleApplicationCredentials != "":
		opts = append(opts, option.WithCredentialsFile(appConfig.GoogleApplicationCredentials))
	case appConfig.FirebaseServiceAccountJSONBase64 != "":
		decoded, err := base64.StdEncoding.DecodeString(appConfig.FirebaseServiceAccountJSONBase64)
		if err != nil {
			return nil, fmt.Errorf("failed to decode FIREBASE_SERVICE_ACCOUNT_JSON_BASE64: %w", err)
		}
		opts = append(opts, option.WithCredentialsJSON(decoded))
	default:
		// Fall through to Application Default Credentials.
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     appConfig.FirebaseProjectID,
		StorageBucket: appConfig.StorageBucket,
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase.NewApp: %w", err)
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("app.Firestore: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		fsClient.Close()
		return nil, fmt.Errorf("app.Auth: %w", err)
	}

	storageClient, err := app.Storage(ctx)
	if err != nil {
		fsClient.Close()
		return nil, fmt.Errorf("app.Storage: %w", err)
	}
	bucket, err := storageClient.DefaultBucket()
	if err != nil {
		fsClient.Close()
		return nil, fmt.Errorf("storage.DefaultBucket: %w", err)
	}

	return &Clients{
		Firestore: fsClient,
		Auth:      authClient,
		Bucket:    bucket,
	}, nil
}

// Close releases the underlying connections. Safe to call on a nil receiver.
func (c *Clients) Close() error {
	if c == nil || c.Firestore == nil {
		return nil
	}
	return c.Firestore.Close()
}
