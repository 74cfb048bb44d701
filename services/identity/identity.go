package identity

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"
)

// Directory exposes the one identity-provider read the pipeline needs:
// resolving a buyer's email when the profile record lacks one. The lookup
// requires admin privilege, which is why it lives behind this seam instead
// of a profile-table query.
type Directory interface {
	EmailByID(ctx context.Context, userID string) (string, error)
}

// FirebaseDirectory is the production Directory backed by the Firebase Auth
// admin SDK.
type FirebaseDirectory struct {
	Client *auth.Client
}

func NewFirebaseDirectory(client *auth.Client) (*FirebaseDirectory, error) {
	if client == nil {
		return nil, fmt.Errorf("identity directory initialization error: auth client is nil")
	}
	return &FirebaseDirectory{Client: client}, nil
}

// EmailByID returns the email registered on the identity-provider account,
// which may exist even when the profile row carries none (social sign-ins).
func (d *FirebaseDirectory) EmailByID(ctx context.Context, userID string) (string, error) {
	record, err := d.Client.GetUser(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("EmailByID: could not fetch account %s: %w", userID, err)
	}
	return record.Email, nil
}
