// Package identity verifies Firebase ID tokens presented next to the firebase-uid header.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	fb "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

var ErrMissingToken = errors.New("missing bearer token")

// Verifier resolves an ID token to the Firebase uid it was issued for
type Verifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (string, error)
}

type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type FirebaseVerifier struct {
	client  tokenVerifier
	timeout time.Duration
}

// NewFirebaseVerifier uses the inline service account JSON when given,
// otherwise Application Default Credentials.
func NewFirebaseVerifier(ctx context.Context, projectID, credentialsJSON string) (*FirebaseVerifier, error) {
	var opts []option.ClientOption
	if sa := strings.TrimSpace(credentialsJSON); sa != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(sa)))
	}

	app, err := fb.NewApp(ctx, &fb.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase auth client: %w", err)
	}
	return &FirebaseVerifier{client: client, timeout: 5 * time.Second}, nil
}

func (v *FirebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	if idToken == "" {
		return "", ErrMissingToken
	}
	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	t, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", err
	}
	return t.UID, nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" value
func BearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}
