// Package services maps domain operations onto single API calls. Each
// function issues exactly one request, never retries, and rethrows
// whatever normalized error the gateway produced; turning an error into
// user-visible state is the shell's job alone.
package services

import (
	"context"
	"errors"
	"net/url"

	"github.com/apetrenko/eventhub/internal/client/models"
)

// Gateway is the request surface the services need from the API client.
type Gateway interface {
	Get(ctx context.Context, path string, query url.Values, result any) error
	Post(ctx context.Context, path string, body, result any) error
	Delete(ctx context.Context, path string, result any) error
}

// SessionStore is the slice of the session store the user service needs
// to persist credentials returned by login/register.
type SessionStore interface {
	Establish(ctx context.Context, user models.User, token string) error
}

// remoteError converts a success:false payload delivered on a 2xx
// response into an error, so callers face a closed set of outcomes
// instead of probing response fields.
func remoteError(msg, fallback string) error {
	if msg == "" {
		msg = fallback
	}
	return errors.New(msg)
}
