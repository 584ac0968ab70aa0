// Package identity defines the outbound ports the action uses to talk
// to the identity provider.
package identity

import (
	"context"

	"github.com/arclight-ops/entra-revoker/internal/domain/model"
)

// TokenAcquirer turns resolved credentials into a usable access token.
// A pre-issued token is returned as-is; client credentials cost one
// exchange against the token endpoint.
type TokenAcquirer interface {
	AcquireToken(ctx context.Context, creds model.Credentials) (string, error)
}

// SessionRevoker performs the revocation call against the provider.
type SessionRevoker interface {
	RevokeSignInSessions(ctx context.Context, address, userPrincipalName, token string) (bool, error)
}
