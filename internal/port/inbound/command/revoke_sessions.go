package command

import (
	"context"

	"github.com/arclight-ops/entra-revoker/internal/domain/model"
)

// RevokeSessions revokes every sign-in session of a directory user.
type RevokeSessions struct {
	UserPrincipalName string
	Address           string
	Context           model.ExecutionContext
}

func (c RevokeSessions) CommandName() string {
	return "entra.revoke_sessions"
}

// RevokeSessionsResult is the success payload returned to the host.
type RevokeSessionsResult = model.RevocationResult

// RevokeSessionsHandler handles the RevokeSessions command.
type RevokeSessionsHandler interface {
	Handle(ctx context.Context, cmd RevokeSessions) (RevokeSessionsResult, error)
}
