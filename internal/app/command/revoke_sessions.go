package command

import (
	"context"

	domainerror "github.com/arclight-ops/entra-revoker/internal/domain/error"
	"github.com/arclight-ops/entra-revoker/internal/domain/model"
	"github.com/arclight-ops/entra-revoker/internal/port/inbound/command"
	"github.com/arclight-ops/entra-revoker/internal/port/outbound/identity"
)

// revokeSessionsHandler implements command.RevokeSessionsHandler.
type revokeSessionsHandler struct {
	acquirer identity.TokenAcquirer
	revoker  identity.SessionRevoker
}

// NewRevokeSessionsHandler creates a new RevokeSessionsHandler.
func NewRevokeSessionsHandler(
	acquirer identity.TokenAcquirer,
	revoker identity.SessionRevoker,
) command.RevokeSessionsHandler {
	return &revokeSessionsHandler{
		acquirer: acquirer,
		revoker:  revoker,
	}
}

func (h *revokeSessionsHandler) Handle(ctx context.Context, cmd command.RevokeSessions) (command.RevokeSessionsResult, error) {
	if cmd.UserPrincipalName == "" {
		return command.RevokeSessionsResult{}, domainerror.ErrUserPrincipalNameRequired
	}

	address := cmd.Address
	if address == "" {
		address = cmd.Context.Environment(model.EnvAddress)
	}
	if address == "" {
		return command.RevokeSessionsResult{}, domainerror.ErrAddressRequired
	}

	creds, err := model.ResolveCredentials(cmd.Context)
	if err != nil {
		return command.RevokeSessionsResult{}, err
	}

	token, err := h.acquirer.AcquireToken(ctx, creds)
	if err != nil {
		return command.RevokeSessionsResult{}, err
	}

	value, err := h.revoker.RevokeSignInSessions(ctx, address, cmd.UserPrincipalName, token)
	if err != nil {
		return command.RevokeSessionsResult{}, err
	}

	return command.RevokeSessionsResult{
		Status:            model.StatusSuccess,
		UserPrincipalName: cmd.UserPrincipalName,
		Value:             value,
	}, nil
}
