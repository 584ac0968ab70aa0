package command

import (
	"context"

	"github.com/arclight-ops/entra-revoker/internal/domain/model"
	"github.com/arclight-ops/entra-revoker/internal/port/inbound/command"
)

// haltHandler implements command.HaltHandler.
type haltHandler struct{}

// NewHaltHandler creates a new HaltHandler.
func NewHaltHandler() command.HaltHandler {
	return haltHandler{}
}

func (haltHandler) Handle(ctx context.Context, cmd command.Halt) model.HaltResult {
	user := cmd.UserPrincipalName
	if user == "" {
		user = model.UnknownUser
	}
	return model.HaltResult{
		Status:            model.StatusHalted,
		UserPrincipalName: user,
		Reason:            cmd.Reason,
	}
}
