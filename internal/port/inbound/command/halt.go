package command

import (
	"context"

	"github.com/arclight-ops/entra-revoker/internal/domain/model"
)

// Halt reports that the host stopped the action before completion.
type Halt struct {
	Reason            string
	UserPrincipalName string
}

func (c Halt) CommandName() string {
	return "entra.halt"
}

// HaltHandler handles the Halt command. It never fails; there are no
// resources to release because the action holds nothing across calls.
type HaltHandler interface {
	Handle(ctx context.Context, cmd Halt) model.HaltResult
}
