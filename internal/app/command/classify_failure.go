package command

import (
	"context"
	"strings"
	"time"

	domainerror "github.com/arclight-ops/entra-revoker/internal/domain/error"
	"github.com/arclight-ops/entra-revoker/internal/domain/model"
	"github.com/arclight-ops/entra-revoker/internal/port/inbound/command"
)

// Retry delay hints handed back to the host scheduler.
const (
	RetryAfterThrottle    = 5 * time.Second
	RetryAfterUnavailable = 3 * time.Second
)

var unavailableStatuses = []string{"502", "503", "504"}

// classifyFailureHandler implements command.ClassifyFailureHandler.
// Classification is a pure substring match on the failure message:
// status codes travel embedded in the message text because the host
// round-trips failures as strings.
type classifyFailureHandler struct{}

// NewClassifyFailureHandler creates a new ClassifyFailureHandler.
func NewClassifyFailureHandler() command.ClassifyFailureHandler {
	return classifyFailureHandler{}
}

func (classifyFailureHandler) Handle(ctx context.Context, cmd command.ClassifyFailure) (command.ClassifyFailureResult, error) {
	if strings.Contains(cmd.Message, "429") {
		return retryRequested(cmd, RetryAfterThrottle), nil
	}
	for _, status := range unavailableStatuses {
		if strings.Contains(cmd.Message, status) {
			return retryRequested(cmd, RetryAfterUnavailable), nil
		}
	}
	// Re-raise auth failures so the host never retries them.
	if strings.Contains(cmd.Message, "401") {
		return command.ClassifyFailureResult{}, domainerror.New(domainerror.KindUnauthorized, domainerror.CodeRevocationFailed, cmd.Message)
	}
	if strings.Contains(cmd.Message, "403") {
		return command.ClassifyFailureResult{}, domainerror.New(domainerror.KindForbidden, domainerror.CodeRevocationFailed, cmd.Message)
	}
	// Unrecognized failures default to a retry so transient conditions
	// are not silently dropped.
	return retryRequested(cmd, RetryAfterUnavailable), nil
}

func retryRequested(cmd command.ClassifyFailure, after time.Duration) command.ClassifyFailureResult {
	return command.ClassifyFailureResult{
		Status:            model.StatusRetryRequested,
		UserPrincipalName: cmd.UserPrincipalName,
		RetryAfter:        after,
	}
}
