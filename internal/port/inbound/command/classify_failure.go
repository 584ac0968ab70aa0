package command

import (
	"context"
	"time"
)

// ClassifyFailure asks whether a prior invocation failure should be
// retried. The host calls this with the flattened failure message
// after an invocation has thrown.
type ClassifyFailure struct {
	Message           string
	UserPrincipalName string
}

func (c ClassifyFailure) CommandName() string {
	return "entra.classify_failure"
}

// ClassifyFailureResult signals that the host should retry. RetryAfter
// is a scheduling hint for the host, never a delay enforced by the
// handler itself.
type ClassifyFailureResult struct {
	Status            string
	UserPrincipalName string
	RetryAfter        time.Duration
}

// ClassifyFailureHandler handles the ClassifyFailure command. A fatal
// classification re-raises the original failure as the returned error
// instead of producing a result.
type ClassifyFailureHandler interface {
	Handle(ctx context.Context, cmd ClassifyFailure) (ClassifyFailureResult, error)
}
