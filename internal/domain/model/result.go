package model

// Status values reported back to the host.
const (
	StatusSuccess        = "success"
	StatusRetryRequested = "retry_requested"
	StatusHalted         = "halted"
)

// UnknownUser is reported when a halt arrives without an identifier.
const UnknownUser = "unknown"

// RevocationResult is the terminal success payload of an invocation.
type RevocationResult struct {
	Status            string `json:"status"`
	UserPrincipalName string `json:"userPrincipalName"`
	Value             bool   `json:"value"`
}

// HaltResult is the best-effort report produced when the host halts
// the action.
type HaltResult struct {
	Status            string `json:"status"`
	UserPrincipalName string `json:"userPrincipalName"`
	Reason            string `json:"reason"`
}
