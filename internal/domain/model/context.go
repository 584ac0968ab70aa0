package model

// Environment keys recognized by the action.
const (
	EnvAddress   = "ADDRESS"
	EnvTokenURL  = "TOKEN_URL"
	EnvClientID  = "CLIENT_ID"
	EnvScope     = "SCOPE"
	EnvAudience  = "AUDIENCE"
	EnvAuthStyle = "AUTH_STYLE"
)

// Secret keys recognized by the action.
const (
	SecretAccessToken  = "ACCESS_TOKEN"
	SecretClientSecret = "CLIENT_SECRET"
)

// ExecutionContext is the read-only environment/secret bag the host
// supplies per invocation. The maps are copied on construction so the
// host's own maps are never aliased or mutated.
type ExecutionContext struct {
	environment map[string]string
	secrets     map[string]string
}

// NewExecutionContext creates an ExecutionContext from the host's
// environment and secret maps.
func NewExecutionContext(environment, secrets map[string]string) ExecutionContext {
	return ExecutionContext{
		environment: copyMap(environment),
		secrets:     copyMap(secrets),
	}
}

// Environment returns the environment value for key, or "".
func (c ExecutionContext) Environment(key string) string {
	return c.environment[key]
}

// Secret returns the secret value for key, or "".
func (c ExecutionContext) Secret(key string) string {
	return c.secrets[key]
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
