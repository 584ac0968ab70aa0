package model

import (
	domainerror "github.com/arclight-ops/entra-revoker/internal/domain/error"
)

// AuthStyle controls how client credentials are delivered to the token
// endpoint.
type AuthStyle string

const (
	AuthStyleAutoDetect AuthStyle = "AutoDetect"
	AuthStyleInHeader   AuthStyle = "InHeader"
	AuthStyleInParams   AuthStyle = "InParams"
)

// Credentials is the tagged union of the two ways the action can
// authenticate. Exactly one variant is resolved per invocation.
type Credentials interface {
	credentials()
}

// PreIssuedToken is an access token supplied directly by the host.
type PreIssuedToken struct {
	Token string
}

func (PreIssuedToken) credentials() {}

// ClientCredentials describes an OAuth2 client-credentials exchange.
type ClientCredentials struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scope        string
	Audience     string
	AuthStyle    AuthStyle
}

func (ClientCredentials) credentials() {}

// ResolveCredentials selects the credential variant from the execution
// context. First match wins: a pre-issued token takes precedence over
// client-credentials fields, and later variants are ignored even when
// also present. Resolution never touches the network.
func ResolveCredentials(ctx ExecutionContext) (Credentials, error) {
	if token := ctx.Secret(SecretAccessToken); token != "" {
		return PreIssuedToken{Token: token}, nil
	}

	if secret := ctx.Secret(SecretClientSecret); secret != "" {
		return ClientCredentials{
			TokenURL:     ctx.Environment(EnvTokenURL),
			ClientID:     ctx.Environment(EnvClientID),
			ClientSecret: secret,
			Scope:        ctx.Environment(EnvScope),
			Audience:     ctx.Environment(EnvAudience),
			AuthStyle:    AuthStyle(ctx.Environment(EnvAuthStyle)),
		}, nil
	}

	return nil, domainerror.ErrOAuthRequired
}
