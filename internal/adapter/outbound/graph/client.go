// Package graph calls the Microsoft Graph endpoint that revokes a
// user's sign-in sessions.
package graph

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainerror "github.com/arclight-ops/entra-revoker/internal/domain/error"
	"github.com/arclight-ops/entra-revoker/internal/port/outbound/identity"
)

const bearerPrefix = "Bearer "

// maxResponseBodySize caps response body reads so a misbehaving
// endpoint cannot balloon error messages.
const maxResponseBodySize = 1 << 20

// client implements identity.SessionRevoker.
type client struct {
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new SessionRevoker. A nil httpClient falls back
// to http.DefaultClient; a nil logger disables logging.
func NewClient(httpClient *http.Client, logger *zap.Logger) identity.SessionRevoker {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &client{httpClient: httpClient, logger: logger}
}

func (c *client) RevokeSignInSessions(ctx context.Context, address, userPrincipalName, token string) (bool, error) {
	endpoint := strings.TrimSuffix(address, "/") + "/v1.0/users/" + encodeUserID(userPrincipalName) + "/revokeSignInSessions"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return false, domainerror.Wrap(err, domainerror.KindInternal, domainerror.CodeRevocationFailed, "failed to create revocation request")
	}
	requestID := uuid.NewString()
	req.Header.Set("Authorization", normalizeBearer(token))
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("client-request-id", requestID)

	c.logger.Debug("revoking sign-in sessions",
		zap.String("user_principal_name", userPrincipalName),
		zap.String("request_id", requestID),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, domainerror.Wrap(err, domainerror.KindUpstream, domainerror.CodeRevocationFailed, "revocation request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return false, domainerror.Wrap(err, domainerror.KindUpstream, domainerror.CodeRevocationFailed, "failed to read revocation response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, domainerror.UpstreamFailure(domainerror.CodeRevocationFailed, "session revocation", resp.Status, body)
	}

	// Documented success payload is {"value": true}; an absent field or
	// empty body still counts as success.
	var payload struct {
		Value *bool `json:"value"`
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &payload); err != nil {
			c.logger.Debug("unparseable revocation response body", zap.String("request_id", requestID))
		}
	}
	if payload.Value == nil {
		return true, nil
	}
	return *payload.Value, nil
}

// encodeUserID percent-encodes a user identifier with URI-component
// semantics: "@", "+", and space must not appear raw in the path.
func encodeUserID(id string) string {
	return strings.ReplaceAll(url.QueryEscape(id), "+", "%20")
}

func normalizeBearer(token string) string {
	if strings.HasPrefix(token, bearerPrefix) {
		return token
	}
	return bearerPrefix + token
}
