package command

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/arclight-ops/entra-revoker/internal/adapter/outbound/graph"
	"github.com/arclight-ops/entra-revoker/internal/adapter/outbound/oauth"
	"github.com/arclight-ops/entra-revoker/internal/domain/model"
	"github.com/arclight-ops/entra-revoker/internal/port/inbound/command"
)

// Full invocation flow against a fake Graph endpoint, with the real
// oauth and graph adapters behind the handler.

func TestInvokeFlow_PreIssuedTokenSuccess(t *testing.T) {
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.RequestURI
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"value":true}`))
	}))
	defer srv.Close()

	handler := NewRevokeSessionsHandler(
		oauth.NewAcquirer(srv.Client(), nil),
		graph.NewClient(srv.Client(), nil),
	)

	result, err := handler.Handle(context.Background(), command.RevokeSessions{
		UserPrincipalName: "user@example.com",
		Context: model.NewExecutionContext(
			map[string]string{model.EnvAddress: srv.URL},
			map[string]string{model.SecretAccessToken: "test-token"},
		),
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if gotPath != "/v1.0/users/user%40example.com/revokeSignInSessions" {
		t.Errorf("request path = %q", gotPath)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	want := command.RevokeSessionsResult{
		Status:            model.StatusSuccess,
		UserPrincipalName: "user@example.com",
		Value:             true,
	}
	if result != want {
		t.Errorf("result = %+v, want %+v", result, want)
	}
}

func TestInvokeFlow_UserNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("User not found"))
	}))
	defer srv.Close()

	handler := NewRevokeSessionsHandler(
		oauth.NewAcquirer(srv.Client(), nil),
		graph.NewClient(srv.Client(), nil),
	)

	_, err := handler.Handle(context.Background(), command.RevokeSessions{
		UserPrincipalName: "user@example.com",
		Context: model.NewExecutionContext(
			map[string]string{model.EnvAddress: srv.URL},
			map[string]string{model.SecretAccessToken: "test-token"},
		),
	})
	if err == nil {
		t.Fatal("Handle() error = nil, want failure")
	}
	for _, want := range []string{"404", "User not found"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error = %q, missing %q", err.Error(), want)
		}
	}
}

func TestInvokeFlow_ClientCredentialsThenRevocation(t *testing.T) {
	var tokenCalls, revokeCalls int
	var order []string

	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenCalls++
		order = append(order, "token")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"exchanged"}`))
	}))
	defer tokenSrv.Close()

	graphSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		revokeCalls++
		order = append(order, "revoke")
		if got := r.Header.Get("Authorization"); got != "Bearer exchanged" {
			t.Errorf("Authorization = %q, want exchanged token", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"value":true}`))
	}))
	defer graphSrv.Close()

	handler := NewRevokeSessionsHandler(
		oauth.NewAcquirer(http.DefaultClient, nil),
		graph.NewClient(http.DefaultClient, nil),
	)

	result, err := handler.Handle(context.Background(), command.RevokeSessions{
		UserPrincipalName: "user@example.com",
		Context: model.NewExecutionContext(
			map[string]string{
				model.EnvAddress:   graphSrv.URL,
				model.EnvTokenURL:  tokenSrv.URL,
				model.EnvClientID:  "client-1",
				model.EnvAuthStyle: "InHeader",
			},
			map[string]string{model.SecretClientSecret: "s3cret"},
		),
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if !result.Value {
		t.Error("Value = false, want true")
	}

	if tokenCalls != 1 || revokeCalls != 1 {
		t.Errorf("calls = (token %d, revoke %d), want exactly one each", tokenCalls, revokeCalls)
	}
	if len(order) != 2 || order[0] != "token" || order[1] != "revoke" {
		t.Errorf("call order = %v, want token before revoke", order)
	}
}
