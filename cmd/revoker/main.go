package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/arclight-ops/entra-revoker/internal/adapter/outbound/graph"
	"github.com/arclight-ops/entra-revoker/internal/adapter/outbound/oauth"
	appcommand "github.com/arclight-ops/entra-revoker/internal/app/command"
	"github.com/arclight-ops/entra-revoker/internal/config"
	domainerror "github.com/arclight-ops/entra-revoker/internal/domain/error"
	"github.com/arclight-ops/entra-revoker/internal/port/inbound/command"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	user := flag.String("user", "", "user principal name whose sign-in sessions will be revoked")
	address := flag.String("address", "", "base address override (defaults to ENTRA_ADDRESS)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	logger, err := newLogger(cfg.Harness.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Wire adapters and handlers
	httpClient := &http.Client{Timeout: cfg.Harness.HTTPTimeout}
	invoke := appcommand.NewRevokeSessionsHandler(
		oauth.NewAcquirer(httpClient, logger),
		graph.NewClient(httpClient, logger),
	)
	classify := appcommand.NewClassifyFailureHandler()
	halt := appcommand.NewHaltHandler()

	execCtx := cfg.Action.ExecutionContext()
	invocationID := uuid.NewString()

	logger.Info("starting session revocation",
		zap.String("invocation_id", invocationID),
		zap.String("user_principal_name", *user),
	)

	// Each attempt is one full invocation. The classifier only decides
	// disposition; waiting between attempts happens here, in the host
	// role, never inside the handlers.
	operation := func() (command.RevokeSessionsResult, error) {
		result, err := invoke.Handle(ctx, command.RevokeSessions{
			UserPrincipalName: *user,
			Address:           *address,
			Context:           execCtx,
		})
		if err == nil {
			return result, nil
		}
		if domainerror.IsValidation(err) {
			return command.RevokeSessionsResult{}, backoff.Permanent(err)
		}
		decision, cerr := classify.Handle(ctx, command.ClassifyFailure{
			Message:           err.Error(),
			UserPrincipalName: *user,
		})
		if cerr != nil {
			return command.RevokeSessionsResult{}, backoff.Permanent(cerr)
		}
		logger.Warn("invocation failed, retry requested",
			zap.String("invocation_id", invocationID),
			zap.Duration("retry_after", decision.RetryAfter),
			zap.Error(err),
		)
		return command.RevokeSessionsResult{}, retryAfter(err, decision.RetryAfter)
	}

	result, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(cfg.Harness.MaxAttempts),
	)
	if err != nil {
		if ctx.Err() != nil {
			report := halt.Handle(context.Background(), command.Halt{
				Reason:            ctx.Err().Error(),
				UserPrincipalName: *user,
			})
			logger.Warn("invocation halted",
				zap.String("invocation_id", invocationID),
				zap.String("reason", report.Reason),
			)
			return json.NewEncoder(os.Stdout).Encode(report)
		}
		return err
	}

	logger.Info("sign-in sessions revoked",
		zap.String("invocation_id", invocationID),
		zap.String("user_principal_name", result.UserPrincipalName),
		zap.Bool("value", result.Value),
	)

	return json.NewEncoder(os.Stdout).Encode(result)
}

// retryAfter pairs the original failure with the classifier's delay
// hint. backoff finds the hint through errors.As, while an exhausted
// retry loop still surfaces the real upstream failure text.
func retryAfter(err error, after time.Duration) error {
	return fmt.Errorf("%w (%w)", err, &backoff.RetryAfterError{Duration: after})
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
