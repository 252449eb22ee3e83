package ufs

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/marmos91/dittofs-ufs/internal/logger"
	"github.com/marmos91/dittofs-ufs/internal/telemetry"
	"github.com/marmos91/dittofs-ufs/pkg/optional"
	"github.com/marmos91/dittofs-ufs/pkg/security"
	ufserrors "github.com/marmos91/dittofs-ufs/pkg/ufs/errors"
	"github.com/marmos91/dittofs-ufs/pkg/ufs/wire"
)

// Outcome labels reported to Metrics.ObserveDefaults.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Metrics records options activity.
// A nil Metrics disables collection with zero overhead.
type Metrics interface {
	// ObserveDefaults records one Defaults resolution.
	ObserveDefaults(authType, outcome string, duration time.Duration)

	// ObserveWireConversion records the fields set on a converted wire message.
	ObserveWireConversion(fields []string)
}

// authTyped is implemented by providers that report their login mode.
type authTyped interface {
	AuthType() security.AuthType
}

// Factory builds CreateFileOptions from an IdentityProvider.
//
// Thread Safety: safe for concurrent use if the provider is.
type Factory struct {
	provider security.IdentityProvider
	metrics  Metrics
}

// NewFactory creates a Factory. metrics may be nil.
func NewFactory(provider security.IdentityProvider, metrics Metrics) *Factory {
	return &Factory{provider: provider, metrics: metrics}
}

// Defaults resolves options from provider. See (*Factory).Defaults.
func Defaults(ctx context.Context, provider security.IdentityProvider) (*CreateFileOptions, error) {
	return NewFactory(provider, nil).Defaults(ctx)
}

// Defaults returns options whose user, group and permission all come from
// the identity provider: the provider's default permission status, with user
// and group filled in by its login module.
//
// Defaults may block on local I/O. When the login module fails no options are
// returned and the error has code ErrIdentityResolution, wrapping the cause.
func (f *Factory) Defaults(ctx context.Context) (*CreateFileOptions, error) {
	start := time.Now()
	authType := f.authType()

	lc := logger.NewLogContext("ufs.Defaults").WithAuthType(authType)
	ctx = logger.WithContext(ctx, lc)
	ctx, span := telemetry.StartSpan(ctx, "ufs.Defaults",
		trace.WithAttributes(attribute.String(telemetry.AttrAuthType, authType)))
	defer span.End()

	ps := f.provider.DefaultPermissionStatus()
	if err := f.provider.SetUserFromLoginModule(ctx, &ps); err != nil {
		resErr := ufserrors.NewIdentityResolutionError(err)
		telemetry.RecordError(ctx, resErr)
		logger.WarnCtx(ctx, "Failed to resolve default create-file options",
			logger.KeyDurationMs, lc.DurationMs(),
			logger.Err(err))
		f.observeDefaults(authType, OutcomeError, start)
		return nil, resErr
	}

	opts := NewCreateFileOptions(
		optional.Of(ps.UserName),
		optional.Of(ps.GroupName),
		optional.Of(ps.Permission.String()),
	)

	span.SetAttributes(
		attribute.String(telemetry.AttrUser, ps.UserName),
		attribute.String(telemetry.AttrGroup, ps.GroupName),
		attribute.String(telemetry.AttrPosixPerm, ps.Permission.String()),
	)
	logger.DebugCtx(ctx, "Resolved default create-file options",
		logger.KeyUser, ps.UserName,
		logger.KeyGroup, ps.GroupName,
		logger.KeyPosixPerm, ps.Permission.String(),
		logger.KeyDurationMs, lc.DurationMs())
	f.observeDefaults(authType, OutcomeSuccess, start)

	return opts, nil
}

// ToWire converts opts and records the fields that were set.
func (f *Factory) ToWire(opts *CreateFileOptions) *wire.CreateFileOptions {
	msg := opts.ToWire()
	if f.metrics != nil {
		f.metrics.ObserveWireConversion(msg.Fields())
	}
	return msg
}

func (f *Factory) authType() string {
	if p, ok := f.provider.(authTyped); ok {
		return string(p.AuthType())
	}
	return "static"
}

func (f *Factory) observeDefaults(authType, outcome string, start time.Time) {
	if f.metrics == nil {
		return
	}
	f.metrics.ObserveDefaults(authType, outcome, time.Since(start))
}
