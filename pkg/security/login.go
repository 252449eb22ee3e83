package security

import (
	"context"
	"errors"
	"fmt"
	"os/user"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/marmos91/dittofs-ufs/internal/logger"
	"github.com/marmos91/dittofs-ufs/internal/telemetry"
	ufserrors "github.com/marmos91/dittofs-ufs/pkg/ufs/errors"
)

// KerberosLogin resolves the login user name from Kerberos credentials.
// Implemented by kerberos.Login.
type KerberosLogin interface {
	UserName() (string, error)
}

// LoginOptions configures a LoginProvider.
type LoginOptions struct {
	// AuthType selects the login module. Empty means SIMPLE.
	AuthType AuthType

	// Username overrides the OS user for SIMPLE and CUSTOM.
	Username string

	// DefaultPermission is the mode before Umask is applied. Zero means DefaultMode.
	DefaultPermission Mode

	// Umask is cleared from DefaultPermission.
	Umask Mode

	// GroupMapping resolves the primary group. Nil means the Unix account database.
	GroupMapping GroupMapping

	// Kerberos is required when AuthType is KERBEROS.
	Kerberos KerberosLogin
}

// LoginProvider is the IdentityProvider backed by the client login module.
//
// Thread Safety: safe for concurrent use; it holds no mutable state.
type LoginProvider struct {
	authType    AuthType
	username    string
	permission  Mode
	groups      GroupMapping
	kerberos    KerberosLogin
	currentUser func() (*user.User, error)
}

// NewLoginProvider validates opts and creates a LoginProvider.
func NewLoginProvider(opts LoginOptions) (*LoginProvider, error) {
	authType := opts.AuthType
	if authType == "" {
		authType = AuthSimple
	}
	if !authType.IsValid() {
		return nil, ufserrors.NewInvalidArgumentError(fmt.Sprintf("unknown authentication type %q", opts.AuthType))
	}
	if authType == AuthKerberos && opts.Kerberos == nil {
		return nil, ufserrors.NewInvalidArgumentError("KERBEROS authentication requires a Kerberos login")
	}

	perm := opts.DefaultPermission
	if perm == 0 {
		perm = DefaultMode
	}

	groups := opts.GroupMapping
	if groups == nil {
		groups = NewUnixGroupMapping()
	}

	return &LoginProvider{
		authType:    authType,
		username:    opts.Username,
		permission:  perm.ApplyUmask(opts.Umask),
		groups:      groups,
		kerberos:    opts.Kerberos,
		currentUser: user.Current,
	}, nil
}

// AuthType returns the configured authentication type.
func (p *LoginProvider) AuthType() AuthType {
	return p.authType
}

// DefaultPermissionStatus implements IdentityProvider.
func (p *LoginProvider) DefaultPermissionStatus() PermissionStatus {
	return PermissionStatus{Permission: p.permission}
}

// SetUserFromLoginModule implements IdentityProvider.
//
// With NOSASL the status is left untouched. Otherwise the login user and its
// primary group replace ps.UserName and ps.GroupName; ps is not modified when
// resolution fails.
func (p *LoginProvider) SetUserFromLoginModule(ctx context.Context, ps *PermissionStatus) error {
	ctx, span := telemetry.StartSpan(ctx, "security.SetUserFromLoginModule",
		trace.WithAttributes(attribute.String(telemetry.AttrAuthType, string(p.authType))))
	defer span.End()

	if err := ctx.Err(); err != nil {
		return err
	}

	if !p.authType.ResolvesIdentity() {
		logger.DebugCtx(ctx, "Login module disabled, identity left empty", logger.KeyAuthType, string(p.authType))
		return nil
	}

	userName, err := p.loginUser()
	if err != nil {
		telemetry.RecordError(ctx, err)
		return err
	}

	groupName, err := PrimaryGroupName(ctx, p.groups, userName)
	if err != nil {
		telemetry.RecordError(ctx, err)
		return err
	}

	span.SetAttributes(
		attribute.String(telemetry.AttrUser, userName),
		attribute.String(telemetry.AttrGroup, groupName),
	)
	logger.DebugCtx(ctx, "Resolved login identity",
		logger.KeyAuthType, string(p.authType),
		logger.KeyUser, userName,
		logger.KeyGroup, groupName)

	ps.UserName = userName
	ps.GroupName = groupName
	return nil
}

// loginUser returns the user name the login module authenticates as.
func (p *LoginProvider) loginUser() (string, error) {
	switch p.authType {
	case AuthKerberos:
		name, err := p.kerberos.UserName()
		if err != nil {
			return "", asIOError("resolve kerberos principal", err)
		}
		return name, nil
	default:
		if p.username != "" {
			return p.username, nil
		}
		u, err := p.currentUser()
		if err != nil {
			return "", asIOError("lookup current user", err)
		}
		return u.Username, nil
	}
}

// asIOError keeps UfsErrors as they are and wraps anything else as an IOError.
func asIOError(operation string, err error) error {
	var ufsErr *ufserrors.UfsError
	if errors.As(err, &ufsErr) {
		return err
	}
	return ufserrors.NewIOError(operation, err)
}
