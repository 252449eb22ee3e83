// Package security resolves the identity UFS files are created with.
//
// An IdentityProvider supplies a default PermissionStatus and fills in its
// user and group from the login context. LoginProvider is the production
// implementation driven by configuration; StaticProvider returns fixed values.
package security

import "context"

// IdentityProvider supplies default ownership and permission for new UFS files.
type IdentityProvider interface {
	// DefaultPermissionStatus returns the status new files start from.
	DefaultPermissionStatus() PermissionStatus

	// SetUserFromLoginModule resolves the login user and primary group into ps.
	// It may block on local I/O (account database, credential cache).
	SetUserFromLoginModule(ctx context.Context, ps *PermissionStatus) error
}

// StaticProvider is an IdentityProvider with a fixed identity.
type StaticProvider struct {
	UserName   string
	GroupName  string
	Permission Mode
}

// DefaultPermissionStatus implements IdentityProvider.
func (p *StaticProvider) DefaultPermissionStatus() PermissionStatus {
	return PermissionStatus{Permission: p.Permission}
}

// SetUserFromLoginModule implements IdentityProvider.
func (p *StaticProvider) SetUserFromLoginModule(ctx context.Context, ps *PermissionStatus) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ps.UserName = p.UserName
	ps.GroupName = p.GroupName
	return nil
}
