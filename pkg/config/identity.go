package config

import (
	"fmt"

	"github.com/marmos91/dittofs-ufs/internal/logger"
	"github.com/marmos91/dittofs-ufs/pkg/security"
	"github.com/marmos91/dittofs-ufs/pkg/security/kerberos"
)

// Group mapping types.
const (
	GroupMappingUnix   = "unix"
	GroupMappingStatic = "static"
)

// CreateIdentityProvider creates the IdentityProvider described by the
// security and ufs sections.
//
// This converts the configuration types to security.LoginOptions and
// creates a LoginProvider. The Kerberos login is only built for KERBEROS.
func (c *Config) CreateIdentityProvider() (*security.LoginProvider, error) {
	authType, err := security.ParseAuthType(c.Security.AuthenticationType)
	if err != nil {
		return nil, err
	}

	perm, err := security.ParseMode(string(c.UFS.DefaultPermission))
	if err != nil {
		return nil, fmt.Errorf("invalid ufs.default_permission: %w", err)
	}
	umask, err := security.ParseMode(string(c.UFS.Umask))
	if err != nil {
		return nil, fmt.Errorf("invalid ufs.umask: %w", err)
	}

	groups, err := c.Security.GroupMapping.createGroupMapping()
	if err != nil {
		return nil, err
	}

	opts := security.LoginOptions{
		AuthType:          authType,
		Username:          c.Security.Login.Username,
		DefaultPermission: perm,
		Umask:             umask,
		GroupMapping:      groups,
	}

	if authType == security.AuthKerberos {
		login := kerberos.NewLogin(kerberos.Config{
			CCachePath: c.Security.Kerberos.CCachePath,
			KeytabPath: c.Security.Kerberos.KeytabPath,
			Principal:  c.Security.Kerberos.Principal,
		})
		logger.Debug("Kerberos login configured",
			"ccache", login.CCachePath(),
			"keytab", login.KeytabPath())
		opts.Kerberos = login
	}

	return security.NewLoginProvider(opts)
}

// createGroupMapping converts GroupMappingConfig to a security.GroupMapping.
func (gc *GroupMappingConfig) createGroupMapping() (security.GroupMapping, error) {
	switch gc.Type {
	case GroupMappingUnix, "":
		return security.NewUnixGroupMapping(), nil
	case GroupMappingStatic:
		return security.NewStaticGroupMapping(gc.Static), nil
	default:
		return nil, fmt.Errorf("unknown group mapping type %q", gc.Type)
	}
}
