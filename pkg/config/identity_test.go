package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/dittofs-ufs/pkg/security"
	"github.com/marmos91/dittofs-ufs/pkg/security/kerberos"
)

func TestCreateIdentityProvider_Simple(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Security.Login.Username = "alice"
	cfg.Security.GroupMapping = GroupMappingConfig{
		Type:   GroupMappingStatic,
		Static: map[string][]string{"alice": {"staff", "wheel"}},
	}
	cfg.UFS.Umask = "0022"

	provider, err := cfg.CreateIdentityProvider()
	require.NoError(t, err)
	assert.Equal(t, security.AuthSimple, provider.AuthType())

	ps := provider.DefaultPermissionStatus()
	assert.Equal(t, security.Mode(0o755), ps.Permission)

	require.NoError(t, provider.SetUserFromLoginModule(context.Background(), &ps))
	assert.Equal(t, "alice", ps.UserName)
	assert.Equal(t, "staff", ps.GroupName)
}

func TestCreateIdentityProvider_NoSASL(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Security.AuthenticationType = "NOSASL"

	provider, err := cfg.CreateIdentityProvider()
	require.NoError(t, err)
	assert.Equal(t, security.AuthNoSASL, provider.AuthType())
}

func TestCreateIdentityProvider_Kerberos(t *testing.T) {
	t.Setenv(kerberos.EnvCCache, "")
	t.Setenv(kerberos.EnvKeytab, "")

	cfg := GetDefaultConfig()
	cfg.Security.AuthenticationType = "KERBEROS"
	cfg.Security.Kerberos.CCachePath = "/nonexistent/krb5cc"

	provider, err := cfg.CreateIdentityProvider()
	require.NoError(t, err)
	assert.Equal(t, security.AuthKerberos, provider.AuthType())

	ps := provider.DefaultPermissionStatus()
	err = provider.SetUserFromLoginModule(context.Background(), &ps)
	require.Error(t, err, "no credential cache and no keytab")
	assert.Empty(t, ps.UserName)
}

func TestCreateIdentityProvider_InvalidValues(t *testing.T) {
	tests := map[string]func(*Config){
		"auth type":     func(c *Config) { c.Security.AuthenticationType = "DIGEST" },
		"permission":    func(c *Config) { c.UFS.DefaultPermission = "0999" },
		"umask":         func(c *Config) { c.UFS.Umask = "x" },
		"group mapping": func(c *Config) { c.Security.GroupMapping.Type = "ldap" },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			mutate(cfg)

			_, err := cfg.CreateIdentityProvider()
			assert.Error(t, err)
		})
	}
}
