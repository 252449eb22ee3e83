// Package kerberos resolves the client login user from Kerberos credentials.
//
// The principal is read from the credential cache first (as left behind by
// kinit) and from a keytab second. Only FILE credential caches are supported.
package kerberos

import (
	"fmt"
	"os"
	"strings"

	"github.com/jcmturner/gokrb5/v8/credentials"
	"github.com/jcmturner/gokrb5/v8/keytab"
	"github.com/jcmturner/gokrb5/v8/types"

	"github.com/marmos91/dittofs-ufs/internal/logger"
	ufserrors "github.com/marmos91/dittofs-ufs/pkg/ufs/errors"
)

const (
	// EnvCCache overrides the configured credential cache path.
	EnvCCache = "DITTOFS_UFS_KRB5CCNAME"

	// EnvKeytab overrides the configured keytab path.
	EnvKeytab = "DITTOFS_UFS_KERBEROS_KEYTAB"
)

// Config selects where the client principal is read from.
type Config struct {
	// CCachePath is the credential cache file. Empty falls back to
	// KRB5CCNAME, then /tmp/krb5cc_<uid>.
	CCachePath string

	// KeytabPath is consulted when the credential cache cannot be read.
	KeytabPath string

	// Principal selects a keytab entry ("user" or "user/instance", realm optional).
	// Empty uses the first entry.
	Principal string
}

// Login resolves the client principal described by a Config.
type Login struct {
	ccachePath string
	keytabPath string
	principal  string

	loadCCache func(path string) (types.PrincipalName, string, error)
	loadKeytab func(path string) (*keytab.Keytab, error)
}

// NewLogin creates a Login, applying environment overrides to cfg.
func NewLogin(cfg Config) *Login {
	return &Login{
		ccachePath: resolveCCachePath(cfg.CCachePath),
		keytabPath: resolveKeytabPath(cfg.KeytabPath),
		principal:  cfg.Principal,
		loadCCache: loadCCachePrincipal,
		loadKeytab: keytab.Load,
	}
}

// CCachePath returns the credential cache path in use.
func (l *Login) CCachePath() string {
	return l.ccachePath
}

// KeytabPath returns the keytab path in use ("" when none).
func (l *Login) KeytabPath() string {
	return l.keytabPath
}

// Principal returns the client principal as "primary[/instance]@REALM".
func (l *Login) Principal() (string, error) {
	name, realm, ccErr := l.loadCCache(l.ccachePath)
	if ccErr == nil {
		return formatPrincipal(name, realm), nil
	}

	if l.keytabPath == "" {
		return "", ufserrors.NewIOError("read credential cache "+l.ccachePath, ccErr)
	}

	logger.Debug("Credential cache unavailable, falling back to keytab",
		"ccache", l.ccachePath,
		"keytab", l.keytabPath,
		logger.Err(ccErr))

	kt, err := l.loadKeytab(l.keytabPath)
	if err != nil {
		return "", ufserrors.NewIOError("read keytab "+l.keytabPath, err)
	}
	return l.keytabPrincipal(kt)
}

// UserName returns the short name of the client principal.
func (l *Login) UserName() (string, error) {
	principal, err := l.Principal()
	if err != nil {
		return "", err
	}
	logger.Debug("Resolved kerberos principal", logger.KeyPrincipal, principal)
	return ShortName(principal), nil
}

func (l *Login) keytabPrincipal(kt *keytab.Keytab) (string, error) {
	wantName, wantRealm, _ := strings.Cut(l.principal, "@")

	for _, e := range kt.Entries {
		name := strings.Join(e.Principal.Components, "/")
		if l.principal == "" || (name == wantName && (wantRealm == "" || wantRealm == e.Principal.Realm)) {
			return name + "@" + e.Principal.Realm, nil
		}
	}

	if l.principal == "" {
		return "", ufserrors.NewIOError("read keytab "+l.keytabPath, fmt.Errorf("keytab has no entries"))
	}
	return "", ufserrors.NewIOError("read keytab "+l.keytabPath,
		fmt.Errorf("principal %q not found in keytab", l.principal))
}

// ShortName returns the primary component of a principal:
// "alice/admin@EXAMPLE.COM" -> "alice".
func ShortName(principal string) string {
	name, _, _ := strings.Cut(principal, "@")
	primary, _, _ := strings.Cut(name, "/")
	return primary
}

func formatPrincipal(name types.PrincipalName, realm string) string {
	s := name.PrincipalNameString()
	if realm == "" {
		return s
	}
	return s + "@" + realm
}

func loadCCachePrincipal(path string) (types.PrincipalName, string, error) {
	cc, err := credentials.LoadCCache(path)
	if err != nil {
		return types.PrincipalName{}, "", err
	}
	return cc.GetClientPrincipalName(), cc.GetClientRealm(), nil
}

// resolveCCachePath resolves the credential cache path.
//
// Resolution order (highest priority first):
//  1. DITTOFS_UFS_KRB5CCNAME env var
//  2. configured path
//  3. KRB5CCNAME env var ("FILE:" prefix stripped)
//  4. /tmp/krb5cc_<uid>
func resolveCCachePath(configPath string) string {
	if p := os.Getenv(EnvCCache); p != "" {
		return p
	}
	if configPath != "" {
		return configPath
	}
	if p := os.Getenv("KRB5CCNAME"); p != "" {
		return strings.TrimPrefix(p, "FILE:")
	}
	return fmt.Sprintf("/tmp/krb5cc_%d", os.Getuid())
}

// resolveKeytabPath prefers DITTOFS_UFS_KERBEROS_KEYTAB over the configured path.
func resolveKeytabPath(configPath string) string {
	if p := os.Getenv(EnvKeytab); p != "" {
		return p
	}
	return configPath
}
