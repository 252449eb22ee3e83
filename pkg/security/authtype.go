package security

import (
	"fmt"
	"strings"

	ufserrors "github.com/marmos91/dittofs-ufs/pkg/ufs/errors"
)

// AuthType selects how the login user is determined.
type AuthType string

const (
	// AuthNoSASL disables login resolution; user and group stay empty.
	AuthNoSASL AuthType = "NOSASL"

	// AuthSimple uses the configured login username, or the OS user.
	AuthSimple AuthType = "SIMPLE"

	// AuthCustom behaves like AuthSimple; the server side verifies the user.
	AuthCustom AuthType = "CUSTOM"

	// AuthKerberos uses the client principal from the Kerberos credential cache.
	AuthKerberos AuthType = "KERBEROS"
)

// AuthTypes lists every supported authentication type.
var AuthTypes = []AuthType{AuthNoSASL, AuthSimple, AuthCustom, AuthKerberos}

// ParseAuthType parses a case-insensitive authentication type name.
func ParseAuthType(s string) (AuthType, error) {
	candidate := AuthType(strings.ToUpper(strings.TrimSpace(s)))
	for _, t := range AuthTypes {
		if candidate == t {
			return t, nil
		}
	}
	return "", ufserrors.NewInvalidArgumentError(fmt.Sprintf("unknown authentication type %q", s))
}

// IsValid reports whether t is a supported authentication type.
func (t AuthType) IsValid() bool {
	_, err := ParseAuthType(string(t))
	return err == nil
}

// ResolvesIdentity reports whether the login module fills in user and group.
func (t AuthType) ResolvesIdentity() bool {
	return t != AuthNoSASL
}
