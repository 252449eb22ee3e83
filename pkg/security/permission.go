package security

import (
	"fmt"
	"strconv"
	"strings"

	ufserrors "github.com/marmos91/dittofs-ufs/pkg/ufs/errors"
)

// Mode holds POSIX permission bits, including setuid/setgid/sticky (07777).
type Mode uint16

const (
	// ModeMask covers every bit a Mode may carry.
	ModeMask Mode = 0o7777

	// DefaultMode is the permission a new UFS file gets before any umask.
	DefaultMode Mode = 0o777

	// DefaultUmask leaves DefaultMode untouched.
	DefaultUmask Mode = 0o000
)

// ParseMode parses an octal permission string such as "0777", "644" or "0o755".
func ParseMode(s string) (Mode, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(strings.TrimPrefix(trimmed, "0o"), "0O")
	if trimmed == "" {
		return 0, ufserrors.NewInvalidArgumentError(fmt.Sprintf("empty permission string %q", s))
	}

	v, err := strconv.ParseUint(trimmed, 8, 16)
	if err != nil || Mode(v)&^ModeMask != 0 {
		return 0, ufserrors.NewInvalidArgumentError(fmt.Sprintf("invalid octal permission %q", s))
	}
	return Mode(v), nil
}

// ApplyUmask clears the bits set in umask.
func (m Mode) ApplyUmask(umask Mode) Mode {
	return m &^ (umask & ModeMask)
}

// String renders the mode in posix string format, e.g. "0755".
func (m Mode) String() string {
	return fmt.Sprintf("%04o", uint16(m&ModeMask))
}

// PermissionStatus is the owner, group and permission a UFS file is created with.
type PermissionStatus struct {
	UserName   string
	GroupName  string
	Permission Mode
}

// DefaultPermissionStatus returns an unowned status with DefaultMode.
// User and group are filled in by an IdentityProvider.
func DefaultPermissionStatus() PermissionStatus {
	return PermissionStatus{Permission: DefaultMode}
}
