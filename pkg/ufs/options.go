// Package ufs builds the options a client sends when it asks the UFS (the
// underlying file system) to create a file.
//
// CreateFileOptions carries an optional owner, group and POSIX permission
// string. Defaults resolves all three from an IdentityProvider;
// NewCreateFileOptions takes them verbatim. ToWire produces the sparse wire
// message holding exactly the fields that are present.
package ufs

import (
	"fmt"

	"github.com/marmos91/dittofs-ufs/pkg/optional"
	"github.com/marmos91/dittofs-ufs/pkg/ufs/wire"
)

// CreateFileOptions holds the ownership and permission a UFS file is created with.
//
// Each field is independently present or absent. An explicitly set empty
// string is present.
//
// Thread Safety: not safe for concurrent use. An instance belongs to a single
// create request; SetPosixPerm must not race with reads.
type CreateFileOptions struct {
	user      optional.Value[string]
	group     optional.Value[string]
	posixPerm optional.Value[string]
}

// NewCreateFileOptions stores user, group and posixPerm as given.
// Nothing is validated.
func NewCreateFileOptions(user, group, posixPerm optional.Value[string]) *CreateFileOptions {
	return &CreateFileOptions{
		user:      user,
		group:     group,
		posixPerm: posixPerm,
	}
}

// User returns the owner name.
func (o *CreateFileOptions) User() optional.Value[string] {
	return o.user
}

// Group returns the owning group name.
func (o *CreateFileOptions) Group() optional.Value[string] {
	return o.group
}

// PosixPerm returns the POSIX permission string, e.g. "0777".
func (o *CreateFileOptions) PosixPerm() optional.Value[string] {
	return o.posixPerm
}

func (o *CreateFileOptions) HasUser() bool      { return o.user.IsPresent() }
func (o *CreateFileOptions) HasGroup() bool     { return o.group.IsPresent() }
func (o *CreateFileOptions) HasPosixPerm() bool { return o.posixPerm.IsPresent() }

// SetPosixPerm replaces the permission string. optional.None clears it.
func (o *CreateFileOptions) SetPosixPerm(perm optional.Value[string]) *CreateFileOptions {
	o.posixPerm = perm
	return o
}

// ToWire returns a wire message with exactly the present fields set.
// The options are not modified.
func (o *CreateFileOptions) ToWire() *wire.CreateFileOptions {
	msg := &wire.CreateFileOptions{}
	if v, ok := o.user.Get(); ok {
		msg.SetUser(v)
	}
	if v, ok := o.group.Get(); ok {
		msg.SetGroup(v)
	}
	if v, ok := o.posixPerm.Get(); ok {
		msg.SetPosixPerm(v)
	}
	return msg
}

// FromWire converts a decoded wire message back into options.
func FromWire(msg *wire.CreateFileOptions) *CreateFileOptions {
	o := &CreateFileOptions{}
	if msg.IsSetUser() {
		o.user = optional.Of(msg.GetUser())
	}
	if msg.IsSetGroup() {
		o.group = optional.Of(msg.GetGroup())
	}
	if msg.IsSetPosixPerm() {
		o.posixPerm = optional.Of(msg.GetPosixPerm())
	}
	return o
}

// Equal reports whether other is a CreateFileOptions. Field values are not
// compared: every instance equals every other instance. Callers that need
// value comparison should compare ToWire results.
func (o *CreateFileOptions) Equal(other *CreateFileOptions) bool {
	return other != nil
}

// Hash returns the same value for every instance, consistent with Equal.
func (o *CreateFileOptions) Hash() uint64 {
	return 0
}

// String implements fmt.Stringer.
func (o *CreateFileOptions) String() string {
	return fmt.Sprintf("CreateFileOptions{user=%s, group=%s, posixPerm=%s}", o.user, o.group, o.posixPerm)
}
