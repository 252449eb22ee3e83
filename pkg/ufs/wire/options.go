// Package wire defines the create-file options message sent to the UFS
// service and its XDR encoding.
//
// Every field is independently optional. An unset field is absent from the
// message; it is never transmitted as an empty string.
package wire

// Field names as they appear on the wire and in logs.
const (
	FieldUser      = "user"
	FieldGroup     = "group"
	FieldPosixPerm = "posix_perm"
)

// CreateFileOptions is the wire form of the options used to create a UFS file.
//
// The zero value has no fields set.
type CreateFileOptions struct {
	user      *string
	group     *string
	posixPerm *string
}

// SetUser sets the owner name.
func (o *CreateFileOptions) SetUser(v string) *CreateFileOptions {
	o.user = &v
	return o
}

// SetGroup sets the owning group name.
func (o *CreateFileOptions) SetGroup(v string) *CreateFileOptions {
	o.group = &v
	return o
}

// SetPosixPerm sets the POSIX permission string.
func (o *CreateFileOptions) SetPosixPerm(v string) *CreateFileOptions {
	o.posixPerm = &v
	return o
}

// UnsetUser clears the owner name.
func (o *CreateFileOptions) UnsetUser() { o.user = nil }

// UnsetGroup clears the owning group name.
func (o *CreateFileOptions) UnsetGroup() { o.group = nil }

// UnsetPosixPerm clears the POSIX permission string.
func (o *CreateFileOptions) UnsetPosixPerm() { o.posixPerm = nil }

func (o *CreateFileOptions) IsSetUser() bool      { return o.user != nil }
func (o *CreateFileOptions) IsSetGroup() bool     { return o.group != nil }
func (o *CreateFileOptions) IsSetPosixPerm() bool { return o.posixPerm != nil }

// GetUser returns the owner name, or "" when unset.
func (o *CreateFileOptions) GetUser() string { return deref(o.user) }

// GetGroup returns the owning group name, or "" when unset.
func (o *CreateFileOptions) GetGroup() string { return deref(o.group) }

// GetPosixPerm returns the POSIX permission string, or "" when unset.
func (o *CreateFileOptions) GetPosixPerm() string { return deref(o.posixPerm) }

// Fields lists the names of the set fields in wire order.
func (o *CreateFileOptions) Fields() []string {
	fields := make([]string, 0, 3)
	if o.IsSetUser() {
		fields = append(fields, FieldUser)
	}
	if o.IsSetGroup() {
		fields = append(fields, FieldGroup)
	}
	if o.IsSetPosixPerm() {
		fields = append(fields, FieldPosixPerm)
	}
	return fields
}

// Equal reports whether both messages set the same fields to the same values.
func (o *CreateFileOptions) Equal(other *CreateFileOptions) bool {
	if o == nil || other == nil {
		return o == other
	}
	return equalPtr(o.user, other.user) &&
		equalPtr(o.group, other.group) &&
		equalPtr(o.posixPerm, other.posixPerm)
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func equalPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
