package ufs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/dittofs-ufs/pkg/optional"
	"github.com/marmos91/dittofs-ufs/pkg/ufs/wire"
)

func TestNewCreateFileOptions_AllPresenceCombinations(t *testing.T) {
	values := []optional.Value[string]{
		optional.None[string](),
		optional.Of(""),
		optional.Of("x"),
	}

	for _, user := range values {
		for _, group := range values {
			for _, perm := range values {
				name := fmt.Sprintf("user=%s/group=%s/perm=%s", user, group, perm)
				t.Run(name, func(t *testing.T) {
					o := NewCreateFileOptions(user, group, perm)

					assert.Equal(t, user, o.User())
					assert.Equal(t, group, o.Group())
					assert.Equal(t, perm, o.PosixPerm())
					assert.Equal(t, user.IsPresent(), o.HasUser())
					assert.Equal(t, group.IsPresent(), o.HasGroup())
					assert.Equal(t, perm.IsPresent(), o.HasPosixPerm())
				})
			}
		}
	}
}

func TestNewCreateFileOptions_NoValidation(t *testing.T) {
	o := NewCreateFileOptions(optional.Of("not a user!"), optional.None[string](), optional.Of("rwxr-xr-x"))

	perm, ok := o.PosixPerm().Get()
	require.True(t, ok)
	assert.Equal(t, "rwxr-xr-x", perm)
}

func TestSetPosixPerm(t *testing.T) {
	o := NewCreateFileOptions(optional.None[string](), optional.None[string](), optional.None[string]())
	assert.False(t, o.HasPosixPerm())

	o.SetPosixPerm(optional.Of("0700"))
	assert.True(t, o.HasPosixPerm())
	assert.Equal(t, optional.Of("0700"), o.PosixPerm())

	o.SetPosixPerm(optional.None[string]())
	assert.False(t, o.HasPosixPerm())
	assert.Equal(t, optional.None[string](), o.PosixPerm())

	assert.False(t, o.HasUser(), "other fields untouched")
	assert.False(t, o.HasGroup())
}

func TestToWire_UserOnly(t *testing.T) {
	o := NewCreateFileOptions(optional.Of("alice"), optional.None[string](), optional.None[string]())

	msg := o.ToWire()
	assert.True(t, msg.IsSetUser())
	assert.Equal(t, "alice", msg.GetUser())
	assert.False(t, msg.IsSetGroup())
	assert.False(t, msg.IsSetPosixPerm())
	assert.Equal(t, []string{wire.FieldUser}, msg.Fields())
}

func TestToWire_RoundTripScenario(t *testing.T) {
	o := NewCreateFileOptions(optional.Of("alice"), optional.None[string](), optional.Of("0644"))

	msg := o.ToWire()
	assert.Equal(t, "alice", msg.GetUser())
	assert.False(t, msg.IsSetGroup())
	assert.Equal(t, "0644", msg.GetPosixPerm())

	data, err := msg.Marshal()
	require.NoError(t, err)
	decoded, err := wire.Unmarshal(data)
	require.NoError(t, err)

	back := FromWire(decoded)
	assert.Equal(t, o.User(), back.User())
	assert.Equal(t, o.Group(), back.Group())
	assert.Equal(t, o.PosixPerm(), back.PosixPerm())
}

func TestToWire_EmptyStringIsSent(t *testing.T) {
	o := NewCreateFileOptions(optional.Of(""), optional.Of(""), optional.None[string]())

	msg := o.ToWire()
	assert.True(t, msg.IsSetUser())
	assert.True(t, msg.IsSetGroup())
	assert.False(t, msg.IsSetPosixPerm())
}

func TestToWire_IdempotentAndPure(t *testing.T) {
	o := NewCreateFileOptions(optional.Of("hdfs"), optional.Of("supergroup"), optional.None[string]())

	first := o.ToWire()
	second := o.ToWire()
	assert.NotSame(t, first, second)
	assert.True(t, first.Equal(second))

	first.SetPosixPerm("0777")
	assert.False(t, o.HasPosixPerm(), "mutating the message must not touch the options")
	assert.Equal(t, optional.Of("hdfs"), o.User())
	assert.Equal(t, optional.Of("supergroup"), o.Group())
}

func TestEqualAndHash_TypeLevel(t *testing.T) {
	a := NewCreateFileOptions(optional.Of("alice"), optional.Of("staff"), optional.Of("0644"))
	b := NewCreateFileOptions(optional.None[string](), optional.Of("wheel"), optional.Of("0700"))

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(nil))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, uint64(0), a.Hash())
}

func TestString(t *testing.T) {
	o := NewCreateFileOptions(optional.Of("alice"), optional.None[string](), optional.Of("0644"))
	assert.Equal(t, "CreateFileOptions{user=alice, group=<absent>, posixPerm=0644}", o.String())
}
