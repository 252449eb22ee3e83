package security

import (
	"context"
	"errors"
	"os/user"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ufserrors "github.com/marmos91/dittofs-ufs/pkg/ufs/errors"
)

// fakeAccounts builds a UnixGroupMapping over an in-memory account database.
func fakeAccounts(users map[string]*user.User, groups map[string]string, supplementary map[string][]string) *UnixGroupMapping {
	return &UnixGroupMapping{
		lookupUser: func(name string) (*user.User, error) {
			if u, ok := users[name]; ok {
				return u, nil
			}
			return nil, user.UnknownUserError(name)
		},
		lookupGroupID: func(gid string) (*user.Group, error) {
			if name, ok := groups[gid]; ok {
				return &user.Group{Gid: gid, Name: name}, nil
			}
			return nil, user.UnknownGroupIdError(gid)
		},
		groupIDs: func(u *user.User) ([]string, error) {
			return supplementary[u.Username], nil
		},
	}
}

func TestUnixGroupMapping_Groups(t *testing.T) {
	ctx := context.Background()
	m := fakeAccounts(
		map[string]*user.User{
			"alice": {Username: "alice", Uid: "1000", Gid: "100"},
			"bob":   {Username: "bob", Uid: "1001", Gid: "4242"},
		},
		map[string]string{"100": "staff", "27": "sudo"},
		map[string][]string{"alice": {"27", "100"}},
	)

	t.Run("primary group first, deduplicated", func(t *testing.T) {
		groups, err := m.Groups(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, []string{"staff", "sudo"}, groups)
	})

	t.Run("unknown gid kept numeric", func(t *testing.T) {
		groups, err := m.Groups(ctx, "bob")
		require.NoError(t, err)
		assert.Equal(t, []string{"4242"}, groups)
	})

	t.Run("unknown user has no groups", func(t *testing.T) {
		groups, err := m.Groups(ctx, "mallory")
		require.NoError(t, err)
		assert.Empty(t, groups)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := m.Groups(cctx, "alice")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestUnixGroupMapping_LookupFailures(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("nss unavailable")

	t.Run("user lookup", func(t *testing.T) {
		m := fakeAccounts(nil, nil, nil)
		m.lookupUser = func(string) (*user.User, error) { return nil, boom }

		_, err := m.Groups(ctx, "alice")
		require.Error(t, err)
		assert.True(t, ufserrors.IsIOError(err))
		assert.ErrorIs(t, err, boom)
	})

	t.Run("group lookup", func(t *testing.T) {
		m := fakeAccounts(map[string]*user.User{"alice": {Username: "alice", Gid: "100"}}, nil, nil)
		m.lookupGroupID = func(string) (*user.Group, error) { return nil, boom }

		_, err := m.Groups(ctx, "alice")
		require.Error(t, err)
		assert.True(t, ufserrors.IsIOError(err))
	})

	t.Run("supplementary groups ignored on failure", func(t *testing.T) {
		m := fakeAccounts(map[string]*user.User{"alice": {Username: "alice", Gid: "100"}}, map[string]string{"100": "staff"}, nil)
		m.groupIDs = func(*user.User) ([]string, error) { return nil, boom }

		groups, err := m.Groups(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, []string{"staff"}, groups)
	})
}

func TestStaticGroupMapping(t *testing.T) {
	ctx := context.Background()
	table := map[string][]string{"alice": {"staff", "wheel"}}
	m := NewStaticGroupMapping(table)

	table["alice"][0] = "mutated"

	groups, err := m.Groups(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"staff", "wheel"}, groups)

	groups[0] = "changed"
	primary, err := PrimaryGroupName(ctx, m, "alice")
	require.NoError(t, err)
	assert.Equal(t, "staff", primary)

	primary, err = PrimaryGroupName(ctx, m, "nobody")
	require.NoError(t, err)
	assert.Empty(t, primary)
}
