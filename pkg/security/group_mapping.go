package security

import (
	"context"
	"errors"
	"os/user"
	"slices"

	"github.com/marmos91/dittofs-ufs/internal/logger"
	ufserrors "github.com/marmos91/dittofs-ufs/pkg/ufs/errors"
)

// GroupMapping resolves the groups a user belongs to.
// The first group returned is the user's primary group.
type GroupMapping interface {
	Groups(ctx context.Context, userName string) ([]string, error)
}

// PrimaryGroupName returns the first group of userName, or "" when the
// mapping knows no groups for it.
func PrimaryGroupName(ctx context.Context, gm GroupMapping, userName string) (string, error) {
	groups, err := gm.Groups(ctx, userName)
	if err != nil {
		return "", err
	}
	if len(groups) == 0 {
		return "", nil
	}
	return groups[0], nil
}

// ============================================================================
// Unix account database
// ============================================================================

// UnixGroupMapping resolves groups from the local account database.
//
// Users unknown to the account database have no groups; any other lookup
// failure is reported as an IOError.
type UnixGroupMapping struct {
	lookupUser    func(name string) (*user.User, error)
	lookupGroupID func(gid string) (*user.Group, error)
	groupIDs      func(u *user.User) ([]string, error)
}

// NewUnixGroupMapping creates a mapping backed by os/user.
func NewUnixGroupMapping() *UnixGroupMapping {
	return &UnixGroupMapping{
		lookupUser:    user.Lookup,
		lookupGroupID: user.LookupGroupId,
		groupIDs:      (*user.User).GroupIds,
	}
}

// Groups implements GroupMapping.
func (m *UnixGroupMapping) Groups(ctx context.Context, userName string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	u, err := m.lookupUser(userName)
	if err != nil {
		var unknown user.UnknownUserError
		if errors.As(err, &unknown) {
			logger.DebugCtx(ctx, "No account for user, no groups", logger.KeyUser, userName)
			return nil, nil
		}
		return nil, ufserrors.NewIOError("lookup user "+userName, err)
	}

	gids := []string{u.Gid}
	if extra, err := m.groupIDs(u); err != nil {
		// Supplementary groups are unavailable without cgo on some platforms
		logger.DebugCtx(ctx, "Supplementary groups unavailable", logger.KeyUser, userName, logger.Err(err))
	} else {
		for _, gid := range extra {
			if !slices.Contains(gids, gid) {
				gids = append(gids, gid)
			}
		}
	}

	names := make([]string, 0, len(gids))
	for _, gid := range gids {
		g, err := m.lookupGroupID(gid)
		if err != nil {
			var unknown user.UnknownGroupIdError
			if errors.As(err, &unknown) {
				// Keep the numeric id so ownership is still expressible
				names = append(names, gid)
				continue
			}
			return nil, ufserrors.NewIOError("lookup group "+gid, err)
		}
		names = append(names, g.Name)
	}

	return names, nil
}

// ============================================================================
// Static mapping
// ============================================================================

// StaticGroupMapping resolves groups from a fixed user -> groups table.
type StaticGroupMapping struct {
	groups map[string][]string
}

// NewStaticGroupMapping creates a mapping from a copy of table.
func NewStaticGroupMapping(table map[string][]string) *StaticGroupMapping {
	groups := make(map[string][]string, len(table))
	for u, gs := range table {
		groups[u] = slices.Clone(gs)
	}
	return &StaticGroupMapping{groups: groups}
}

// Groups implements GroupMapping.
func (m *StaticGroupMapping) Groups(ctx context.Context, userName string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(m.groups[userName]), nil
}
