package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/instaphotos/internal/client/remote"
	"github.com/dmitrijs2005/instaphotos/internal/client/state"
	"github.com/dmitrijs2005/instaphotos/internal/common"
)

// ToggleFollow adds targetUserID to the current user's following set, or
// removes it if already present, persists the full replacement set, and
// reloads the profile (which cascades into feed and follower recompute).
// There is no optimistic local update before the write resolves.
//
// Following yourself is rejected outright.
func (e *Engine) ToggleFollow(ctx context.Context, targetUserID string) error {
	snap := e.state.Snapshot()
	if snap.UserID == "" {
		return e.fail(ctx, "cannot follow", common.ErrSession)
	}
	if targetUserID == snap.UserID {
		return e.fail(ctx, "cannot follow yourself", common.ErrValidation)
	}

	var following []string
	if snap.Profile != nil {
		following = snap.Profile.Following
	}

	newFollowing := make([]string, 0, len(following)+1)
	removed := false
	for _, id := range following {
		if id == targetUserID {
			removed = true
			continue
		}
		newFollowing = append(newFollowing, id)
	}
	if !removed {
		newFollowing = append(newFollowing, targetUserID)
	}

	err := e.store.Update(ctx, common.CollectionUsers, snap.UserID,
		map[string]any{"following": newFollowing})
	if err != nil {
		return e.fail(ctx, "cannot update following", fmt.Errorf("%w: %w", common.ErrWrite, err))
	}

	return e.LoadProfile(ctx, snap.UserID)
}

// loadFollowerCount republishes the number of users whose following set
// contains userID. Recomputed wholesale on every trigger.
func (e *Engine) loadFollowerCount(ctx context.Context, userID string) error {
	docs, err := e.store.Query(ctx, common.CollectionUsers,
		remote.Filter{Field: "following", Op: remote.OpArrayContains, Value: userID})
	if err != nil {
		// keep the previous count and log; no user-facing notice for a
		// failed recount
		e.log.Warn(ctx, "cannot count followers", "err", err)
		return fmt.Errorf("%w: %w", common.ErrFetch, err)
	}

	e.state.Apply(func(s state.Snapshot) state.Snapshot {
		s.FollowerCount = len(docs)
		return s
	})
	return nil
}
