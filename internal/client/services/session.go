package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/instaphotos/internal/client/models"
	"github.com/dmitrijs2005/instaphotos/internal/client/remote"
	"github.com/dmitrijs2005/instaphotos/internal/client/state"
	"github.com/dmitrijs2005/instaphotos/internal/common"
)

// SignUp creates a new account and its profile document.
//
// The username-uniqueness query runs before the identity account is
// created so a rejected username never leaves an orphaned auth account.
// The check and the creation are not atomic against the backend; the
// race window is accepted.
func (e *Engine) SignUp(ctx context.Context, username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return e.fail(ctx, "", common.ErrValidation)
	}

	e.setInProgress(true)
	defer e.setInProgress(false)

	docs, err := e.store.Query(ctx, common.CollectionUsers,
		remote.Filter{Field: "username", Op: remote.OpEq, Value: username})
	if err != nil {
		return e.fail(ctx, "signup failed", fmt.Errorf("%w: %w", common.ErrFetch, err))
	}
	if len(docs) > 0 {
		return e.fail(ctx, "", common.ErrDuplicateUsername)
	}

	sess, err := e.identity.CreateAccount(ctx, email, password)
	if err != nil {
		return e.fail(ctx, "signup failed", fmt.Errorf("%w: %w", common.ErrAuth, err))
	}

	e.state.Apply(func(s state.Snapshot) state.Snapshot {
		s.SignedIn = true
		s.UserID = sess.UserID
		return s
	})

	return e.createOrUpdateProfile(ctx, models.ProfilePatch{Username: &username})
}

// SignIn authenticates and, on success, runs the profile-load cascade.
func (e *Engine) SignIn(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return e.fail(ctx, "", common.ErrValidation)
	}

	e.setInProgress(true)
	defer e.setInProgress(false)

	sess, err := e.identity.SignIn(ctx, email, password)
	if err != nil {
		return e.fail(ctx, "login failed", fmt.Errorf("%w: %w", common.ErrAuth, err))
	}

	e.state.Apply(func(s state.Snapshot) state.Snapshot {
		s.SignedIn = true
		s.UserID = sess.UserID
		return s
	})
	e.state.Notify("Login successful")

	return e.LoadProfile(ctx, sess.UserID)
}

// LoadProfile fetches the profile document and unconditionally triggers
// the three dependent recomputations: own posts, personalized feed, and
// follower count. A missing profile document leaves the profile nil but
// still runs the cascade.
func (e *Engine) LoadProfile(ctx context.Context, userID string) error {
	e.setInProgress(true)

	doc, err := e.store.Get(ctx, common.CollectionUsers, userID)
	switch {
	case errors.Is(err, common.ErrNotFound):
		e.state.Apply(func(s state.Snapshot) state.Snapshot {
			s.Profile = nil
			return s
		})
	case err != nil:
		e.setInProgress(false)
		return e.fail(ctx, "cannot retrieve user data", fmt.Errorf("%w: %w", common.ErrFetch, err))
	default:
		var profile models.UserProfile
		if err := json.Unmarshal(doc, &profile); err != nil {
			e.setInProgress(false)
			return e.fail(ctx, "cannot retrieve user data", err)
		}
		e.state.Apply(func(s state.Snapshot) state.Snapshot {
			s.Profile = &profile
			return s
		})
	}
	e.setInProgress(false)

	_ = e.RefreshMyPosts(ctx)
	_ = e.LoadPersonalizedFeed(ctx)
	_ = e.loadFollowerCount(ctx, userID)

	return nil
}

// UpdateProfile merges the patch over the current profile and persists the
// result, creating the profile document if it does not exist yet.
func (e *Engine) UpdateProfile(ctx context.Context, patch models.ProfilePatch) error {
	return e.createOrUpdateProfile(ctx, patch)
}

func (e *Engine) createOrUpdateProfile(ctx context.Context, patch models.ProfilePatch) error {
	snap := e.state.Snapshot()
	if snap.UserID == "" {
		return fmt.Errorf("cannot update profile: %w", common.ErrSession)
	}

	merged := mergeProfile(snap.UserID, snap.Profile, patch)

	e.setInProgress(true)
	defer e.setInProgress(false)

	_, err := e.store.Get(ctx, common.CollectionUsers, snap.UserID)
	switch {
	case errors.Is(err, common.ErrNotFound):
		doc, err := encodeDoc(merged)
		if err != nil {
			return e.fail(ctx, "cannot create user", err)
		}
		if err := e.store.Set(ctx, common.CollectionUsers, snap.UserID, doc); err != nil {
			return e.fail(ctx, "cannot create user", fmt.Errorf("%w: %w", common.ErrWrite, err))
		}
		return e.LoadProfile(ctx, snap.UserID)
	case err != nil:
		return e.fail(ctx, "cannot create user", fmt.Errorf("%w: %w", common.ErrFetch, err))
	}

	if err := e.store.Update(ctx, common.CollectionUsers, snap.UserID, profileFields(merged)); err != nil {
		return e.fail(ctx, "cannot update user", fmt.Errorf("%w: %w", common.ErrWrite, err))
	}

	e.state.Apply(func(s state.Snapshot) state.Snapshot {
		s.Profile = &merged
		return s
	})
	return nil
}

// SignOut clears the session and every derived list synchronously. The
// provider sign-out is best-effort; local state never waits on it.
func (e *Engine) SignOut(ctx context.Context) {
	if err := e.identity.SignOut(ctx); err != nil {
		e.log.Warn(ctx, "provider sign-out failed", "err", err)
	}

	e.state.Apply(func(s state.Snapshot) state.Snapshot {
		return state.Snapshot{} // back to the zero state
	})
	e.state.Notify("Logged out")
}

func mergeProfile(userID string, cur *models.UserProfile, patch models.ProfilePatch) models.UserProfile {
	merged := models.UserProfile{UserID: userID}
	if cur != nil {
		merged = *cur
		merged.UserID = userID
	}
	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.Username != nil {
		merged.Username = *patch.Username
	}
	if patch.Bio != nil {
		merged.Bio = *patch.Bio
	}
	if patch.ImageURL != nil {
		merged.ImageURL = *patch.ImageURL
	}
	return merged
}

func profileFields(p models.UserProfile) map[string]any {
	following := p.Following
	if following == nil {
		following = []string{}
	}
	return map[string]any{
		"userId":    p.UserID,
		"name":      p.Name,
		"username":  p.Username,
		"bio":       p.Bio,
		"imageUrl":  p.ImageURL,
		"following": following,
	}
}
