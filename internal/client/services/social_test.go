package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/instaphotos/internal/client/models"
	"github.com/dmitrijs2005/instaphotos/internal/common"
)

func TestToggleFollowAddsAndRemoves(t *testing.T) {
	e, _, store, _ := newTestEngine()
	profile := testProfile()
	signIn(e, profile)
	store.seed(t, common.CollectionUsers, "user-1", profile)

	require.NoError(t, e.ToggleFollow(context.Background(), "user-2"))
	snap := e.State().Snapshot()
	require.Equal(t, []string{"user-2"}, snap.Profile.Following)

	// second toggle restores the original set
	require.NoError(t, e.ToggleFollow(context.Background(), "user-2"))
	snap = e.State().Snapshot()
	require.Empty(t, snap.Profile.Following)
}

func TestToggleFollowSwitchesFeedToFollowed(t *testing.T) {
	e, _, store, _ := newTestEngine()
	profile := testProfile()
	signIn(e, profile)
	store.seed(t, common.CollectionUsers, "user-1", profile)
	store.seed(t, common.CollectionPosts, "p1", testPost("p1", "user-2", 100))

	require.NoError(t, e.ToggleFollow(context.Background(), "user-2"))

	// the profile reload cascades into the personalized feed
	snap := e.State().Snapshot()
	require.Len(t, snap.Feed, 1)
	require.Equal(t, "p1", snap.Feed[0].PostID)
}

func TestToggleFollowSelfRejected(t *testing.T) {
	e, _, store, _ := newTestEngine()
	signIn(e, testProfile())

	err := e.ToggleFollow(context.Background(), "user-1")

	require.ErrorIs(t, err, common.ErrValidation)
	require.Zero(t, store.queries)
}

func TestToggleFollowRequiresSession(t *testing.T) {
	e, _, _, _ := newTestEngine()

	err := e.ToggleFollow(context.Background(), "user-2")

	require.ErrorIs(t, err, common.ErrSession)
}

func TestToggleFollowWriteFailure(t *testing.T) {
	e, _, store, _ := newTestEngine()
	profile := testProfile()
	signIn(e, profile)
	store.seed(t, common.CollectionUsers, "user-1", profile)
	store.updateErr = errBackend

	err := e.ToggleFollow(context.Background(), "user-2")

	require.ErrorIs(t, err, common.ErrWrite)
	require.Empty(t, e.State().Snapshot().Profile.Following)
}

func TestLoadFollowerCount(t *testing.T) {
	e, _, store, _ := newTestEngine()
	store.seed(t, common.CollectionUsers, "user-2",
		models.UserProfile{UserID: "user-2", Following: []string{"user-1", "user-9"}})
	store.seed(t, common.CollectionUsers, "user-3",
		models.UserProfile{UserID: "user-3", Following: []string{"user-1"}})
	store.seed(t, common.CollectionUsers, "user-4",
		models.UserProfile{UserID: "user-4", Following: []string{"user-9"}})

	require.NoError(t, e.loadFollowerCount(context.Background(), "user-1"))

	require.Equal(t, 2, e.State().Snapshot().FollowerCount)
}

func TestLoadFollowerCountFailureKeepsPreviousCount(t *testing.T) {
	e, _, store, _ := newTestEngine()
	store.seed(t, common.CollectionUsers, "user-2",
		models.UserProfile{UserID: "user-2", Following: []string{"user-1"}})
	require.NoError(t, e.loadFollowerCount(context.Background(), "user-1"))
	store.queryErr = errBackend

	err := e.loadFollowerCount(context.Background(), "user-1")

	require.ErrorIs(t, err, common.ErrFetch)
	require.Equal(t, 1, e.State().Snapshot().FollowerCount)
	// no notice for a failed follower recount
	_, ok := e.State().ConsumeNotice()
	require.False(t, ok)
}
