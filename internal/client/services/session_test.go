package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/instaphotos/internal/client/models"
	"github.com/dmitrijs2005/instaphotos/internal/common"
)

func TestSignUpValidation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"empty username", "", "a@b.c", "pw"},
		{"empty email", "alice", "", "pw"},
		{"empty password", "alice", "a@b.c", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, identity, _, _ := newTestEngine()

			err := e.SignUp(context.Background(), tt.username, tt.email, tt.password)

			require.ErrorIs(t, err, common.ErrValidation)
			require.Zero(t, identity.creates)
			require.Equal(t, "please fill in all fields", consumeNotice(t, e))
		})
	}
}

func TestSignUpDuplicateUsername(t *testing.T) {
	e, identity, store, _ := newTestEngine()
	store.seed(t, common.CollectionUsers, "user-9",
		models.UserProfile{UserID: "user-9", Username: "alice"})

	err := e.SignUp(context.Background(), "alice", "a@b.c", "pw")

	require.ErrorIs(t, err, common.ErrDuplicateUsername)
	require.Zero(t, identity.creates)
	require.False(t, e.State().Snapshot().SignedIn)
}

func TestSignUpCreatesAccountAndProfile(t *testing.T) {
	e, identity, store, _ := newTestEngine()

	err := e.SignUp(context.Background(), "alice", "a@b.c", "pw")

	require.NoError(t, err)
	require.Equal(t, 1, identity.creates)

	snap := e.State().Snapshot()
	require.True(t, snap.SignedIn)
	require.Equal(t, "user-1", snap.UserID)
	require.NotNil(t, snap.Profile)
	require.Equal(t, "alice", snap.Profile.Username)
	require.False(t, snap.InProgress)

	// the profile document landed in the users collection
	doc, err := store.Get(context.Background(), common.CollectionUsers, "user-1")
	require.NoError(t, err)
	require.Contains(t, string(doc), `"alice"`)
}

func TestSignUpProviderFailure(t *testing.T) {
	e, identity, _, _ := newTestEngine()
	identity.createErr = errBackend

	err := e.SignUp(context.Background(), "alice", "a@b.c", "pw")

	require.ErrorIs(t, err, common.ErrAuth)
	require.False(t, e.State().Snapshot().SignedIn)
	require.Equal(t, "signup failed : "+common.ErrAuth.Error()+": "+errBackend.Error(),
		consumeNotice(t, e))
}

func TestSignInValidation(t *testing.T) {
	e, _, _, _ := newTestEngine()

	err := e.SignIn(context.Background(), "", "pw")

	require.ErrorIs(t, err, common.ErrValidation)
	require.False(t, e.State().Snapshot().SignedIn)
}

func TestSignInBadCredentials(t *testing.T) {
	e, identity, _, _ := newTestEngine()
	identity.signInErr = errBackend

	err := e.SignIn(context.Background(), "a@b.c", "wrong")

	require.ErrorIs(t, err, common.ErrAuth)
	require.False(t, e.State().Snapshot().SignedIn)
}

func TestSignInRunsProfileCascade(t *testing.T) {
	e, _, store, _ := newTestEngine()
	store.seed(t, common.CollectionUsers, "user-1", testProfile())
	store.seed(t, common.CollectionPosts, "p1", testPost("p1", "user-1", testNow.UnixMilli()-10))
	store.seed(t, common.CollectionUsers, "user-2",
		models.UserProfile{UserID: "user-2", Username: "bob", Following: []string{"user-1"}})

	err := e.SignIn(context.Background(), "a@b.c", "pw")

	require.NoError(t, err)
	snap := e.State().Snapshot()
	require.True(t, snap.SignedIn)
	require.Equal(t, "alice", snap.Profile.Username)
	require.Len(t, snap.MyPosts, 1)
	require.Len(t, snap.Feed, 1)
	require.Equal(t, 1, snap.FollowerCount)
	require.Equal(t, "Login successful", consumeNotice(t, e))
}

func TestLoadProfileMissingDocumentStillCascades(t *testing.T) {
	e, _, store, _ := newTestEngine()
	signIn(e, nil)
	queriesBefore := store.queries

	err := e.LoadProfile(context.Background(), "user-1")

	require.NoError(t, err)
	snap := e.State().Snapshot()
	require.Nil(t, snap.Profile)
	// own posts, feed, follower count all still refetched
	require.Equal(t, queriesBefore+3, store.queries)
}

func TestLoadProfileFetchFailure(t *testing.T) {
	e, _, store, _ := newTestEngine()
	signIn(e, nil)
	store.getErr = errBackend

	err := e.LoadProfile(context.Background(), "user-1")

	require.ErrorIs(t, err, common.ErrFetch)
	require.False(t, e.State().Snapshot().InProgress)
	require.Zero(t, store.queries)
}

func TestUpdateProfileMergesPatch(t *testing.T) {
	e, _, store, _ := newTestEngine()
	profile := testProfile()
	profile.Bio = "old bio"
	signIn(e, profile)
	store.seed(t, common.CollectionUsers, "user-1", profile)

	bio := "new bio"
	err := e.UpdateProfile(context.Background(), models.ProfilePatch{Bio: &bio})

	require.NoError(t, err)
	snap := e.State().Snapshot()
	require.Equal(t, "new bio", snap.Profile.Bio)
	require.Equal(t, "alice", snap.Profile.Username)

	require.Equal(t, common.CollectionUsers, store.lastUpdate.Collection)
	require.Equal(t, "new bio", store.lastUpdate.Fields["bio"])
	require.Equal(t, "alice", store.lastUpdate.Fields["username"])
}

func TestUpdateProfileRequiresSession(t *testing.T) {
	e, _, _, _ := newTestEngine()

	err := e.UpdateProfile(context.Background(), models.ProfilePatch{})

	require.ErrorIs(t, err, common.ErrSession)
}

func TestSignOutClearsEverything(t *testing.T) {
	e, identity, store, _ := newTestEngine()
	store.seed(t, common.CollectionUsers, "user-1", testProfile())
	store.seed(t, common.CollectionPosts, "p1", testPost("p1", "user-1", testNow.UnixMilli()))
	signIn(e, testProfile())
	require.NoError(t, e.LoadProfile(context.Background(), "user-1"))

	e.SignOut(context.Background())

	snap := e.State().Snapshot()
	require.False(t, snap.SignedIn)
	require.Empty(t, snap.UserID)
	require.Nil(t, snap.Profile)
	require.Empty(t, snap.MyPosts)
	require.Empty(t, snap.Feed)
	require.Zero(t, snap.FollowerCount)
	require.Equal(t, 1, identity.signOuts)
	require.Equal(t, "Logged out", consumeNotice(t, e))
}

func TestSignOutProviderFailureStillClears(t *testing.T) {
	e, identity, _, _ := newTestEngine()
	identity.signOutErr = errBackend
	signIn(e, testProfile())

	e.SignOut(context.Background())

	require.False(t, e.State().Snapshot().SignedIn)
}
