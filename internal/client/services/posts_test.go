package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/instaphotos/internal/client/models"
	"github.com/dmitrijs2005/instaphotos/internal/common"
)

func TestCreatePost(t *testing.T) {
	e, _, store, blobs := newTestEngine()
	signIn(e, testProfile())
	store.seed(t, common.CollectionUsers, "user-1", testProfile())

	fired := false
	err := e.CreatePost(context.Background(), []byte("jpeg"), "Sunset at the beach", func() { fired = true })

	require.NoError(t, err)
	require.True(t, fired)
	require.Equal(t, 1, blobs.uploads)
	require.Equal(t, "Post successfully created", consumeNotice(t, e))

	snap := e.State().Snapshot()
	require.Len(t, snap.MyPosts, 1)
	post := snap.MyPosts[0]
	require.Equal(t, "id-001", post.PostID)
	require.Equal(t, "user-1", post.UserID)
	require.Equal(t, "alice", post.Username)
	require.Equal(t, blobs.url, post.PostImage)
	require.Equal(t, testNow.UnixMilli(), post.CreatedAt)
	require.Empty(t, post.Likes)
	require.Equal(t, []string{"sunset", "at", "beach"}, post.SearchTerms)
}

func TestCreatePostUploadFailureWritesNothing(t *testing.T) {
	e, _, store, blobs := newTestEngine()
	signIn(e, testProfile())
	blobs.uploadErr = errBackend

	err := e.CreatePost(context.Background(), []byte("jpeg"), "desc", nil)

	require.ErrorIs(t, err, common.ErrUpload)
	require.Empty(t, store.docs[common.CollectionPosts])
	require.Empty(t, e.State().Snapshot().MyPosts)
}

func TestCreatePostWithoutSessionForcesSignOut(t *testing.T) {
	e, identity, _, blobs := newTestEngine()

	err := e.CreatePost(context.Background(), []byte("jpeg"), "desc", nil)

	require.ErrorIs(t, err, common.ErrSession)
	require.Zero(t, blobs.uploads)
	require.Equal(t, 1, identity.signOuts)
}

func TestRefreshMyPostsOnlyOwnPostsSorted(t *testing.T) {
	e, _, store, _ := newTestEngine()
	signIn(e, testProfile())
	store.seed(t, common.CollectionPosts, "p1", testPost("p1", "user-1", 100))
	store.seed(t, common.CollectionPosts, "p2", testPost("p2", "user-2", 300))
	store.seed(t, common.CollectionPosts, "p3", testPost("p3", "user-1", 200))

	err := e.RefreshMyPosts(context.Background())

	require.NoError(t, err)
	snap := e.State().Snapshot()
	require.False(t, snap.RefreshingPosts)
	require.Len(t, snap.MyPosts, 2)
	require.Equal(t, "p3", snap.MyPosts[0].PostID)
	require.Equal(t, "p1", snap.MyPosts[1].PostID)
}

func TestRefreshMyPostsFailureKeepsPreviousList(t *testing.T) {
	e, _, store, _ := newTestEngine()
	signIn(e, testProfile())
	store.seed(t, common.CollectionPosts, "p1", testPost("p1", "user-1", 100))
	require.NoError(t, e.RefreshMyPosts(context.Background()))
	store.queryErr = errBackend

	err := e.RefreshMyPosts(context.Background())

	require.ErrorIs(t, err, common.ErrFetch)
	snap := e.State().Snapshot()
	require.False(t, snap.RefreshingPosts)
	require.Len(t, snap.MyPosts, 1)
}

func TestUploadProfileImagePropagatesToPosts(t *testing.T) {
	e, _, store, blobs := newTestEngine()
	blobs.url = "https://blobs.example.com/bucket/images/new-avatar"
	profile := testProfile()
	signIn(e, profile)
	store.seed(t, common.CollectionUsers, "user-1", profile)

	p1 := testPost("p1", "user-1", 100)
	p1.UserImage = "https://old/avatar"
	store.seed(t, common.CollectionPosts, "p1", p1)

	err := e.UploadProfileImage(context.Background(), []byte("jpeg"))

	require.NoError(t, err)
	snap := e.State().Snapshot()
	require.Equal(t, blobs.url, snap.Profile.ImageURL)

	require.Len(t, store.batches, 1)
	require.Len(t, store.batches[0], 1)
	require.Equal(t, map[string]any{"userImage": blobs.url}, store.batches[0][0].Fields)

	// refreshed copy carries the new author image
	require.Len(t, snap.MyPosts, 1)
	require.Equal(t, blobs.url, snap.MyPosts[0].UserImage)
}

func TestPropagateProfileImageNoPostsIsNoop(t *testing.T) {
	e, _, store, _ := newTestEngine()
	signIn(e, testProfile())

	err := e.PropagateProfileImage(context.Background(), "https://new/avatar")

	require.NoError(t, err)
	require.Empty(t, store.batches)
}

func TestCreatePostDocumentShape(t *testing.T) {
	e, _, store, _ := newTestEngine()
	signIn(e, testProfile())
	store.seed(t, common.CollectionUsers, "user-1", testProfile())

	require.NoError(t, e.CreatePost(context.Background(), []byte("jpeg"), "hello #world", nil))

	doc, err := store.Get(context.Background(), common.CollectionPosts, "id-001")
	require.NoError(t, err)
	var p models.Post
	require.NoError(t, json.Unmarshal(doc, &p))
	require.Equal(t, []string{"hello", "world"}, p.SearchTerms)
	require.Equal(t, "user-1", p.UserID)
}
