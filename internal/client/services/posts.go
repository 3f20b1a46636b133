package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/instaphotos/internal/client/models"
	"github.com/dmitrijs2005/instaphotos/internal/client/remote"
	"github.com/dmitrijs2005/instaphotos/internal/client/state"
	"github.com/dmitrijs2005/instaphotos/internal/common"
)

// stopWords never make it into a post's search terms.
var stopWords = map[string]struct{}{
	"the": {}, "be": {}, "to": {}, "is": {}, "of": {},
	"and": {}, "or": {}, "a": {}, "in": {}, "it": {},
}

// searchTerms tokenizes a post description for the search index: split on
// whitespace and basic punctuation, lower-case, drop empties and stop
// words, de-duplicate preserving first occurrence.
func searchTerms(description string) []string {
	tokens := strings.FieldsFunc(strings.ToLower(description), func(r rune) bool {
		switch r {
		case ' ', '.', ',', '?', '!', '#', '-':
			return true
		}
		return false
	})

	seen := make(map[string]struct{}, len(tokens))
	terms := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, stop := stopWords[tok]; stop {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		terms = append(terms, tok)
	}
	return terms
}

// CreatePost runs the post pipeline: upload the image, tokenize the
// description, write the document, then refresh the caller's own posts.
// An upload failure aborts the whole operation; no partial post becomes
// visible. onSuccess, if non-nil, fires after the post is written.
func (e *Engine) CreatePost(ctx context.Context, imageBytes []byte, description string, onSuccess func()) error {
	snap := e.state.Snapshot()
	if snap.UserID == "" {
		err := e.fail(ctx, "unable to create post", common.ErrSession)
		e.SignOut(ctx)
		return err
	}

	e.setInProgress(true)
	defer e.setInProgress(false)

	imageURL, err := e.blobs.Upload(ctx, imageBytes, remote.RandomImageKey())
	if err != nil {
		return e.fail(ctx, "unable to create a post", fmt.Errorf("%w: %w", common.ErrUpload, err))
	}

	var username, userImage string
	if snap.Profile != nil {
		username = snap.Profile.Username
		userImage = snap.Profile.ImageURL
	}

	post := models.Post{
		PostID:      e.newID(),
		UserID:      snap.UserID,
		Username:    username,
		UserImage:   userImage,
		PostImage:   imageURL,
		Description: description,
		CreatedAt:   e.now().UnixMilli(),
		Likes:       []string{},
		SearchTerms: searchTerms(description),
	}

	doc, err := encodeDoc(post)
	if err != nil {
		return e.fail(ctx, "unable to create a post", err)
	}
	if err := e.store.Set(ctx, common.CollectionPosts, post.PostID, doc); err != nil {
		return e.fail(ctx, "unable to create a post", fmt.Errorf("%w: %w", common.ErrWrite, err))
	}

	e.state.Notify("Post successfully created")
	_ = e.RefreshMyPosts(ctx)

	if onSuccess != nil {
		onSuccess()
	}
	return nil
}

// RefreshMyPosts republishes the current user's own posts, newest first.
func (e *Engine) RefreshMyPosts(ctx context.Context) error {
	snap := e.state.Snapshot()
	if snap.UserID == "" {
		err := e.fail(ctx, "unable to refresh posts", common.ErrSession)
		e.SignOut(ctx)
		return err
	}

	e.state.Apply(func(s state.Snapshot) state.Snapshot {
		s.RefreshingPosts = true
		return s
	})

	docs, err := e.store.Query(ctx, common.CollectionPosts,
		remote.Filter{Field: "userId", Op: remote.OpEq, Value: snap.UserID})
	if err != nil {
		e.state.Apply(func(s state.Snapshot) state.Snapshot {
			s.RefreshingPosts = false
			return s
		})
		return e.fail(ctx, "cannot fetch posts", fmt.Errorf("%w: %w", common.ErrFetch, err))
	}

	posts, err := decodePosts(docs)
	if err != nil {
		e.state.Apply(func(s state.Snapshot) state.Snapshot {
			s.RefreshingPosts = false
			return s
		})
		return e.fail(ctx, "cannot fetch posts", err)
	}

	sorted := sortPostsDesc(posts)
	e.state.Apply(func(s state.Snapshot) state.Snapshot {
		s.MyPosts = sorted
		s.RefreshingPosts = false
		return s
	})
	return nil
}

// UploadProfileImage uploads a new profile image, merges its URL into the
// profile, and re-syncs the denormalized author image on existing posts.
func (e *Engine) UploadProfileImage(ctx context.Context, imageBytes []byte) error {
	imageURL, err := e.blobs.Upload(ctx, imageBytes, remote.RandomImageKey())
	if err != nil {
		return e.fail(ctx, "cannot upload profile image", fmt.Errorf("%w: %w", common.ErrUpload, err))
	}

	if err := e.UpdateProfile(ctx, models.ProfilePatch{ImageURL: &imageURL}); err != nil {
		return err
	}
	return e.PropagateProfileImage(ctx, imageURL)
}

// PropagateProfileImage rewrites the userImage snapshot on every post the
// current user authored, in one atomic batch. A user with zero posts is a
// successful no-op: nothing is written.
func (e *Engine) PropagateProfileImage(ctx context.Context, newURL string) error {
	snap := e.state.Snapshot()
	if snap.UserID == "" {
		return fmt.Errorf("cannot update post images: %w", common.ErrSession)
	}

	docs, err := e.store.Query(ctx, common.CollectionPosts,
		remote.Filter{Field: "userId", Op: remote.OpEq, Value: snap.UserID})
	if err != nil {
		return e.fail(ctx, "cannot update post images", fmt.Errorf("%w: %w", common.ErrFetch, err))
	}

	posts, err := decodePosts(docs)
	if err != nil {
		return e.fail(ctx, "cannot update post images", err)
	}
	if len(posts) == 0 {
		return nil
	}

	updates := make([]remote.FieldUpdate, 0, len(posts))
	for _, p := range posts {
		updates = append(updates, remote.FieldUpdate{
			Collection: common.CollectionPosts,
			ID:         p.PostID,
			Fields:     map[string]any{"userImage": newURL},
		})
	}

	if err := e.store.BatchUpdate(ctx, updates); err != nil {
		return e.fail(ctx, "cannot update post images", fmt.Errorf("%w: %w", common.ErrWrite, err))
	}

	return e.RefreshMyPosts(ctx)
}
