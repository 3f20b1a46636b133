package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/instaphotos/internal/client/models"
	"github.com/dmitrijs2005/instaphotos/internal/client/remote"
	"github.com/dmitrijs2005/instaphotos/internal/client/state"
	"github.com/dmitrijs2005/instaphotos/internal/common"
)

// ToggleLike adds the current user to the post's likes, or removes them if
// already present, writing only the likes field. On success the updated
// post replaces its copies in every published list by post id; no list is
// refetched.
func (e *Engine) ToggleLike(ctx context.Context, post models.Post) (models.Post, error) {
	snap := e.state.Snapshot()
	if snap.UserID == "" {
		return post, e.fail(ctx, "unable to like post", common.ErrSession)
	}

	newLikes := make([]string, 0, len(post.Likes)+1)
	removed := false
	for _, id := range post.Likes {
		if id == snap.UserID {
			removed = true
			continue
		}
		newLikes = append(newLikes, id)
	}
	if !removed {
		newLikes = append(newLikes, snap.UserID)
	}

	err := e.store.Update(ctx, common.CollectionPosts, post.PostID,
		map[string]any{"likes": newLikes})
	if err != nil {
		return post, e.fail(ctx, "unable to like post", fmt.Errorf("%w: %w", common.ErrWrite, err))
	}

	post.Likes = newLikes
	e.state.Apply(func(s state.Snapshot) state.Snapshot {
		s.Feed = replacePost(s.Feed, post)
		s.MyPosts = replacePost(s.MyPosts, post)
		s.SearchResults = replacePost(s.SearchResults, post)
		return s
	})
	return post, nil
}

// replacePost swaps the copy with the same post id, if present, leaving
// order untouched.
func replacePost(posts []models.Post, updated models.Post) []models.Post {
	for i, p := range posts {
		if p.PostID == updated.PostID {
			out := make([]models.Post, len(posts))
			copy(out, posts)
			out[i] = updated
			return out
		}
	}
	return posts
}

// AddComment writes a new comment and, on success, reloads the post's
// comment thread. A comment needs a known username on the profile.
func (e *Engine) AddComment(ctx context.Context, postID, text string) error {
	snap := e.state.Snapshot()
	if snap.Profile == nil || snap.Profile.Username == "" {
		return e.fail(ctx, "cannot comment without a username", common.ErrSession)
	}

	comment := models.Comment{
		CommentID: e.newID(),
		PostID:    postID,
		Username:  snap.Profile.Username,
		Text:      text,
		CreatedAt: e.now().UnixMilli(),
	}

	doc, err := encodeDoc(comment)
	if err != nil {
		return e.fail(ctx, "cannot create comment", err)
	}
	if err := e.store.Set(ctx, common.CollectionComments, comment.CommentID, doc); err != nil {
		return e.fail(ctx, "cannot create comment", fmt.Errorf("%w: %w", common.ErrWrite, err))
	}

	return e.LoadComments(ctx, postID)
}

// LoadComments republishes a post's comments, newest first. A failed load
// keeps the previously published thread and parks the state machine in
// LoadStateFailed.
func (e *Engine) LoadComments(ctx context.Context, postID string) error {
	e.setCommentsLoad(state.LoadStateLoading)

	docs, err := e.store.Query(ctx, common.CollectionComments,
		remote.Filter{Field: "postId", Op: remote.OpEq, Value: postID})
	if err != nil {
		e.setCommentsLoad(state.LoadStateFailed)
		return e.fail(ctx, "cannot retrieve comments", fmt.Errorf("%w: %w", common.ErrFetch, err))
	}

	comments := make([]models.Comment, 0, len(docs))
	for _, d := range docs {
		var c models.Comment
		if err := json.Unmarshal(d, &c); err != nil {
			e.setCommentsLoad(state.LoadStateFailed)
			return e.fail(ctx, "cannot retrieve comments", err)
		}
		comments = append(comments, c)
	}

	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt > comments[j].CreatedAt
	})

	e.state.Apply(func(s state.Snapshot) state.Snapshot {
		s.Comments = comments
		s.CommentsLoad = state.LoadStateIdle
		return s
	})
	return nil
}

func (e *Engine) setCommentsLoad(v state.LoadState) {
	e.state.Apply(func(s state.Snapshot) state.Snapshot {
		s.CommentsLoad = v
		return s
	})
}
