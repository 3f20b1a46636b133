package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/instaphotos/internal/client/models"
	"github.com/dmitrijs2005/instaphotos/internal/client/remote"
	"github.com/dmitrijs2005/instaphotos/internal/client/state"
	"github.com/dmitrijs2005/instaphotos/internal/common"
)

// generalFeedWindow bounds the general feed to recent posts.
const generalFeedWindow = 24 * time.Hour

// LoadPersonalizedFeed publishes the posts of the followed users, newest
// first. An empty result, or an empty following set, falls back to the
// general feed. On failure the previously published feed stays up.
func (e *Engine) LoadPersonalizedFeed(ctx context.Context) error {
	snap := e.state.Snapshot()

	var following []string
	if snap.Profile != nil {
		following = snap.Profile.Following
	}
	if len(following) == 0 {
		return e.loadGeneralFeed(ctx)
	}

	e.setFeedLoading(true)

	docs, err := e.store.Query(ctx, common.CollectionPosts,
		remote.Filter{Field: "userId", Op: remote.OpIn, Value: following})
	if err != nil {
		e.setFeedLoading(false)
		return e.fail(ctx, "cannot get personalized feed", fmt.Errorf("%w: %w", common.ErrFetch, err))
	}

	posts, err := decodePosts(docs)
	if err != nil {
		e.setFeedLoading(false)
		return e.fail(ctx, "cannot get personalized feed", err)
	}

	if len(posts) == 0 {
		return e.loadGeneralFeed(ctx)
	}

	e.publishFeed(posts)
	return nil
}

// loadGeneralFeed publishes all posts from the last 24 hours, whatever
// their author, with no further fallback.
func (e *Engine) loadGeneralFeed(ctx context.Context) error {
	e.setFeedLoading(true)

	cutoff := e.now().UnixMilli() - generalFeedWindow.Milliseconds()
	docs, err := e.store.Query(ctx, common.CollectionPosts,
		remote.Filter{Field: "createdAt", Op: remote.OpGreaterThan, Value: cutoff})
	if err != nil {
		e.setFeedLoading(false)
		return e.fail(ctx, "cannot get general feed", fmt.Errorf("%w: %w", common.ErrFetch, err))
	}

	posts, err := decodePosts(docs)
	if err != nil {
		e.setFeedLoading(false)
		return e.fail(ctx, "cannot get general feed", err)
	}

	e.publishFeed(posts)
	return nil
}

func (e *Engine) publishFeed(posts []models.Post) {
	sorted := sortPostsDesc(posts)
	e.state.Apply(func(s state.Snapshot) state.Snapshot {
		s.Feed = sorted
		s.FeedLoading = false
		return s
	})
}

func (e *Engine) setFeedLoading(v bool) {
	e.state.Apply(func(s state.Snapshot) state.Snapshot {
		s.FeedLoading = v
		return s
	})
}
