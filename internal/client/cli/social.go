package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/instaphotos/internal/client/models"
)

// Follow toggles following the given user and reloads the profile.
func (a *App) Follow(ctx context.Context, userID string) error {
	if err := a.engine.ToggleFollow(ctx, userID); err != nil {
		return err
	}
	if snap := a.engine.State().Snapshot(); snap.Profile != nil && snap.Profile.IsFollowing(userID) {
		printlnFn("Now following", userID)
	} else {
		printlnFn("Unfollowed", userID)
	}
	return nil
}

// Like toggles the current user's like on a post from one of the published
// lists. The post must be visible in the feed, own posts, or search results.
func (a *App) Like(ctx context.Context, postID string) error {
	post, ok := a.findPost(postID)
	if !ok {
		printlnFn("Unknown post:", postID)
		return nil
	}

	updated, err := a.engine.ToggleLike(ctx, post)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Post %s now has %d likes", updated.PostID, len(updated.Likes)))
	return nil
}

// Comment prompts for a comment text and adds it to the post.
func (a *App) Comment(ctx context.Context, postID string) error {
	text, err := getSimpleText(a.reader, "Enter comment", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.engine.AddComment(ctx, postID, text); err != nil {
		return err
	}
	return a.printComments()
}

// Comments loads and prints a post's comment thread, newest first.
func (a *App) Comments(ctx context.Context, postID string) error {
	if err := a.engine.LoadComments(ctx, postID); err != nil {
		return err
	}
	return a.printComments()
}

func (a *App) printComments() error {
	comments := a.engine.State().Snapshot().Comments
	printlnFn(fmt.Sprintf("Comments (%d):", len(comments)))
	for _, c := range comments {
		created := time.UnixMilli(c.CreatedAt).Format("2006-01-02 15:04")
		printlnFn(fmt.Sprintf("  @%s %s: %s", c.Username, created, c.Text))
	}
	return nil
}

// findPost looks the post up in the published lists, feed first.
func (a *App) findPost(postID string) (models.Post, bool) {
	snap := a.engine.State().Snapshot()
	for _, list := range [][]models.Post{snap.Feed, snap.MyPosts, snap.SearchResults} {
		for _, p := range list {
			if p.PostID == postID {
				return p, true
			}
		}
	}
	return models.Post{}, false
}
