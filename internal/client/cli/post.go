package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/instaphotos/internal/client/models"
)

// readFile is a test seam for loading image bytes from disk.
var readFile = os.ReadFile

// Post prompts for an image path and a description and creates a post.
func (a *App) Post(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Enter image path", os.Stdout)
	if err != nil {
		return err
	}

	imageBytes, err := readFile(path)
	if err != nil {
		printlnFn("cannot read image:", err.Error())
		return err
	}

	description, err := getMultiline(a.reader, "Enter description (double Enter to finish):", os.Stdout)
	if err != nil {
		return err
	}

	return a.engine.CreatePost(ctx, imageBytes, description, nil)
}

// MyPosts refreshes and prints the user's own posts.
func (a *App) MyPosts(ctx context.Context) error {
	if err := a.engine.RefreshMyPosts(ctx); err != nil {
		return err
	}
	printPosts("Your posts", a.engine.State().Snapshot().MyPosts)
	return nil
}

// Feed reloads and prints the personalized feed.
func (a *App) Feed(ctx context.Context) error {
	if err := a.engine.LoadPersonalizedFeed(ctx); err != nil {
		return err
	}
	printPosts("Feed", a.engine.State().Snapshot().Feed)
	return nil
}

func printPosts(title string, posts []models.Post) {
	printlnFn(fmt.Sprintf("%s (%d):", title, len(posts)))
	for _, p := range posts {
		printlnFn(formatPost(p))
	}
}

func formatPost(p models.Post) string {
	created := time.UnixMilli(p.CreatedAt).Format("2006-01-02 15:04")
	return fmt.Sprintf("  [%s] @%s %s | %s | likes: %d",
		p.PostID, p.Username, created, p.Description, len(p.Likes))
}
