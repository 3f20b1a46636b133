package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/instaphotos/internal/client/models"
)

// Profile prints the current profile and follower count.
func (a *App) Profile(ctx context.Context) error {
	snap := a.engine.State().Snapshot()
	if snap.Profile == nil {
		printlnFn("No profile yet. Use 'edit' to create one.")
		return nil
	}
	p := snap.Profile
	printlnFn(fmt.Sprintf("@%s (%s)", p.Username, p.Name))
	if p.Bio != "" {
		printlnFn(p.Bio)
	}
	if p.ImageURL != "" {
		printlnFn("image:", p.ImageURL)
	}
	printlnFn(fmt.Sprintf("following: %d, followers: %d", len(p.Following), snap.FollowerCount))
	return nil
}

// EditProfile prompts for profile fields and saves them. An empty answer
// keeps the current value.
func (a *App) EditProfile(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	username, err := getSimpleText(a.reader, "Enter username (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	bio, err := getMultiline(a.reader, "Enter bio (double Enter to finish):", os.Stdout)
	if err != nil {
		return err
	}

	var patch models.ProfilePatch
	if name != "" {
		patch.Name = &name
	}
	if username != "" {
		patch.Username = &username
	}
	if bio != "" {
		patch.Bio = &bio
	}

	if err := a.engine.UpdateProfile(ctx, patch); err != nil {
		return err
	}
	printlnFn("Profile saved")
	return nil
}

// SetImage uploads a new profile image and re-syncs it onto existing posts.
func (a *App) SetImage(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Enter image path", os.Stdout)
	if err != nil {
		return err
	}

	imageBytes, err := readFile(path)
	if err != nil {
		printlnFn("cannot read image:", err.Error())
		return err
	}

	return a.engine.UploadProfileImage(ctx, imageBytes)
}
