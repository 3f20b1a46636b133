package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	drainNotices()
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Post(ctx context.Context) error
	MyPosts(ctx context.Context) error
	Feed(ctx context.Context) error
	Search(ctx context.Context, term string) error
	Follow(ctx context.Context, userID string) error
	Like(ctx context.Context, postID string) error
	Comment(ctx context.Context, postID string) error
	Comments(ctx context.Context, postID string) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	SetImage(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the InstaPhotos CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - signup         — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - post           — create a post (image path + description)
//	  - myposts        — list own posts
//	  - feed           — show the personalized feed
//	  - search <term>  — search posts by description term
//	  - follow <user>  — follow or unfollow a user
//	  - like <post>    — like or unlike a post
//	  - comment <post> — add a comment
//	  - comments <post> — list a post's comments
//	  - profile        — show the profile
//	  - edit           — edit profile fields
//	  - setimage       — change the profile image
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; failures surface
// through the engine's notices, which are drained and printed after every
// command. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ip> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: post, myposts, feed, search, follow, like, comment, comments, profile, edit, setimage, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, exit")
			}

		case "signup":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "post":
			_ = a.Post(ctx)

		case "myposts":
			_ = a.MyPosts(ctx)

		case "feed":
			_ = a.Feed(ctx)

		case "search":
			if len(args) == 0 {
				printlnFn("Usage: search <term>")
				continue
			}
			_ = a.Search(ctx, strings.Join(args, " "))

		case "follow":
			if len(args) == 0 {
				printlnFn("Usage: follow <user-id>")
				continue
			}
			_ = a.Follow(ctx, args[0])

		case "like":
			if len(args) == 0 {
				printlnFn("Usage: like <post-id>")
				continue
			}
			_ = a.Like(ctx, args[0])

		case "comment":
			if len(args) == 0 {
				printlnFn("Usage: comment <post-id>")
				continue
			}
			_ = a.Comment(ctx, args[0])

		case "comments":
			if len(args) == 0 {
				printlnFn("Usage: comments <post-id>")
				continue
			}
			_ = a.Comments(ctx, args[0])

		case "profile":
			_ = a.Profile(ctx)

		case "edit":
			_ = a.EditProfile(ctx)

		case "setimage":
			_ = a.SetImage(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		a.drainNotices()
	}
}
