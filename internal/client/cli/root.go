package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) getStatus() string {
	s := ""
	if snap := a.engine.State().Snapshot(); snap.SignedIn {
		if snap.Profile != nil && snap.Profile.Username != "" {
			s = snap.Profile.Username + " "
		} else {
			s = snap.UserID + " "
		}
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// drainNotices prints and clears any pending engine notice. Called after
// every REPL command so outcome messages reach the user promptly.
func (a *App) drainNotices() {
	if msg, ok := a.engine.State().ConsumeNotice(); ok {
		printlnFn(msg)
	}
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to InstaPhotos CLI (type 'help' for commands)")

	a.engine.Bootstrap(ctx)
	a.drainNotices()

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
