// Package services contains the client engine: the single owner of all
// mutable application state. It sequences remote operations against the
// identity provider, the document store, and the blob store, and derives
// the composite views (personalized feed, own posts, search results,
// comments, follower count) the UI renders.
//
// Every operation publishes its outcome through the state store; failures
// become one-shot user-visible notices and clear the relevant loading
// flag. Within one operation the documented pipeline order is strict;
// across operations there is no coordination and the last completed write
// wins, matching the stale-but-present semantics of the published lists.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/instaphotos/internal/client/models"
	"github.com/dmitrijs2005/instaphotos/internal/client/remote"
	"github.com/dmitrijs2005/instaphotos/internal/client/state"
	"github.com/dmitrijs2005/instaphotos/internal/logging"
)

// Engine owns the published state and all remote orchestration.
type Engine struct {
	identity remote.Identity
	store    remote.DocumentStore
	blobs    remote.BlobStore
	state    *state.Store
	log      logging.Logger

	// seams for tests
	now   func() time.Time
	newID func() string
}

func New(identity remote.Identity, store remote.DocumentStore, blobs remote.BlobStore, st *state.Store, log logging.Logger) *Engine {
	if log == nil {
		log = logging.NopLogger{}
	}
	return &Engine{
		identity: identity,
		store:    store,
		blobs:    blobs,
		state:    st,
		log:      log,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// State exposes the engine's state store to consumers.
func (e *Engine) State() *state.Store {
	return e.state
}

// Bootstrap restores a previous session, if the identity provider has one,
// and runs the full profile-load cascade.
func (e *Engine) Bootstrap(ctx context.Context) {
	sess, ok := e.identity.CurrentSession(ctx)
	if !ok {
		return
	}
	e.state.Apply(func(s state.Snapshot) state.Snapshot {
		s.SignedIn = true
		s.UserID = sess.UserID
		return s
	})
	_ = e.LoadProfile(ctx, sess.UserID)
}

// fail converts a remote failure into a one-shot user-visible notice,
// in the "<context> : <provider message>" shape, and returns the wrapped
// error for the caller.
func (e *Engine) fail(ctx context.Context, prefix string, err error) error {
	e.log.Error(ctx, prefix, "err", err)
	if prefix == "" {
		e.state.Notify(err.Error())
		return err
	}
	e.state.Notify(prefix + " : " + err.Error())
	return fmt.Errorf("%s: %w", prefix, err)
}

func (e *Engine) setInProgress(v bool) {
	e.state.Apply(func(s state.Snapshot) state.Snapshot {
		s.InProgress = v
		return s
	})
}

// ---- document codecs ----

func encodeDoc(v any) (remote.Document, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return remote.Document(data), nil
}

func decodePosts(docs []remote.Document) ([]models.Post, error) {
	posts := make([]models.Post, 0, len(docs))
	for _, d := range docs {
		var p models.Post
		if err := json.Unmarshal(d, &p); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, nil
}

// sortPostsDesc orders newest first. The sort is stable: posts with equal
// timestamps keep the order the query returned them in.
func sortPostsDesc(posts []models.Post) []models.Post {
	sorted := make([]models.Post, len(posts))
	copy(sorted, posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt > sorted[j].CreatedAt
	})
	return sorted
}
