package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/instaphotos/internal/client/models"
	"github.com/dmitrijs2005/instaphotos/internal/client/remote"
	"github.com/dmitrijs2005/instaphotos/internal/client/state"
	"github.com/dmitrijs2005/instaphotos/internal/common"
	"github.com/dmitrijs2005/instaphotos/internal/logging"
)

var errBackend = errors.New("backend unavailable")

// testNow is the fixed clock every test engine runs on.
var testNow = time.UnixMilli(1_700_000_000_000)

type fakeIdentity struct {
	session    models.Session
	createErr  error
	signInErr  error
	signOutErr error

	restored bool
	signOuts int
	creates  int
}

func (f *fakeIdentity) CreateAccount(_ context.Context, _, _ string) (models.Session, error) {
	f.creates++
	if f.createErr != nil {
		return models.Session{}, f.createErr
	}
	return f.session, nil
}

func (f *fakeIdentity) SignIn(_ context.Context, _, _ string) (models.Session, error) {
	if f.signInErr != nil {
		return models.Session{}, f.signInErr
	}
	return f.session, nil
}

func (f *fakeIdentity) SignOut(_ context.Context) error {
	f.signOuts++
	return f.signOutErr
}

func (f *fakeIdentity) CurrentSession(_ context.Context) (models.Session, bool) {
	if !f.restored {
		return models.Session{}, false
	}
	return f.session, true
}

// fakeStore is an in-memory document store that evaluates query filters
// against the stored JSON, so tests exercise the same predicates the real
// backend would.
type fakeStore struct {
	docs  map[string]map[string]remote.Document
	order map[string][]string

	getErr    error
	queryErr  error
	setErr    error
	updateErr error
	batchErr  error

	queries    int
	lastUpdate remote.FieldUpdate
	batches    [][]remote.FieldUpdate
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		docs:  make(map[string]map[string]remote.Document),
		order: make(map[string][]string),
	}
}

func (f *fakeStore) seed(t *testing.T, collection, id string, v any) {
	t.Helper()
	doc, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, f.Set(context.Background(), collection, id, doc))
}

func (f *fakeStore) Get(_ context.Context, collection, id string) (remote.Document, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	doc, ok := f.docs[collection][id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return doc, nil
}

func (f *fakeStore) Query(_ context.Context, collection string, filters ...remote.Filter) ([]remote.Document, error) {
	f.queries++
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	var out []remote.Document
	for _, id := range f.order[collection] {
		doc := f.docs[collection][id]
		if matchesAll(doc, filters) {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (f *fakeStore) Set(_ context.Context, collection, id string, doc remote.Document) error {
	if f.setErr != nil {
		return f.setErr
	}
	if f.docs[collection] == nil {
		f.docs[collection] = make(map[string]remote.Document)
	}
	if _, exists := f.docs[collection][id]; !exists {
		f.order[collection] = append(f.order[collection], id)
	}
	f.docs[collection][id] = doc
	return nil
}

func (f *fakeStore) Update(_ context.Context, collection, id string, fields map[string]any) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	doc, ok := f.docs[collection][id]
	if !ok {
		return common.ErrNotFound
	}
	f.lastUpdate = remote.FieldUpdate{Collection: collection, ID: id, Fields: fields}

	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return err
	}
	for k, v := range fields {
		m[k] = jsonNorm(v)
	}
	merged, err := json.Marshal(m)
	if err != nil {
		return err
	}
	f.docs[collection][id] = merged
	return nil
}

func (f *fakeStore) BatchUpdate(ctx context.Context, updates []remote.FieldUpdate) error {
	if f.batchErr != nil {
		return f.batchErr
	}
	f.batches = append(f.batches, updates)
	for _, u := range updates {
		if err := f.Update(ctx, u.Collection, u.ID, u.Fields); err != nil {
			return err
		}
	}
	return nil
}

func matchesAll(doc remote.Document, filters []remote.Filter) bool {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return false
	}
	for _, f := range filters {
		if !matches(m, f) {
			return false
		}
	}
	return true
}

func matches(m map[string]any, f remote.Filter) bool {
	want := jsonNorm(f.Value)
	got := m[f.Field]
	switch f.Op {
	case remote.OpEq:
		return reflect.DeepEqual(got, want)
	case remote.OpGreaterThan:
		gn, ok1 := got.(float64)
		wn, ok2 := want.(float64)
		return ok1 && ok2 && gn > wn
	case remote.OpArrayContains:
		arr, _ := got.([]any)
		for _, el := range arr {
			if reflect.DeepEqual(el, want) {
				return true
			}
		}
		return false
	case remote.OpIn:
		vals, _ := want.([]any)
		for _, v := range vals {
			if reflect.DeepEqual(got, v) {
				return true
			}
		}
		return false
	}
	return false
}

// jsonNorm round-trips a value through JSON so fake-store comparisons see
// the same shapes (float64, []any) a decoded document does.
func jsonNorm(v any) any {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil
	}
	return out
}

type fakeBlobs struct {
	url       string
	uploadErr error
	uploads   int
}

func (f *fakeBlobs) Upload(_ context.Context, _ []byte, _ string) (string, error) {
	f.uploads++
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	return f.url, nil
}

func newTestEngine() (*Engine, *fakeIdentity, *fakeStore, *fakeBlobs) {
	identity := &fakeIdentity{session: models.Session{UserID: "user-1"}}
	store := newFakeStore()
	blobs := &fakeBlobs{url: "https://blobs.example.com/bucket/images/img-1"}

	e := New(identity, store, blobs, state.NewStore(), logging.NopLogger{})
	e.now = func() time.Time { return testNow }
	n := 0
	e.newID = func() string {
		n++
		return fmt.Sprintf("id-%03d", n)
	}
	return e, identity, store, blobs
}

// signIn puts the engine into a signed-in state without going through the
// identity provider.
func signIn(e *Engine, profile *models.UserProfile) {
	e.state.Apply(func(s state.Snapshot) state.Snapshot {
		s.SignedIn = true
		s.UserID = "user-1"
		s.Profile = profile
		return s
	})
}

func testProfile() *models.UserProfile {
	return &models.UserProfile{UserID: "user-1", Username: "alice", ImageURL: "https://old/avatar"}
}

func testPost(id, userID string, createdAt int64) models.Post {
	return models.Post{
		PostID:    id,
		UserID:    userID,
		Username:  "someone",
		CreatedAt: createdAt,
		Likes:     []string{},
	}
}

func consumeNotice(t *testing.T, e *Engine) string {
	t.Helper()
	msg, ok := e.State().ConsumeNotice()
	require.True(t, ok)
	return msg
}

func TestSearchTerms(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        []string
	}{
		{"simple words", "sunset beach", []string{"sunset", "beach"}},
		{"punctuation splits", "sunset.beach,today?yes!now#go-fast", []string{"sunset", "beach", "today", "yes", "now", "go", "fast"}},
		{"lowercased", "SunSet BEACH", []string{"sunset", "beach"}},
		{"stop words dropped", "the sunset of a beach in it", []string{"sunset", "beach"}},
		{"duplicates keep first occurrence", "beach sunset beach", []string{"beach", "sunset"}},
		{"blank", "   ", []string{}},
		{"only stop words", "the and or", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, searchTerms(tt.description))
		})
	}
}

func TestSortPostsDescIsStable(t *testing.T) {
	posts := []models.Post{
		testPost("a", "u", 100),
		testPost("b", "u", 300),
		testPost("c", "u", 100),
	}

	sorted := sortPostsDesc(posts)

	require.Equal(t, []string{"b", "a", "c"},
		[]string{sorted[0].PostID, sorted[1].PostID, sorted[2].PostID})
	// input untouched
	require.Equal(t, "a", posts[0].PostID)
}

func TestBootstrapRestoresSession(t *testing.T) {
	e, identity, store, _ := newTestEngine()
	identity.restored = true
	store.seed(t, common.CollectionUsers, "user-1", testProfile())
	store.seed(t, common.CollectionPosts, "p1", testPost("p1", "user-1", testNow.UnixMilli()))

	e.Bootstrap(context.Background())

	snap := e.State().Snapshot()
	require.True(t, snap.SignedIn)
	require.Equal(t, "user-1", snap.UserID)
	require.NotNil(t, snap.Profile)
	require.Equal(t, "alice", snap.Profile.Username)
	require.Len(t, snap.MyPosts, 1)
}

func TestBootstrapWithoutSessionIsNoop(t *testing.T) {
	e, _, store, _ := newTestEngine()

	e.Bootstrap(context.Background())

	require.False(t, e.State().Snapshot().SignedIn)
	require.Zero(t, store.queries)
}
