package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/instaphotos/internal/client/models"
	"github.com/dmitrijs2005/instaphotos/internal/client/remote"
	"github.com/dmitrijs2005/instaphotos/internal/client/services"
	"github.com/dmitrijs2005/instaphotos/internal/client/state"
	"github.com/dmitrijs2005/instaphotos/internal/common"
	"github.com/dmitrijs2005/instaphotos/internal/logging"
)

type stubIdentity struct{}

func (stubIdentity) CreateAccount(context.Context, string, string) (models.Session, error) {
	return models.Session{UserID: "user-1"}, nil
}
func (stubIdentity) SignIn(context.Context, string, string) (models.Session, error) {
	return models.Session{UserID: "user-1"}, nil
}
func (stubIdentity) SignOut(context.Context) error { return nil }
func (stubIdentity) CurrentSession(context.Context) (models.Session, bool) {
	return models.Session{}, false
}

// stubStore keeps documents per collection and returns every document of a
// collection for any query. Enough filtering for single-user scenarios.
type stubStore struct {
	docs map[string]map[string]remote.Document
}

func newStubStore() *stubStore {
	return &stubStore{docs: make(map[string]map[string]remote.Document)}
}

func (s *stubStore) Get(_ context.Context, collection, id string) (remote.Document, error) {
	doc, ok := s.docs[collection][id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return doc, nil
}

func (s *stubStore) Query(_ context.Context, collection string, _ ...remote.Filter) ([]remote.Document, error) {
	var out []remote.Document
	for _, d := range s.docs[collection] {
		out = append(out, d)
	}
	return out, nil
}

func (s *stubStore) Set(_ context.Context, collection, id string, doc remote.Document) error {
	if s.docs[collection] == nil {
		s.docs[collection] = make(map[string]remote.Document)
	}
	s.docs[collection][id] = doc
	return nil
}

func (s *stubStore) Update(_ context.Context, collection, id string, _ map[string]any) error {
	if _, ok := s.docs[collection][id]; !ok {
		return common.ErrNotFound
	}
	return nil
}

func (s *stubStore) BatchUpdate(context.Context, []remote.FieldUpdate) error { return nil }

type stubBlobs struct{}

func (stubBlobs) Upload(context.Context, []byte, string) (string, error) {
	return "https://blobs/img", nil
}

func newTestApp() *App {
	engine := services.New(stubIdentity{}, newStubStore(), stubBlobs{}, state.NewStore(), logging.NopLogger{})
	return &App{engine: engine, reader: bufio.NewReader(strings.NewReader(""))}
}

// stubInputs replaces the interactive input seams with canned answers.
func stubInputs(t *testing.T, answers []string, password string) {
	t.Helper()

	origText, origMulti, origPw := getSimpleText, getMultiline, getPassword
	t.Cleanup(func() {
		getSimpleText, getMultiline, getPassword = origText, origMulti, origPw
	})

	i := 0
	next := func() string {
		require.Less(t, i, len(answers), "ran out of canned answers")
		a := answers[i]
		i++
		return a
	}
	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) { return next(), nil }
	getMultiline = func(*bufio.Reader, string, io.Writer) (string, error) { return next(), nil }
	getPassword = func(io.Writer) ([]byte, error) { return []byte(password), nil }
}

func muteOutput(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestSignupCommandSignsIn(t *testing.T) {
	muteOutput(t)
	a := newTestApp()
	stubInputs(t, []string{"alice", "a@b.c"}, "pw")

	require.NoError(t, a.Signup(context.Background()))

	require.True(t, a.isLoggedIn())
	snap := a.engine.State().Snapshot()
	require.NotNil(t, snap.Profile)
	require.Equal(t, "alice", snap.Profile.Username)
}

func TestPostCommandCreatesPost(t *testing.T) {
	muteOutput(t)
	a := newTestApp()
	stubInputs(t, []string{"alice", "a@b.c"}, "pw")
	require.NoError(t, a.Signup(context.Background()))

	origRead := readFile
	t.Cleanup(func() { readFile = origRead })
	readFile = func(string) ([]byte, error) { return []byte("jpeg"), nil }

	stubInputs(t, []string{"/tmp/cat.jpg", "my cat"}, "")
	require.NoError(t, a.Post(context.Background()))

	snap := a.engine.State().Snapshot()
	require.Len(t, snap.MyPosts, 1)
	require.Equal(t, "my cat", snap.MyPosts[0].Description)
}

func TestLikeCommandUnknownPost(t *testing.T) {
	muteOutput(t)
	a := newTestApp()

	// a post that is not in any published list is reported, not an error
	require.NoError(t, a.Like(context.Background(), "nope"))
}

func TestLogoutCommandClearsSession(t *testing.T) {
	muteOutput(t)
	a := newTestApp()
	stubInputs(t, []string{"alice", "a@b.c"}, "pw")
	require.NoError(t, a.Signup(context.Background()))
	require.True(t, a.isLoggedIn())

	require.NoError(t, a.Logout(context.Background()))

	require.False(t, a.isLoggedIn())
}
