package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/instaphotos/internal/client/remote"
	"github.com/dmitrijs2005/instaphotos/internal/client/state"
	"github.com/dmitrijs2005/instaphotos/internal/common"
)

// Search publishes posts whose search terms contain the given term.
// The term is trimmed and lowercased before matching; a blank term is a
// no-op so an accidental empty submit does not clear previous results.
func (e *Engine) Search(ctx context.Context, term string) error {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}

	e.setSearching(true)

	docs, err := e.store.Query(ctx, common.CollectionPosts,
		remote.Filter{Field: "searchTerms", Op: remote.OpArrayContains, Value: term})
	if err != nil {
		e.setSearching(false)
		return e.fail(ctx, "cannot search posts", fmt.Errorf("%w: %w", common.ErrFetch, err))
	}

	posts, err := decodePosts(docs)
	if err != nil {
		e.setSearching(false)
		return e.fail(ctx, "cannot search posts", err)
	}
	sorted := sortPostsDesc(posts)

	e.state.Apply(func(s state.Snapshot) state.Snapshot {
		s.SearchResults = sorted
		s.Searching = false
		return s
	})
	return nil
}

func (e *Engine) setSearching(v bool) {
	e.state.Apply(func(s state.Snapshot) state.Snapshot {
		s.Searching = v
		return s
	})
}
