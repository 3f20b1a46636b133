package cli

import "context"

// Search queries posts by a description term and prints the results.
func (a *App) Search(ctx context.Context, term string) error {
	if err := a.engine.Search(ctx, term); err != nil {
		return err
	}
	printPosts("Search results", a.engine.State().Snapshot().SearchResults)
	return nil
}
