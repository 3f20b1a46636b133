package remote

import (
	"context"

	"github.com/dmitrijs2005/instaphotos/internal/client/models"
)

// Document is a JSON-encoded document body.
type Document []byte

// FilterOp enumerates the query predicates the document store supports.
type FilterOp string

const (
	OpEq            FilterOp = "eq"
	OpArrayContains FilterOp = "array_contains"
	OpGreaterThan   FilterOp = "gt"
	OpIn            FilterOp = "in"
)

// Filter is a single query predicate. Value is marshalled to JSON on the
// wire; for OpIn it must be a slice.
type Filter struct {
	Field string
	Op    FilterOp
	Value any
}

// FieldUpdate addresses one document in a batch update.
type FieldUpdate struct {
	Collection string
	ID         string
	Fields     map[string]any
}

// Identity is the identity-provider contract.
type Identity interface {
	CreateAccount(ctx context.Context, email, password string) (models.Session, error)
	SignIn(ctx context.Context, email, password string) (models.Session, error)
	SignOut(ctx context.Context) error
	// CurrentSession reports the restored session, if any, without a
	// network round-trip.
	CurrentSession(ctx context.Context) (models.Session, bool)
}

// DocumentStore is the document-database contract.
type DocumentStore interface {
	// Get returns common.ErrNotFound if no document has the given id.
	Get(ctx context.Context, collection, id string) (Document, error)
	Query(ctx context.Context, collection string, filters ...Filter) ([]Document, error)
	Set(ctx context.Context, collection, id string, doc Document) error
	Update(ctx context.Context, collection, id string, fields map[string]any) error
	// BatchUpdate applies all updates atomically: either every update is
	// applied or none is.
	BatchUpdate(ctx context.Context, updates []FieldUpdate) error
}

// BlobStore is the blob-storage contract.
type BlobStore interface {
	// Upload stores data under path and returns a stable public URL.
	Upload(ctx context.Context, data []byte, path string) (string, error)
}
