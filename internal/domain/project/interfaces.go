package project

import "context"

// Store persists the full project collection as a single document. Every
// Replace overwrites the whole collection; there are no partial writes.
type Store interface {
	Load(ctx context.Context) ([]Project, error)
	Replace(ctx context.Context, projects []Project) error
}

// FallbackProvider supplies the collection served when nothing has been
// persisted yet. Production uses the built-in seed dataset; tests substitute
// their own fixtures.
type FallbackProvider interface {
	Projects() []Project
}
