package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/kmsol/fabtrack/internal/domain/project"
	"github.com/kmsol/fabtrack/internal/repository"
)

// projectsSlot is the slot key holding the full project collection.
const projectsSlot = "projects"

// ProjectStore implements repository.ProjectStore over the slots table. The
// whole collection is one JSON document; every write overwrites it.
type ProjectStore struct {
	db *DB
}

// NewProjectStore creates a new ProjectStore
func NewProjectStore(db *DB) *ProjectStore {
	return &ProjectStore{db: db}
}

// Load reads the project collection slot. Returns repository.ErrNotFound when
// nothing has been persisted yet and repository.ErrCorrupt when the stored
// document does not parse.
func (s *ProjectStore) Load(ctx context.Context) ([]project.Project, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM slots WHERE key = ?`, projectsSlot).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read slot %q: %w", projectsSlot, err)
	}

	var projects []project.Project
	if err := json.Unmarshal([]byte(value), &projects); err != nil {
		return nil, fmt.Errorf("%w: slot %q: %v", repository.ErrCorrupt, projectsSlot, err)
	}
	return projects, nil
}

// Replace overwrites the project collection slot with the full document.
func (s *ProjectStore) Replace(ctx context.Context, projects []project.Project) error {
	if projects == nil {
		projects = []project.Project{}
	}
	data, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("failed to encode projects: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO slots (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`, projectsSlot, string(data))
	if err != nil {
		return fmt.Errorf("failed to write slot %q: %w", projectsSlot, err)
	}
	return nil
}
