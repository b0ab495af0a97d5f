package project

import "errors"

var (
	// ErrProjectNotFound indicates the project doesn't exist in the collection.
	ErrProjectNotFound = errors.New("project not found")
	// ErrNoItems indicates a save attempt for a project with no items.
	ErrNoItems = errors.New("project must keep at least one item")
)
