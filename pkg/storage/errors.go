package storage

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrNodeNotFound     = errors.New("node not found")
	ErrEdgeNotFound     = errors.New("edge not found")
	ErrPropertyNotFound = errors.New("property not found")
	ErrDuplicateEdge    = errors.New("edge already exists")
)

// GraphError provides structured error information for graph operations.
type GraphError struct {
	Op      string // Operation that failed (e.g., "AddEdge", "NodeProperty")
	Entity  string // Entity type ("node", "edge")
	ID      uint64 // Entity ID (if applicable)
	Field   string // Property key (for property operations)
	Context string // Additional context
	Cause   error  // Underlying error
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	if e.ID != 0 {
		if e.Field != "" {
			return fmt.Sprintf("%s %s %d (field %s): %v", e.Op, e.Entity, e.ID, e.Field, e.Cause)
		}
		return fmt.Sprintf("%s %s %d: %v", e.Op, e.Entity, e.ID, e.Cause)
	}
	if e.Context != "" {
		if e.Field != "" {
			return fmt.Sprintf("%s %s %s (field %s): %v", e.Op, e.Entity, e.Context, e.Field, e.Cause)
		}
		return fmt.Sprintf("%s %s (%s): %v", e.Op, e.Entity, e.Context, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *GraphError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error or its cause.
func (e *GraphError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// Convenience constructors for common error patterns

// NodeNotFoundError creates a node not found error.
func NodeNotFoundError(op string, nodeID uint64) error {
	return &GraphError{Op: op, Entity: "node", ID: nodeID, Cause: ErrNodeNotFound}
}

// EdgeNotFoundError creates an edge not found error for the given endpoints.
func EdgeNotFoundError(op string, from, to uint64) error {
	return &GraphError{Op: op, Entity: "edge", Context: fmt.Sprintf("%d->%d", from, to), Cause: ErrEdgeNotFound}
}

// PropertyNotFoundError creates a property lookup error.
func PropertyNotFoundError(op, entity string, id uint64, key string) error {
	return &GraphError{Op: op, Entity: entity, ID: id, Field: key, Cause: ErrPropertyNotFound}
}

// IsNotFound returns true if the error is a node or edge not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNodeNotFound) || errors.Is(err, ErrEdgeNotFound)
}
