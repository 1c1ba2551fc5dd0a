// Package apperrors defines the error taxonomy shared by services and
// handlers. Every error here is a per-operation failure surfaced to the
// caller; none is fatal to the process.
package apperrors

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError reports every missing or malformed field of a
// submission in one shot so the client can correct the whole form.
type ValidationError struct {
	Fields map[string]string
}

func NewValidation() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

func (e *ValidationError) Add(field, msg string) {
	e.Fields[field] = msg
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// UnauthorizedTransitionError means the actor's role does not match the
// stage the request is currently waiting on.
type UnauthorizedTransitionError struct {
	Role   string
	Status string
	Action string
}

func (e *UnauthorizedTransitionError) Error() string {
	return fmt.Sprintf("role %q cannot %s a request in status %q", e.Role, e.Action, e.Status)
}

// ForbiddenError is a role violation outside the approval chain, e.g. a
// teacher hitting an inventory-management endpoint.
type ForbiddenError struct {
	Role   string
	Action string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("role %q is not allowed to %s", e.Role, e.Action)
}

// InsufficientStockError carries the current availability so the user
// can adjust the requested quantity.
type InsufficientStockError struct {
	EquipmentID uint
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("equipment %d: requested %d but only %d available", e.EquipmentID, e.Requested, e.Available)
}

type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// ConflictError reports a lost optimistic-concurrency race: the request
// was transitioned by someone else between read and write.
type ConflictError struct {
	Resource string
	ID       uint
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %d was modified concurrently, reload and retry", e.Resource, e.ID)
}
