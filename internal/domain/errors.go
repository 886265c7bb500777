package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks across the taxonomy.
var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrAmbiguousName   = errors.New("ambiguous profile name")
	ErrDanglingParent  = errors.New("parent profile not found")
	ErrCycle           = errors.New("inheritance cycle")
	ErrChainTooDeep    = errors.New("inheritance chain too deep")
)

// LoadError reports a profile file that could not be read or parsed. The
// file is skipped; the load continues.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// AmbiguousNameError reports two records of the same scope and category
// sharing a name. One is dropped from the linked model, never merged.
type AmbiguousNameError struct {
	Name        string
	Category    Category
	Scope       Scope
	KeptPath    string
	DroppedPath string
}

func (e *AmbiguousNameError) Error() string {
	return fmt.Sprintf("duplicate %s %s profile %q: kept %s, dropped %s",
		e.Scope, e.Category, e.Name, e.KeptPath, e.DroppedPath)
}

func (e *AmbiguousNameError) Is(target error) bool {
	return target == ErrAmbiguousName
}

// DanglingParentError reports a parent reference that resolves to nothing.
// The child stays in the model as a flagged root.
type DanglingParentError struct {
	Profile  string
	Category Category
	Parent   string
}

func (e *DanglingParentError) Error() string {
	return fmt.Sprintf("%s profile %q inherits unknown profile %q",
		e.Category, e.Profile, e.Parent)
}

func (e *DanglingParentError) Is(target error) bool {
	return target == ErrDanglingParent
}

// CycleError reports a parent link that would close a loop. The link is
// rejected and the profile becomes a flagged root.
type CycleError struct {
	Profile  string
	Category Category
	Parent   string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%s profile %q: inheriting %q would create a cycle",
		e.Category, e.Profile, e.Parent)
}

func (e *CycleError) Is(target error) bool {
	return target == ErrCycle
}

// ChainTooDeepError reports that a traversal exceeded the defensive depth
// cap. Only the offending query is aborted.
type ChainTooDeepError struct {
	Profile string
	Depth   int
}

func (e *ChainTooDeepError) Error() string {
	return fmt.Sprintf("inheritance chain of %q exceeds %d levels", e.Profile, e.Depth)
}

func (e *ChainTooDeepError) Is(target error) bool {
	return target == ErrChainTooDeep
}
