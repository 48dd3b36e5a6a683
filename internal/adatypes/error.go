package adatypes

import (
	"fmt"
	"strings"
)

// UnknownTypeError indicates a reference to a name that is neither
// declared nor a built-in primitive.
type UnknownTypeError struct {
	Name string
	Path string // field path that referenced the name, if any
}

func (e *UnknownTypeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("unknown type: %s (referenced at %s)", e.Name, e.Path)
	}
	return fmt.Sprintf("unknown type: %s", e.Name)
}

func NewUnknownTypeError(name, path string) *UnknownTypeError {
	return &UnknownTypeError{Name: name, Path: path}
}

// CyclicAliasError indicates a subtype chain that revisits a name.
type CyclicAliasError struct {
	Name  string
	Chain []string
}

func (e *CyclicAliasError) Error() string {
	return fmt.Sprintf("cyclic subtype chain: %s (via %s)",
		e.Name, strings.Join(e.Chain, " -> "))
}

func NewCyclicAliasError(name string, chain []string) *CyclicAliasError {
	return &CyclicAliasError{Name: name, Chain: chain}
}

// UnsupportedConstructError indicates a declaration using a feature
// outside the supported subset (variant records, access types, ...).
type UnsupportedConstructError struct {
	Name      string
	Construct string
	Path      string
}

func (e *UnsupportedConstructError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("unsupported construct in type %s: %s (at %s)",
			e.Name, e.Construct, e.Path)
	}
	return fmt.Sprintf("unsupported construct in type %s: %s", e.Name, e.Construct)
}

func NewUnsupportedConstructError(name, construct, path string) *UnsupportedConstructError {
	return &UnsupportedConstructError{Name: name, Construct: construct, Path: path}
}
