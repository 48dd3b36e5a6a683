// Package registry builds the symbol table of type declarations and
// resolves type references, including subtype alias chains, to their
// canonical structural kind.
package registry

import (
	"strings"

	"github.com/tunner/ada-struct-validation/internal/adatypes"
	"github.com/tunner/ada-struct-validation/internal/scanner"
)

// Registry stores classified type declarations under their names.
// It is built once per source text and read-only afterwards. Lookup is
// by lowercased name, as Ada identifiers are case-insensitive.
type Registry struct {
	defs map[string]adatypes.TypeDef
	// Declarations using out-of-scope constructs are remembered with
	// their classification error. The error surfaces only when the
	// type is actually resolved, so an unsupported declaration does
	// not poison generation for unrelated types.
	invalid map[string]error
	order   []string // declared names in source order
}

// Build scans src, classifies every type/subtype declaration, and
// returns the resulting registry.
func Build(src string) (*Registry, error) {
	r := &Registry{
		defs:    make(map[string]adatypes.TypeDef),
		invalid: make(map[string]error),
	}
	for _, decl := range scanner.Scan(src) {
		key := strings.ToLower(decl.Name)
		if _, seen := r.defs[key]; !seen {
			if _, seen := r.invalid[key]; !seen {
				r.order = append(r.order, decl.Name)
			}
		}
		def, err := classify(decl)
		if err != nil {
			r.invalid[key] = err
			continue
		}
		r.defs[key] = def
	}
	return r, nil
}

// Names returns every declared type name in source order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// RecordNames returns the names of directly-declared record types in
// source order. This is the menu offered for interactive selection.
func (r *Registry) RecordNames() []string {
	var names []string
	for _, name := range r.order {
		def, ok := r.defs[strings.ToLower(name)]
		if ok && def.Kind() == adatypes.KindRecord {
			names = append(names, name)
		}
	}
	return names
}

// Resolve looks up name and chases subtype alias chains until a
// non-alias kind is reached. Unknown names that are not built-in
// primitives fail with UnknownTypeError; a chain that revisits a name
// fails with CyclicAliasError instead of looping.
func (r *Registry) Resolve(name string) (adatypes.TypeDef, error) {
	return r.resolve(name, "")
}

// ResolveRef resolves a type reference encountered at the given field
// path; the path is carried into any error for diagnostics.
func (r *Registry) ResolveRef(ref adatypes.TypeRef, path string) (adatypes.TypeDef, error) {
	return r.resolve(ref.Name, path)
}

func (r *Registry) resolve(name, path string) (adatypes.TypeDef, error) {
	visited := make(map[string]bool)
	chain := []string{}
	current := name
	for {
		key := strings.ToLower(current)
		if visited[key] {
			return nil, adatypes.NewCyclicAliasError(name, append(chain, current))
		}
		visited[key] = true
		chain = append(chain, current)

		if err, bad := r.invalid[key]; bad {
			return nil, err
		}
		def, ok := r.defs[key]
		if !ok {
			if builtin, isBuiltin := adatypes.LookupBuiltin(current); isBuiltin {
				return builtin, nil
			}
			return nil, adatypes.NewUnknownTypeError(current, path)
		}
		alias, isAlias := def.(adatypes.SubtypeAlias)
		if !isAlias {
			return def, nil
		}
		current = alias.Base.Name
	}
}
