// Package generator emits Ada validation functions that check every
// scalar leaf of a type with the 'Valid attribute.
package generator

import (
	"fmt"

	"github.com/tunner/ada-struct-validation/internal/adatypes"
	"github.com/tunner/ada-struct-validation/internal/config"
	"github.com/tunner/ada-struct-validation/internal/registry"
)

// context carries the state of one generation run: the registry being
// queried and the output printer. A fresh context is built per call, so
// concurrent Generate calls never share state.
type context struct {
	reg *registry.Registry
	p   *printer
}

// Generate produces the validation function for typeName, binding its
// parameter to inputName (config.DefaultInputName when empty). The
// function checks every leaf exactly once and never short-circuits:
// the Valid accumulator is ANDed with each check in declaration order.
// On any error no text is returned.
func Generate(reg *registry.Registry, typeName, inputName string) (string, error) {
	if inputName == "" {
		inputName = config.DefaultInputName
	}
	root, err := reg.Resolve(typeName)
	if err != nil {
		return "", err
	}

	c := &context{reg: reg, p: newPrinter()}
	c.p.raw("function %s (%s : %s) return Boolean is",
		config.FunctionName, inputName, typeName)
	c.p.indent = 1
	c.p.line("%s : Boolean := True;", config.AccumulatorName)
	c.p.raw("begin")
	if err := c.emit(inputName, typeName, root, 0); err != nil {
		return "", err
	}
	c.p.line("return %s;", config.AccumulatorName)
	c.p.raw("end %s;", config.FunctionName)
	return c.p.String(), nil
}

// GenerateFile wraps Generate in the header block of a generated .adb
// template. Output is byte-identical across runs for identical input.
func GenerateFile(reg *registry.Registry, typeName, inputName string) (string, error) {
	body, err := Generate(reg, typeName, inputName)
	if err != nil {
		return "", err
	}
	header := fmt.Sprintf("--  Generated validation function for %s\n", typeName) +
		"--  Add this function to your package body.\n\n"
	return header + body, nil
}

// emit recursively writes the validation statements for path, whose
// resolved definition is def. owner is the identifier that names any
// loop introduced here; depth counts the loop scopes enclosing this
// point.
func (c *context) emit(path, owner string, def adatypes.TypeDef, depth int) error {
	switch t := def.(type) {
	case adatypes.Scalar, adatypes.Enumeration:
		// Enumerations may have non-contiguous representations, but
		// 'Valid covers that; they get the plain scalar rule.
		c.p.line("%s := %s AND %s'Valid;", config.AccumulatorName, config.AccumulatorName, path)
		return nil

	case adatypes.Record:
		for _, field := range t.Fields {
			fieldPath := path + "." + field.Name
			resolved, err := c.reg.ResolveRef(field.Type, fieldPath)
			if err != nil {
				return err
			}
			if err := c.emit(fieldPath, field.Name, resolved, depth); err != nil {
				return err
			}
		}
		return nil

	case adatypes.Array:
		loopVar := loopVariable(owner, depth+1)
		c.p.line("for %s in %s'Range loop", loopVar, path)
		c.p.indent++
		elemPath := fmt.Sprintf("%s (%s)", path, loopVar)
		resolved, err := c.reg.ResolveRef(t.Element, elemPath)
		if err != nil {
			return err
		}
		if err := c.emit(elemPath, t.Element.Name, resolved, depth+1); err != nil {
			return err
		}
		c.p.indent--
		c.p.line("end loop;")
		return nil

	case adatypes.SubtypeAlias:
		// The registry resolves alias chains before we get here; this
		// arm keeps the kind switch total for a direct alias def.
		resolved, err := c.reg.ResolveRef(t.Base, path)
		if err != nil {
			return err
		}
		return c.emit(path, owner, resolved, depth)
	}
	return adatypes.NewUnsupportedConstructError(owner, def.Kind().String(), path)
}

// loopVariable derives a loop variable name from the identifier owning
// the loop and the nesting depth of the loop being introduced. Depth
// qualification makes names unique along any chain of lexically nested
// loops; sibling loops may share a name without conflict since their
// scopes never overlap.
func loopVariable(owner string, depth int) string {
	return fmt.Sprintf("I_%s_%d", owner, depth)
}
