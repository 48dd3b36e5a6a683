package adatypes

import "strings"

// Built-in Ada primitives recognized without an explicit declaration.
// Names are matched case-insensitively, as Ada identifiers are.
var builtinScalars = map[string]Scalar{
	"integer":       {Name: "Integer", Class: ClassInteger},
	"natural":       {Name: "Natural", Class: ClassInteger},
	"positive":      {Name: "Positive", Class: ClassInteger},
	"long_integer":  {Name: "Long_Integer", Class: ClassInteger},
	"short_integer": {Name: "Short_Integer", Class: ClassInteger},
	"duration":      {Name: "Duration", Class: ClassFloat},
	"float":         {Name: "Float", Class: ClassFloat},
	"long_float":    {Name: "Long_Float", Class: ClassFloat},
	"short_float":   {Name: "Short_Float", Class: ClassFloat},
	"boolean":       {Name: "Boolean", Class: ClassBoolean},
	"character":     {Name: "Character", Class: ClassCharacter},
	"wide_character": {
		Name: "Wide_Character", Class: ClassCharacter,
	},
	"wide_wide_character": {
		Name: "Wide_Wide_Character", Class: ClassCharacter,
	},
}

// The bounded-string family: structurally an array of a character type.
var builtinStrings = map[string]Array{
	"string": {
		Name:     "String",
		Element:  TypeRef{Name: "Character"},
		IsString: true,
	},
	"wide_string": {
		Name:     "Wide_String",
		Element:  TypeRef{Name: "Wide_Character"},
		IsString: true,
	},
	"wide_wide_string": {
		Name:     "Wide_Wide_String",
		Element:  TypeRef{Name: "Wide_Wide_Character"},
		IsString: true,
	},
}

// LookupBuiltin returns the predeclared definition for name, if any.
func LookupBuiltin(name string) (TypeDef, bool) {
	key := strings.ToLower(name)
	if s, ok := builtinScalars[key]; ok {
		return s, true
	}
	if a, ok := builtinStrings[key]; ok {
		return a, true
	}
	return nil, false
}

// IsBuiltin reports whether name is a predeclared primitive.
func IsBuiltin(name string) bool {
	_, ok := LookupBuiltin(name)
	return ok
}
