package adatypes

// Kind classifies the structural shape of a resolved type.
type Kind int

const (
	KindScalar Kind = iota
	KindEnumeration
	KindRecord
	KindArray
	KindSubtypeAlias
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindEnumeration:
		return "enumeration"
	case KindRecord:
		return "record"
	case KindArray:
		return "array"
	case KindSubtypeAlias:
		return "subtype alias"
	}
	return "unknown"
}

// ScalarClass distinguishes the primitive families inside KindScalar.
type ScalarClass int

const (
	ClassInteger ScalarClass = iota
	ClassFloat
	ClassBoolean
	ClassCharacter
)

// TypeDef is the closed union of type definitions the registry stores.
// Exactly five variants implement it; the unexported marker keeps the
// union closed so a type switch over them can be exhaustive.
type TypeDef interface {
	Kind() Kind
	TypeName() string
	typeDef()
}

// TypeRef is an unresolved reference to a type by name, as written at a
// use site (record field, array element, subtype base). Constraint keeps
// the raw constraint text (index ranges, value ranges); it is recognized
// but never interpreted.
type TypeRef struct {
	Name       string
	Constraint string
}

// Scalar is a primitive whose 'Valid check applies directly.
type Scalar struct {
	Name  string
	Class ScalarClass
}

func (t Scalar) Kind() Kind       { return KindScalar }
func (t Scalar) TypeName() string { return t.Name }
func (t Scalar) typeDef()         {}

// Enumeration is an ordered set of literal names. Representation may be
// non-contiguous, so it is validated like any other scalar leaf.
type Enumeration struct {
	Name     string
	Literals []string
}

func (t Enumeration) Kind() Kind       { return KindEnumeration }
func (t Enumeration) TypeName() string { return t.Name }
func (t Enumeration) typeDef()         {}

// Field is a single record component. Declaration order is significant
// and preserved by Record.Fields.
type Field struct {
	Name string
	Type TypeRef
}

// Record is an ordered sequence of named fields.
type Record struct {
	Name   string
	Fields []Field
}

func (t Record) Kind() Kind       { return KindRecord }
func (t Record) TypeName() string { return t.Name }
func (t Record) typeDef()         {}

// Array holds only its element reference: bounds are irrelevant to
// generation, which always iterates the use site's 'Range. IsString
// marks character-element arrays (the bounded-string family); these are
// still validated one position at a time, never collapsed.
type Array struct {
	Name     string
	Element  TypeRef
	IsString bool
}

func (t Array) Kind() Kind       { return KindArray }
func (t Array) TypeName() string { return t.Name }
func (t Array) typeDef()         {}

// SubtypeAlias is a subtype or derived-type declaration. The constraint
// is carried for completeness but ignored by generation; the alias is
// transparent once resolved to its base's structural kind.
type SubtypeAlias struct {
	Name       string
	Base       TypeRef
	Constraint string
}

func (t SubtypeAlias) Kind() Kind       { return KindSubtypeAlias }
func (t SubtypeAlias) TypeName() string { return t.Name }
func (t SubtypeAlias) typeDef()         {}
