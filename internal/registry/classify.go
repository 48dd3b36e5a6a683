package registry

import (
	"strings"
	"unicode"

	"github.com/tunner/ada-struct-validation/internal/adatypes"
	"github.com/tunner/ada-struct-validation/internal/scanner"
)

// classify turns one scanned declaration into its TypeDef, deciding
// which of the five structural kinds it introduces.
func classify(decl scanner.Declaration) (adatypes.TypeDef, error) {
	if decl.Discriminant != "" {
		return nil, adatypes.NewUnsupportedConstructError(decl.Name, "discriminated record", "")
	}
	body := decl.Body

	if decl.Keyword == "subtype" {
		base, constraint := splitHeadIdent(body)
		if base == "" {
			return nil, adatypes.NewUnsupportedConstructError(decl.Name, "malformed subtype", "")
		}
		return adatypes.SubtypeAlias{
			Name:       decl.Name,
			Base:       adatypes.TypeRef{Name: base},
			Constraint: constraint,
		}, nil
	}

	// "limited record" validates like a plain record.
	body = stripLeadingWord(body, "limited")
	lower := strings.ToLower(body)

	switch {
	case strings.HasPrefix(body, "("):
		return classifyEnumeration(decl.Name, body)
	case hasLeadingWord(lower, "array"):
		return classifyArray(decl.Name, body)
	case hasLeadingWord(lower, "record"):
		return classifyRecord(decl.Name, body)
	case hasLeadingWord(lower, "null"):
		// "null record" declares an empty record.
		return adatypes.Record{Name: decl.Name}, nil
	case hasLeadingWord(lower, "tagged"), hasLeadingWord(lower, "abstract"):
		return nil, adatypes.NewUnsupportedConstructError(decl.Name, "tagged type", "")
	case hasLeadingWord(lower, "access"):
		return nil, adatypes.NewUnsupportedConstructError(decl.Name, "access type", "")
	case hasLeadingWord(lower, "new"):
		return classifyDerived(decl.Name, body)
	case hasLeadingWord(lower, "range"), hasLeadingWord(lower, "mod"):
		return adatypes.Scalar{Name: decl.Name, Class: adatypes.ClassInteger}, nil
	case hasLeadingWord(lower, "digits"), hasLeadingWord(lower, "delta"):
		return adatypes.Scalar{Name: decl.Name, Class: adatypes.ClassFloat}, nil
	default:
		word, _ := splitHeadIdent(body)
		if word == "" {
			word = "declaration"
		}
		return nil, adatypes.NewUnsupportedConstructError(decl.Name, word+" type", "")
	}
}

func classifyEnumeration(name, body string) (adatypes.TypeDef, error) {
	closing := strings.LastIndex(body, ")")
	if closing == -1 {
		return nil, adatypes.NewUnsupportedConstructError(name, "malformed enumeration", "")
	}
	var literals []string
	for _, lit := range strings.Split(body[1:closing], ",") {
		lit = strings.TrimSpace(lit)
		if lit != "" {
			literals = append(literals, lit)
		}
	}
	return adatypes.Enumeration{Name: name, Literals: literals}, nil
}

// classifyArray parses "array ( index ) of element [constraint]". The
// index part is never interpreted: generation iterates 'Range at the
// use site, so even a "range <>" box is acceptable here.
func classifyArray(name, body string) (adatypes.TypeDef, error) {
	rest := stripLeadingWord(body, "array")
	rest = strings.TrimSpace(rest)
	if !strings.HasPrefix(rest, "(") {
		return nil, adatypes.NewUnsupportedConstructError(name, "malformed array", "")
	}
	rest = strings.TrimSpace(skipGroup(rest))
	if !hasLeadingWord(strings.ToLower(rest), "of") {
		return nil, adatypes.NewUnsupportedConstructError(name, "malformed array", "")
	}
	elem := stripLeadingWord(rest, "of")
	elem = stripLeadingWord(elem, "aliased")
	if hasLeadingWord(strings.ToLower(elem), "access") {
		return nil, adatypes.NewUnsupportedConstructError(name, "access type", "")
	}
	elemName, constraint := splitHeadIdent(elem)
	if elemName == "" {
		return nil, adatypes.NewUnsupportedConstructError(name, "malformed array", "")
	}
	return adatypes.Array{
		Name:     name,
		Element:  adatypes.TypeRef{Name: elemName, Constraint: constraint},
		IsString: isCharacterName(elemName),
	}, nil
}

func classifyRecord(name, body string) (adatypes.TypeDef, error) {
	inner := stripLeadingWord(body, "record")
	lowerInner := strings.ToLower(inner)
	if end := strings.LastIndex(lowerInner, "end"); end != -1 {
		inner = inner[:end]
	}
	rec := adatypes.Record{Name: name}
	for _, comp := range strings.Split(inner, ";") {
		comp = strings.TrimSpace(comp)
		if comp == "" || strings.EqualFold(comp, "null") {
			continue
		}
		if hasLeadingWord(strings.ToLower(comp), "case") {
			return nil, adatypes.NewUnsupportedConstructError(name, "variant record", "")
		}
		colon := strings.Index(comp, ":")
		if colon == -1 {
			continue
		}
		spec := strings.TrimSpace(comp[colon+1:])
		// Drop a default initializer if present.
		if assign := strings.Index(spec, ":="); assign != -1 {
			spec = strings.TrimSpace(spec[:assign])
		}
		spec = stripLeadingWord(spec, "aliased")
		if hasLeadingWord(strings.ToLower(spec), "access") {
			return nil, adatypes.NewUnsupportedConstructError(name, "access type", name+"."+strings.TrimSpace(comp[:colon]))
		}
		typeName, constraint := splitHeadIdent(spec)
		if typeName == "" {
			return nil, adatypes.NewUnsupportedConstructError(name, "anonymous type", name+"."+strings.TrimSpace(comp[:colon]))
		}
		if strings.EqualFold(typeName, "array") {
			return nil, adatypes.NewUnsupportedConstructError(name, "anonymous array", name+"."+strings.TrimSpace(comp[:colon]))
		}
		ref := adatypes.TypeRef{Name: typeName, Constraint: constraint}
		for _, fieldName := range strings.Split(comp[:colon], ",") {
			fieldName = strings.TrimSpace(fieldName)
			if fieldName == "" {
				continue
			}
			rec.Fields = append(rec.Fields, adatypes.Field{Name: fieldName, Type: ref})
		}
	}
	return rec, nil
}

// classifyDerived handles "new Base [constraint]". A derived type is
// alias-transparent for validation; type extensions are out of scope.
func classifyDerived(name, body string) (adatypes.TypeDef, error) {
	rest := stripLeadingWord(body, "new")
	base, constraint := splitHeadIdent(rest)
	if base == "" {
		return nil, adatypes.NewUnsupportedConstructError(name, "malformed derived type", "")
	}
	if strings.Contains(strings.ToLower(constraint), "with") {
		return nil, adatypes.NewUnsupportedConstructError(name, "type extension", "")
	}
	return adatypes.SubtypeAlias{
		Name:       name,
		Base:       adatypes.TypeRef{Name: base},
		Constraint: constraint,
	}, nil
}

func isCharacterName(name string) bool {
	builtin, ok := adatypes.LookupBuiltin(name)
	if !ok {
		return false
	}
	scalar, ok := builtin.(adatypes.Scalar)
	return ok && scalar.Class == adatypes.ClassCharacter
}

// splitHeadIdent splits s into its leading identifier and the trimmed
// remainder.
func splitHeadIdent(s string) (string, string) {
	s = strings.TrimSpace(s)
	end := len(s)
	for i, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			end = i
			break
		}
	}
	return s[:end], strings.TrimSpace(s[end:])
}

// hasLeadingWord reports whether s starts with the given word followed
// by a non-identifier character or end of string.
func hasLeadingWord(s, word string) bool {
	if !strings.HasPrefix(s, word) {
		return false
	}
	if len(s) == len(word) {
		return true
	}
	r := rune(s[len(word)])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
}

// stripLeadingWord removes word (case-insensitively) from the front of
// s, returning s unchanged when it does not start with that word.
func stripLeadingWord(s, word string) string {
	trimmed := strings.TrimSpace(s)
	if hasLeadingWord(strings.ToLower(trimmed), word) {
		return strings.TrimSpace(trimmed[len(word):])
	}
	return trimmed
}

// skipGroup drops a leading parenthesized group from s, tracking
// nesting, and returns what follows.
func skipGroup(s string) string {
	depth := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return s[i+1:]
			}
		}
	}
	return ""
}
