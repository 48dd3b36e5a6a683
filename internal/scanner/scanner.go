package scanner

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Declaration is one type or subtype declaration lifted out of the
// source text. Body is the raw text after "is", without the closing
// semicolon; record bodies are kept whole, including "end record".
type Declaration struct {
	Keyword      string // "type" or "subtype"
	Name         string
	Discriminant string // raw "( ... )" between name and "is", if present
	Body         string
	Line         int
}

// Scanner walks declaration source text rune by rune. Everything that
// is not a type/subtype declaration (package framing, with/use clauses,
// subprogram declarations) is discarded.
type Scanner struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int  // current line number
}

func New(input string) *Scanner {
	s := &Scanner{input: StripComments(input), line: 1}
	s.readChar()
	return s
}

// StripComments removes "--" end-of-line comments while preserving line
// breaks, so declaration line numbers survive for diagnostics.
func StripComments(src string) string {
	var b strings.Builder
	b.Grow(len(src))
	for _, line := range strings.SplitAfter(src, "\n") {
		if i := strings.Index(line, "--"); i != -1 {
			b.WriteString(strings.TrimRight(line[:i], " \t"))
			if strings.HasSuffix(line, "\n") {
				b.WriteByte('\n')
			}
		} else {
			b.WriteString(line)
		}
	}
	return b.String()
}

func (s *Scanner) readChar() {
	if s.ch == '\n' {
		s.line++
	}
	if s.readPosition >= len(s.input) {
		s.ch = 0
		s.position = len(s.input)
		return
	}
	r, w := utf8.DecodeRuneInString(s.input[s.readPosition:])
	s.ch = r
	s.position = s.readPosition
	s.readPosition += w
}

func (s *Scanner) skipWhitespace() {
	for s.ch == ' ' || s.ch == '\t' || s.ch == '\n' || s.ch == '\r' {
		s.readChar()
	}
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// readWord consumes an identifier or keyword. Returns "" when the
// current char cannot start one (the char is consumed regardless, so
// the scanner always makes progress).
func (s *Scanner) readWord() string {
	if !unicode.IsLetter(s.ch) {
		s.readChar()
		return ""
	}
	start := s.position
	for isIdentRune(s.ch) {
		s.readChar()
	}
	return s.input[start:s.position]
}

// readGroup consumes a parenthesized group, tracking nesting, and
// returns its text including the outer parentheses.
func (s *Scanner) readGroup() string {
	start := s.position
	depth := 0
	for s.ch != 0 {
		if s.ch == '(' {
			depth++
		} else if s.ch == ')' {
			depth--
			if depth == 0 {
				s.readChar()
				break
			}
		}
		s.readChar()
	}
	return s.input[start:s.position]
}

// readSimpleBody consumes up to the terminating semicolon, skipping
// semicolons nested in parentheses (enumeration literal lists, index
// constraints).
func (s *Scanner) readSimpleBody() string {
	start := s.position
	depth := 0
	for s.ch != 0 {
		switch s.ch {
		case '(':
			depth++
		case ')':
			depth--
		case ';':
			if depth == 0 {
				body := s.input[start:s.position]
				s.readChar()
				return body
			}
		}
		s.readChar()
	}
	return s.input[start:s.position]
}

// readRecordBody consumes a record body through its matching
// "end record", then the trailing semicolon. Variant parts close with
// "end case", which does not terminate the record.
func (s *Scanner) readRecordBody() string {
	start := s.position
	for s.ch != 0 {
		if !unicode.IsLetter(s.ch) {
			s.readChar()
			continue
		}
		word := s.readWord()
		if !strings.EqualFold(word, "end") {
			continue
		}
		s.skipWhitespace()
		after := s.readWord()
		if strings.EqualFold(after, "record") {
			body := s.input[start:s.position]
			s.skipWhitespace()
			if s.ch == ';' {
				s.readChar()
			}
			return body
		}
	}
	return s.input[start:s.position]
}

// next returns the next type/subtype declaration, or ok=false at end of
// input.
func (s *Scanner) next() (Declaration, bool) {
	for s.ch != 0 {
		s.skipWhitespace()
		if s.ch == 0 {
			break
		}
		line := s.line
		word := s.readWord()
		if !strings.EqualFold(word, "type") && !strings.EqualFold(word, "subtype") {
			continue
		}
		decl := Declaration{Keyword: strings.ToLower(word), Line: line}
		s.skipWhitespace()
		decl.Name = s.readWord()
		if decl.Name == "" {
			continue
		}
		s.skipWhitespace()
		if s.ch == '(' {
			// Discriminant part between the name and "is".
			decl.Discriminant = s.readGroup()
			s.skipWhitespace()
		}
		if !strings.EqualFold(s.readWord(), "is") {
			// Incomplete declaration ("type Foo;"); skip it.
			continue
		}
		s.skipWhitespace()
		bodyStart := s.position
		if s.ch == '(' {
			// Enumeration literal list.
			s.readGroup()
			s.readSimpleBody()
		} else {
			word = s.readWord()
			for strings.EqualFold(word, "tagged") || strings.EqualFold(word, "limited") ||
				strings.EqualFold(word, "abstract") {
				s.skipWhitespace()
				word = s.readWord()
			}
			if strings.EqualFold(word, "record") {
				s.readRecordBody()
			} else {
				s.readSimpleBody()
			}
		}
		decl.Body = strings.TrimSpace(
			strings.TrimSuffix(strings.TrimSpace(s.input[bodyStart:s.position]), ";"))
		return decl, true
	}
	return Declaration{}, false
}

// Scan splits source text into its individual type and subtype
// declarations, in source order.
func Scan(src string) []Declaration {
	s := New(src)
	var decls []Declaration
	for {
		d, ok := s.next()
		if !ok {
			return decls
		}
		decls = append(decls, d)
	}
}
