package generator

import (
	"bytes"
	"fmt"
)

// --- Code Printer (output is Ada source text) ---

// printer accumulates generated Ada lines with three-space indentation.
type printer struct {
	buf    bytes.Buffer
	indent int
}

func newPrinter() *printer {
	return &printer{}
}

func (p *printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("   ")
	}
}

// line writes one indented line.
func (p *printer) line(format string, args ...interface{}) {
	p.writeIndent()
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

// raw writes one line at column zero, ignoring the indent level.
func (p *printer) raw(format string, args ...interface{}) {
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

func (p *printer) String() string {
	return p.buf.String()
}
