// Package semijson turns the translate endpoint's JavaScript array literals
// into JSON. Only two deviations are handled: elided array elements
// ("[1,,2]") become null, and commas directly before "]" are dropped.
package semijson

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

type state int

const (
	stateNormal state = iota
	// Just saw ',' or '['; another ',' means an elided element.
	stateComma
	stateString
	stateStringEscape
)

// sink is satisfied by both *strings.Builder and *bufio.Writer.
type sink interface {
	io.StringWriter
	io.ByteWriter
	WriteRune(r rune) (int, error)
}

// transducer is a single-pass, no-lookahead repairer. Commas are held back
// until the next character decides whether they trail a ']'.
type transducer struct {
	out    sink
	state  state
	commas int
}

func newTransducer(out sink) *transducer {
	return &transducer{out: out}
}

// feed consumes one character of input.
func (t *transducer) feed(r rune) {
	switch t.state {
	case stateNormal:
		switch r {
		case ',', '[':
			t.state = stateComma
		case '"':
			t.state = stateString
		}

	case stateComma:
		switch {
		case r == ',':
			t.emit("null")
		case r == ']':
			t.commas = 0
			t.state = stateNormal
		case r == '"':
			t.state = stateString
		case r == '[' || unicode.IsSpace(r):
		default:
			t.state = stateNormal
		}

	case stateString:
		switch r {
		case '"':
			t.state = stateNormal
		case '\\':
			t.state = stateStringEscape
		}

	case stateStringEscape:
		t.state = stateString
	}

	if r == ',' {
		t.commas++
		return
	}
	t.flushCommas()
	t.out.WriteRune(r)
}

func (t *transducer) emit(s string) {
	t.flushCommas()
	t.out.WriteString(s)
}

func (t *transducer) flushCommas() {
	for ; t.commas > 0; t.commas-- {
		t.out.WriteByte(',')
	}
}

// finish writes any commas still held back. Input that ends inside an array
// is passed through as-is.
func (t *transducer) finish() {
	t.flushCommas()
}

// Repair returns source with elided elements filled with null and trailing
// commas removed. Valid JSON is returned unchanged.
func Repair(source string) string {
	var b strings.Builder
	b.Grow(len(source) + len(source)/8)
	t := newTransducer(&b)
	for _, r := range source {
		t.feed(r)
	}
	t.finish()
	return b.String()
}

// Copy streams src through the transducer into dst.
func Copy(dst io.Writer, src io.Reader) error {
	in := bufio.NewReader(src)
	out := bufio.NewWriter(dst)
	t := newTransducer(out)
	for {
		r, _, err := in.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		t.feed(r)
	}
	t.finish()
	return out.Flush()
}

// NewReader returns a reader yielding the repaired form of src.
func NewReader(src io.Reader) io.Reader {
	pr, pw := io.Pipe()
	go func() {
		pw.CloseWithError(Copy(pw, src))
	}()
	return pr
}
