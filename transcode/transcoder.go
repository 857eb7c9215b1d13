package transcode

import (
	"github.com/arloliu/jsonc/internal/pool"
)

// transcoder holds the per-call scan state. It is created fresh for every
// conversion and never shared, so concurrent conversions are safe.
//
// The lexical mode (normal, in-string, in-line-comment, in-block-comment)
// is not stored as a field: each non-normal mode is consumed to completion
// by a single sub-scan (scanString, scanComment), so the active mode is
// always encoded in the call position.
type transcoder struct {
	src []byte
	pos int
	out *pool.ByteBuffer
}

// Bytes converts JSONC source into standards-compliant JSON.
//
// The input is scanned left to right in a single pass: line comments, block
// comments, and trailing commas are removed; everything else (string
// literals, numbers, structural characters, whitespace) is copied to the
// output byte for byte. The input slice is never modified.
//
// Comment-like and comma-like sequences inside string literals are ordinary
// string content and are always preserved, including across escapes such as
// `\"` and `\uXXXX`.
//
// Parameters:
//   - src: JSONC text (UTF-8)
//
// Returns:
//   - []byte: the converted JSON text, newly allocated and owned by the caller
//   - error: a *SyntaxError if the input ends inside a string, inside a block
//     comment, inside a malformed \u escape, or after a dangling comma
//
// On error the output is nil; the engine never returns partial output.
func Bytes(src []byte) ([]byte, error) {
	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)

	t := transcoder{src: src, out: buf}
	if err := t.run(); err != nil {
		return nil, err
	}

	// Copy out of the pooled buffer so ownership transfers to the caller.
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// String converts JSONC source into standards-compliant JSON.
//
// It is the string-typed equivalent of Bytes; see Bytes for the full
// conversion contract.
func String(src string) (string, error) {
	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)

	t := transcoder{src: []byte(src), out: buf}
	if err := t.run(); err != nil {
		return "", err
	}

	return string(buf.Bytes()), nil
}

// run is the normal-mode scan loop. Every JSONC syntax character is ASCII,
// so the scan is byte-wise: UTF-8 continuation bytes can never alias a
// syntax byte and multi-byte content passes through untouched.
func (t *transcoder) run() error {
	for t.pos < len(t.src) {
		switch t.src[t.pos] {
		case '"':
			if err := t.scanString(); err != nil {
				return err
			}
		case '/':
			if err := t.scanComment(); err != nil {
				return err
			}
		case ',':
			if err := t.resolveComma(); err != nil {
				return err
			}
		default:
			t.out.MustWriteByte(t.src[t.pos])
			t.pos++
		}
	}

	return nil
}

// scanString copies a string literal to the output, opening quote through
// closing quote. While inside the literal nothing is interpreted as comment or
// comma syntax; only an unescaped `"` terminates the literal.
func (t *transcoder) scanString() error {
	t.out.MustWriteByte('"')
	t.pos++

	for t.pos < len(t.src) {
		switch c := t.src[t.pos]; c {
		case '"':
			t.out.MustWriteByte(c)
			t.pos++

			return nil
		case '\\':
			if err := t.scanEscape(); err != nil {
				return err
			}
		default:
			t.out.MustWriteByte(c)
			t.pos++
		}
	}

	return t.syntaxError(ErrUnterminatedString, len(t.src))
}

// scanEscape copies an escape sequence verbatim. The escaped character is
// passed through without interpretation, so `\"` never terminates the
// string and `\\` never arms a second escape. For `\u` the following four
// characters must be hex digits and are copied without re-entering escape
// handling.
func (t *transcoder) scanEscape() error {
	t.out.MustWriteByte('\\')
	t.pos++

	if t.pos >= len(t.src) {
		return t.syntaxError(ErrUnterminatedString, len(t.src))
	}

	c := t.src[t.pos]
	t.out.MustWriteByte(c)
	t.pos++

	if c != 'u' {
		return nil
	}

	for i := 0; i < 4; i++ {
		if t.pos >= len(t.src) || !isHexDigit(t.src[t.pos]) {
			return t.syntaxError(ErrInvalidEscape, t.pos)
		}
		t.out.MustWriteByte(t.src[t.pos])
		t.pos++
	}

	return nil
}

// scanComment handles a `/` seen in normal mode. `//` drops everything up to
// (but not including) the next newline, so line structure is preserved.
// `/*` drops everything through the closing `*/`. A lone `/` is not comment
// syntax and passes through verbatim; whether it is valid JSON is the
// downstream parser's concern.
func (t *transcoder) scanComment() error {
	if t.pos+1 >= len(t.src) {
		t.out.MustWriteByte('/')
		t.pos++

		return nil
	}

	switch t.src[t.pos+1] {
	case '/':
		t.pos += 2
		for t.pos < len(t.src) && t.src[t.pos] != '\n' {
			t.pos++
		}
		// The newline, if any, is emitted by the normal-mode loop.
		// A line comment may legally end the input.
		return nil
	case '*':
		t.pos += 2
		for t.pos+1 < len(t.src) {
			if t.src[t.pos] == '*' && t.src[t.pos+1] == '/' {
				t.pos += 2

				return nil
			}
			t.pos++
		}

		return t.syntaxError(ErrUnterminatedComment, len(t.src))
	default:
		t.out.MustWriteByte('/')
		t.pos++

		return nil
	}
}

// resolveComma decides whether the comma at the cursor is a legal JSON
// separator or a JSONC trailing comma.
//
// It looks ahead over whitespace and comments without emitting anything.
// If the next non-trivial character is `}` or `]` the comma is trailing:
// the comma and the skipped trivia are dropped and the cursor commits at
// the closing character. Otherwise the comma is emitted and the cursor
// advances past it only, so the normal-mode loop re-processes the trivia and
// still strips any comments inside it.
func (t *transcoder) resolveComma() error {
	j := t.pos + 1

	for {
		for j < len(t.src) && isSpace(t.src[j]) {
			j++
		}
		if j >= len(t.src) {
			return t.syntaxError(ErrUnexpectedEOF, len(t.src))
		}

		if c := t.src[j]; c == '/' && j+1 < len(t.src) {
			switch t.src[j+1] {
			case '/':
				j += 2
				for j < len(t.src) && t.src[j] != '\n' {
					j++
				}

				continue
			case '*':
				j += 2
				for {
					if j+1 >= len(t.src) {
						return t.syntaxError(ErrUnterminatedComment, len(t.src))
					}
					if t.src[j] == '*' && t.src[j+1] == '/' {
						j += 2

						break
					}
					j++
				}

				continue
			}
		}

		break
	}

	if c := t.src[j]; c == '}' || c == ']' {
		// Trailing comma: drop it along with the skipped trivia and resume
		// scanning at the closing character.
		t.pos = j

		return nil
	}

	t.out.MustWriteByte(',')
	t.pos++

	return nil
}

func (t *transcoder) syntaxError(kind error, offset int) error {
	line, column := position(t.src, offset)

	return &SyntaxError{
		Err:    kind,
		Offset: offset,
		Line:   line,
		Column: column,
	}
}

// isSpace reports whether c is JSON insignificant whitespace (RFC 8259 §2).
func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
