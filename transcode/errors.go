package transcode

import (
	"errors"
	"fmt"
)

// Sentinel error kinds reported by the transcoder. They are always wrapped
// in a *SyntaxError; match them with errors.Is.
var (
	// ErrUnterminatedString is reported when the input ends inside a string literal.
	ErrUnterminatedString = errors.New("unterminated string literal")

	// ErrUnterminatedComment is reported when the input ends inside a block comment.
	ErrUnterminatedComment = errors.New("unterminated block comment")

	// ErrInvalidEscape is reported when a \u escape is not followed by four hex digits.
	ErrInvalidEscape = errors.New("invalid unicode escape sequence")

	// ErrUnexpectedEOF is reported when the input ends after a comma with only
	// whitespace and comments following it.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
)

// SyntaxError describes where a conversion failed.
//
// Offset is the byte offset into the input at which the failure was
// detected; for unterminated constructs this is the end of the input.
// Line and Column are 1-based; Column counts Unicode code points, not
// bytes, so positions stay meaningful in multi-byte text.
type SyntaxError struct {
	Err    error
	Offset int
	Line   int
	Column int
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("jsonc: %v at offset %d (line %d, column %d)", e.Err, e.Offset, e.Line, e.Column)
}

// Unwrap returns the sentinel error kind, enabling errors.Is dispatch.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// position derives the 1-based line and column for a byte offset into src.
// It is only called on the error path, so the scan itself carries no
// line/column bookkeeping.
func position(src []byte, offset int) (line, column int) {
	line, column = 1, 1
	if offset > len(src) {
		offset = len(src)
	}

	for i := 0; i < offset; i++ {
		switch {
		case src[i] == '\n':
			line++
			column = 1
		case src[i]&0xC0 != 0x80:
			// UTF-8 continuation bytes do not advance the column.
			column++
		}
	}

	return line, column
}
