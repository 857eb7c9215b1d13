// Package jsonc converts JSONC text into standards-compliant JSON text.
//
// JSONC is the JSON dialect used by editor and tool configuration files:
// JSON extended with `//` line comments, `/* */` block comments, and
// trailing commas before a closing `]` or `}`. The conversion removes
// exactly those constructs and nothing else, so the output reproduces every
// literal, structural character, and whitespace run of the input in the
// original order.
//
// # Core Features
//
//   - Single-pass byte scanner; no tokenizer, no syntax tree
//   - String literals are never mistaken for syntax: `//`, `/*`, and `,`
//     inside strings are preserved, including across `\"` and `\uXXXX` escapes
//   - Trailing commas are detected across intervening whitespace and comments
//   - Line comments preserve the trailing newline, keeping line numbers stable
//   - Structured errors with byte offset and line/column
//   - Pure functions, safe for concurrent use
//
// # Basic Usage
//
//	import "github.com/arloliu/jsonc"
//
//	out, err := jsonc.Convert(`{
//	    "name": "sato", // display name
//	    "age": 20,
//	}`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// out is valid JSON: pass it to encoding/json as usual.
//	var cfg Config
//	err = json.Unmarshal([]byte(out), &cfg)
//
// Failures report what broke and where:
//
//	_, err := jsonc.Convert(`{"a": "b`)
//	var syntaxErr *transcode.SyntaxError
//	if errors.As(err, &syntaxErr) {
//	    fmt.Println(syntaxErr.Line, syntaxErr.Column) // 1 9
//	}
//	errors.Is(err, transcode.ErrUnterminatedString) // true
//
// # Package Structure
//
// This package provides thin wrappers around the transcode package, which
// implements the conversion engine. Use transcode directly if you prefer
// the engine-level names.
package jsonc

import (
	"github.com/arloliu/jsonc/transcode"
)

// Convert converts JSONC input into standards-compliant JSON.
//
// On success the returned text is valid JSON whenever the input is valid
// JSONC: comments and trailing commas are removed, everything else is
// unchanged. Input that is already plain JSON is returned exactly as given.
//
// Parameters:
//   - input: JSONC text (UTF-8)
//
// Returns:
//   - string: the converted JSON text.
//   - error: a *transcode.SyntaxError wrapping one of the transcode
//     sentinel kinds; on error the returned string is empty.
func Convert(input string) (string, error) {
	return transcode.String(input)
}

// ConvertBytes converts JSONC input into standards-compliant JSON.
//
// It is the []byte-typed equivalent of Convert. The input slice is never
// modified and the returned slice is newly allocated.
func ConvertBytes(input []byte) ([]byte, error) {
	return transcode.Bytes(input)
}
