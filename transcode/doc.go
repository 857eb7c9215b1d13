// Package transcode implements the JSONC to JSON conversion engine.
//
// JSONC is JSON extended with `//` line comments, `/* */` block comments,
// and trailing commas before a closing `]` or `}`. The engine removes
// exactly those constructs and copies everything else through unchanged,
// so the output is byte-for-byte faithful to the input's literals,
// structure, and whitespace.
//
// # Design
//
// The engine is a single-pass byte scanner with one bounded lookahead: on
// seeing a comma in normal mode it peeks past whitespace and comments to
// decide whether the comma precedes a closing bracket (trailing, dropped)
// or a value (legal separator, kept). The lookahead never re-scans emitted
// output. There is no tokenizer and no syntax tree; the only state is the
// lexical mode and the cursor.
//
// The engine does not validate JSON grammar beyond what comment and string
// tracking requires. Inputs like `{,}` or malformed numbers pass through
// verbatim and surface only when a downstream JSON parser rejects them.
//
// # Concurrency
//
// Bytes and String are pure functions: all scan state is per call, so they
// are safe to call concurrently from multiple goroutines.
//
// Most users should use the root jsonc package, which re-exports this API
// under the Convert names.
package transcode
