package runtime

import (
	"io"
	"strconv"
)

// intPattern matches one optionally-signed integer token.
var intPattern = MustCompile(`[+-]?[0-9]+`)

// InputData is the external data stream consumed by read statements.
// It holds the remaining unconsumed text; each ReadInt locates the next
// integer-shaped token anywhere in the buffer, parses it, and deletes
// exactly the matched span so the following read advances past it.
//
// Owned by a single execution; no locking.
type InputData struct {
	rest string
}

// NewInputData creates an input stream over the given text.
func NewInputData(data string) *InputData {
	return &InputData{rest: data}
}

// ReadInputData drains r into a new input stream.
// A nil reader yields an empty stream.
func ReadInputData(r io.Reader) (*InputData, error) {
	if r == nil {
		return &InputData{}, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return &InputData{rest: string(data)}, nil
}

// ReadInt consumes and returns the next integer token.
// Returns ok=false when no integer-shaped token remains.
// Values beyond the int64 range saturate (strconv semantics).
func (d *InputData) ReadInt() (value int64, ok bool) {
	loc := intPattern.FindStringIndex(d.rest)
	if loc == nil {
		return 0, false
	}
	// ParseInt on a sign-and-digits token only fails on range overflow,
	// in which case it returns the saturated value.
	value, _ = strconv.ParseInt(d.rest[loc[0]:loc[1]], 10, 64)
	d.rest = d.rest[:loc[0]] + d.rest[loc[1]:]
	return value, true
}

// Rest returns the remaining unconsumed text.
func (d *InputData) Rest() string {
	return d.rest
}

// Len returns the number of unconsumed bytes.
func (d *InputData) Len() int {
	return len(d.rest)
}
