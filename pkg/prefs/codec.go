package prefs

import (
	"encoding/json"
	"io"
	"strings"
)

// encodeComposite serializes a composite value (slice, array or string-keyed
// map) to its JSON storage form.
func encodeComposite(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// tryDecode attempts to parse s as JSON. On success it returns the decoded
// structure with integral numbers restored as int64; on failure it returns
// s unchanged and ok=false. Malformed input is never an error here: the read
// and publish paths fall back to the literal string.
//
// Decoding is attempted unconditionally, so a plain string that happens to
// be valid JSON (the literal "42", "true", or a quoted word) comes back as
// the decoded value rather than the string that was stored. Callers that
// need literal fidelity for such strings must wrap them themselves.
func tryDecode(s string) (any, bool) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return s, false
	}
	// Trailing content after the first JSON value means s was not a
	// serialized composite; treat it as a literal string.
	if _, err := dec.Token(); err != io.EOF {
		return s, false
	}

	return restoreNumbers(v), true
}

// restoreNumbers walks a decoded structure converting json.Number to int64
// where the value is integral and float64 otherwise, so a round-trip of a
// written int comes back as an int64 like a scalar read would.
func restoreNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case []any:
		for i := range t {
			t[i] = restoreNumbers(t[i])
		}
		return t
	case map[string]any:
		for k := range t {
			t[k] = restoreNumbers(t[k])
		}
		return t
	default:
		return v
	}
}
