package core

import (
	"fmt"
	"strings"
)

// Verb is the HTTP method a Request is sent with.
type Verb int

// Verb constants. Only VerbGet and VerbPost are dispatched; the others exist
// so descriptors can name them and be rejected with ErrorTypeUnsupportedVerb.
const (
	VerbGet Verb = iota
	VerbPost
	VerbPut
	VerbDelete
	VerbHead
	VerbOptions
	VerbTrace
)

var verbNames = [...]string{
	"GET",
	"POST",
	"PUT",
	"DELETE",
	"HEAD",
	"OPTIONS",
	"TRACE",
}

// String returns the wire name of the verb ("GET", "POST", ...).
func (v Verb) String() string {
	if v < 0 || int(v) >= len(verbNames) {
		return fmt.Sprintf("Verb(%d)", int(v))
	}
	return verbNames[v]
}

// Dispatchable reports whether the dispatcher knows how to send this verb.
func (v Verb) Dispatchable() bool {
	return v == VerbGet || v == VerbPost
}

// ParseVerb maps a method name, in any case, to its Verb.
func ParseVerb(name string) (Verb, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range verbNames {
		if n == upper {
			return Verb(i), nil
		}
	}
	return 0, fmt.Errorf("unknown http verb %q", name)
}
