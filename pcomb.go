package pcomb

import "fmt"

// Span denotes a half-open run of input, [From, To). No parser in this
// module produces one; it is available to callers that want to report
// which part of the input a parser matched.
type Span [2]uint64

// From returns the start offset of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end offset of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of the span.
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// ErrorKind classifies a fatal usage error. Usage errors are
// programming errors, not match failures, and abort the entire parse.
type ErrorKind int8

const (
	// StatePrecondition is raised when Recall reads an unbound key.
	StatePrecondition ErrorKind = iota
	// TokenUnregistered is raised when a token primitive is built
	// against a parser that is not one of a token set's bases.
	TokenUnregistered
	// TokenEmptySet is raised when a token set has no base parsers.
	TokenEmptySet
	// EffectLeak names the case of a child parser that returns false
	// but leaves side effects in the journal. No parser in this module
	// checks for that case, so nothing raises this kind.
	EffectLeak
)

func (k ErrorKind) String() string {
	switch k {
	case StatePrecondition:
		return "state-precondition"
	case TokenUnregistered:
		return "token-unregistered"
	case TokenEmptySet:
		return "token-empty-set"
	case EffectLeak:
		return "effect-leak"
	default:
		return "unknown"
	}
}

// UsageError is the fatal, non-recoverable class of error. It is never
// returned by Parser.Parse (which reports failure via a plain bool) —
// it is panicked, and is meant to be recovered by a driver, not a
// parser.
type UsageError struct {
	Kind ErrorKind
	Msg  string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("pcomb: usage error [%s]: %s", e.Kind, e.Msg)
}

// Fail raises a UsageError. Parsers never call this for ordinary match
// failure — only for this fatal, flat taxonomy of kinds.
func Fail(kind ErrorKind, format string, args ...interface{}) {
	panic(&UsageError{Kind: kind, Msg: fmt.Sprintf(format, args...)})
}
