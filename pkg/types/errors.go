package types

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat      ErrKind = iota // malformed header/signature (e.g., bad "PReg")
	ErrKindCorrupt                    // truncated or structurally inconsistent record
	ErrKindUnsupported                // valid feature we don't support (yet)
	ErrKindNotFound                   // missing category/policy/reference
	ErrKindCycle                      // category parent chain loops
	ErrKindState                      // invalid operation for current state
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }
