package preg

import "github.com/joshuapare/gpokit/pkg/types"

// Sentinels commonly returned by the codec.
var (
	// ErrInvalidHeader indicates the file lacks the 4-byte "PReg" magic.
	ErrInvalidHeader = &types.Error{Kind: types.ErrKindFormat, Msg: "preg: invalid header (bad PReg magic)"}

	// ErrTruncatedRecord indicates the stream ended inside a record.
	ErrTruncatedRecord = &types.Error{Kind: types.ErrKindCorrupt, Msg: "preg: truncated record"}

	// ErrMalformedRecord indicates record framing with the wrong bracket or
	// separator code unit where one was required.
	ErrMalformedRecord = &types.Error{Kind: types.ErrKindCorrupt, Msg: "preg: malformed record framing"}
)
