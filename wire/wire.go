package wire

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// An Entry is one decoded field occurrence: a tag plus the exact
// bytes of its value.
type Entry struct {
	// Num is the field number carried by the tag.
	Num protowire.Number
	// Type is the wire type carried by the tag.
	Type protowire.Type
	// Tag is the exact tag bytes as they appeared in the input. When
	// nil, the encoder computes a minimal tag from Num and Type.
	Tag []byte
	// Len is the exact length prefix bytes of a length-delimited
	// entry as they appeared in the input, nil otherwise. The encoder
	// re-emits it verbatim while it still describes len(Payload), and
	// recomputes it when it does not.
	Len []byte
	// Payload is the exact value bytes. For varint entries it is the
	// raw varint, for fixed32/fixed64 the 4 or 8 value bytes, for
	// length-delimited entries the bytes after the length prefix.
	// Group markers have no payload.
	Payload []byte
}

// Decode failure kinds. Errors returned by [Decoder] match these with
// [errors.Is].
var (
	// ErrMalformedVarint indicates a varint that does not terminate
	// within 10 bytes, or a buffer that ends mid-varint.
	ErrMalformedVarint = errors.New("malformed varint")
	// ErrTruncated indicates a fixed-width or length-delimited value
	// extending past the end of the buffer.
	ErrTruncated = errors.New("truncated field")
	// ErrUnknownWireType indicates a tag whose wire type bits are not
	// one of the six defined values.
	ErrUnknownWireType = errors.New("unknown wire type")
	// ErrUnexpectedBytes indicates bytes that cannot start a valid
	// entry, such as a tag with a field number outside the legal
	// range.
	ErrUnexpectedBytes = errors.New("unexpected bytes")
)

// ErrFieldNumber is returned by [Encoder] for a hand-built entry
// whose field number is outside the legal 29-bit range. Entries
// produced by [Decoder] never trip it.
var ErrFieldNumber = errors.New("field number out of range")

// DecodeError is the error returned when a buffer is not valid wire
// format.
type DecodeError struct {
	// Off is the byte offset at which decoding failed.
	Off int
	// Err is the failure kind, one of the Err sentinels above.
	Err error
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("%v at offset %d", e.Err, e.Off)
}

func (e DecodeError) Unwrap() error {
	return e.Err
}
