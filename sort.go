package protosort

import (
	"cmp"
	"slices"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/danderson/protosort/wire"
)

// Sort returns the canonical form of the wire-encoded message msg:
// top-level fields, and the fields of every nested payload that
// parses as a message, sorted by ascending field number. Entries
// that share a field number keep their relative input order, so
// repeated and unknown field semantics are preserved.
//
// When msg is already canonical, Sort returns msg itself rather than
// a copy. Otherwise the output is freshly allocated, and always the
// same length as the input: canonicalization only permutes bytes.
//
// Sort fails, with a [wire.DecodeError], only when msg itself is not
// valid wire format. A nested payload that does not decode is
// expected (it may be a string or bytes field) and is passed through
// untouched.
func Sort(msg []byte) ([]byte, error) {
	dec := wire.Decoder{In: msg}
	es, err := dec.Message()
	if err != nil {
		return nil, err
	}
	if !canonicalize(es) {
		return msg, nil
	}
	enc := wire.Encoder{Out: make([]byte, 0, len(msg))}
	if err := enc.Message(es); err != nil {
		return nil, err
	}
	return enc.Out, nil
}

// SortInPlace is [Sort] writing its result back into msg.
func SortInPlace(msg []byte) error {
	out, err := Sort(msg)
	if err != nil {
		return err
	}
	copy(msg, out)
	return nil
}

// IsSorted reports whether msg is already in canonical form, that
// is, whether [Sort] would return it unchanged.
func IsSorted(msg []byte) (bool, error) {
	dec := wire.Decoder{In: msg}
	es, err := dec.Message()
	if err != nil {
		return false, err
	}
	return !canonicalize(es), nil
}

// canonicalize rewrites nested message payloads to their canonical
// form and stable-sorts es by field number. It reports whether
// anything changed.
func canonicalize(es []wire.Entry) bool {
	changed := false
	groups := false
	for i := range es {
		switch es[i].Type {
		case protowire.StartGroupType, protowire.EndGroupType:
			groups = true
		case protowire.BytesType:
			if sub := sortPayload(es[i].Payload); sub != nil {
				es[i].Payload = sub
				changed = true
			}
		}
	}
	if groups {
		// Group members are delimited only by position, so
		// reordering this level could move an entry across a group
		// boundary. Leave the order alone.
		return changed
	}
	if !slices.IsSortedFunc(es, byNum) {
		slices.SortStableFunc(es, byNum)
		changed = true
	}
	return changed
}

// sortPayload canonicalizes a length-delimited payload as a nested
// message. It returns nil when the payload is opaque (it does not
// decode, or is empty and therefore ambiguous with an empty string)
// or already canonical.
func sortPayload(payload []byte) []byte {
	dec := wire.Decoder{In: payload}
	es, err := dec.Message()
	if err != nil || len(es) == 0 {
		return nil
	}
	if !canonicalize(es) {
		return nil
	}
	enc := wire.Encoder{Out: make([]byte, 0, len(payload))}
	if err := enc.Message(es); err != nil {
		return nil
	}
	return enc.Out
}

func byNum(a, b wire.Entry) int {
	return cmp.Compare(a.Num, b.Num)
}
