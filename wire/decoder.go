package wire

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// maxVarintLen is the longest legal varint: 10 bytes of 7 payload
// bits covers a uint64.
const maxVarintLen = 10

// A Decoder reads protobuf wire format entries off a byte buffer.
//
// Methods advance the read cursor. The decoder keeps track of its
// absolute offset in the buffer so that errors can report where
// decoding failed.
//
// Returned byte slices alias the input buffer; they are views, not
// copies.
type Decoder struct {
	// In is the buffer being decoded.
	In []byte

	// offset is the number of bytes consumed off the front of In so
	// far.
	offset int
}

// More reports whether unconsumed bytes remain.
func (d *Decoder) More() bool {
	return d.offset < len(d.In)
}

// Read reads n bytes, with no framing.
func (d *Decoder) Read(n int) ([]byte, error) {
	if n > len(d.In)-d.offset {
		return nil, DecodeError{d.offset, ErrTruncated}
	}
	bs := d.In[d.offset : d.offset+n : d.offset+n]
	d.offset += n
	return bs, nil
}

// Varint reads one base-128 varint.
func (d *Decoder) Varint() (uint64, error) {
	start := d.offset
	var v uint64
	for i := 0; i < maxVarintLen; i++ {
		if d.offset >= len(d.In) {
			return 0, DecodeError{start, ErrMalformedVarint}
		}
		b := d.In[d.offset]
		if i == maxVarintLen-1 && b > 1 {
			// The 10th byte may only carry the top bit of a uint64.
			return 0, DecodeError{start, ErrMalformedVarint}
		}
		d.offset++
		v |= uint64(b&0x7f) << (7 * i)
		if b&0x80 == 0 {
			return v, nil
		}
	}
	return 0, DecodeError{start, ErrMalformedVarint}
}

// Tag reads one tag varint and splits it into field number and wire
// type. raw holds the exact tag bytes as they appeared, for verbatim
// re-emission.
func (d *Decoder) Tag() (num protowire.Number, typ protowire.Type, raw []byte, err error) {
	start := d.offset
	v, err := d.Varint()
	if err != nil {
		return 0, 0, nil, err
	}
	if n := v >> 3; n < uint64(protowire.MinValidNumber) || n > uint64(protowire.MaxValidNumber) {
		return 0, 0, nil, DecodeError{start, ErrUnexpectedBytes}
	}
	num, typ = protowire.Number(v>>3), protowire.Type(v&7)
	switch typ {
	case protowire.VarintType, protowire.Fixed64Type, protowire.BytesType,
		protowire.StartGroupType, protowire.EndGroupType, protowire.Fixed32Type:
	default:
		return 0, 0, nil, DecodeError{start, ErrUnknownWireType}
	}
	return num, typ, d.In[start:d.offset:d.offset], nil
}

// Entry reads one complete field entry: a tag and the value bytes
// its wire type calls for.
func (d *Decoder) Entry() (Entry, error) {
	num, typ, raw, err := d.Tag()
	if err != nil {
		return Entry{}, err
	}
	e := Entry{Num: num, Type: typ, Tag: raw}
	switch typ {
	case protowire.VarintType:
		start := d.offset
		if _, err := d.Varint(); err != nil {
			return Entry{}, err
		}
		e.Payload = d.In[start:d.offset:d.offset]
	case protowire.Fixed64Type:
		if e.Payload, err = d.Read(8); err != nil {
			return Entry{}, err
		}
	case protowire.Fixed32Type:
		if e.Payload, err = d.Read(4); err != nil {
			return Entry{}, err
		}
	case protowire.BytesType:
		start := d.offset
		n, err := d.Varint()
		if err != nil {
			return Entry{}, err
		}
		e.Len = d.In[start:d.offset:d.offset]
		if n > uint64(len(d.In)-d.offset) {
			return Entry{}, DecodeError{start, ErrTruncated}
		}
		if e.Payload, err = d.Read(int(n)); err != nil {
			return Entry{}, err
		}
	case protowire.StartGroupType, protowire.EndGroupType:
		// Zero-length markers, the tag is the whole entry.
	}
	return e, nil
}

// Message reads entries until the buffer is exhausted. An empty
// buffer is an empty message.
//
// The buffer must be consumed exactly: Message returns an error, not
// a partial result, when any entry is malformed or truncated.
func (d *Decoder) Message() ([]Entry, error) {
	var es []Entry
	for d.More() {
		e, err := d.Entry()
		if err != nil {
			return nil, err
		}
		es = append(es, e)
	}
	return es, nil
}
