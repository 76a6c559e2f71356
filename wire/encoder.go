package wire

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// An Encoder reassembles wire format entries into a byte buffer.
//
// Entries carrying their raw tag and length prefix bytes are
// re-emitted verbatim, so an encode of an unmodified decode is
// byte-identical to the original input.
type Encoder struct {
	// Out is the encoded output.
	Out []byte
}

// Write writes bs as-is to the output.
func (e *Encoder) Write(bs []byte) {
	e.Out = append(e.Out, bs...)
}

// Varint writes v as a minimal base-128 varint.
func (e *Encoder) Varint(v uint64) {
	e.Out = protowire.AppendVarint(e.Out, v)
}

// Tag writes a field tag. raw, when non-nil, is emitted verbatim;
// otherwise a minimal tag varint is computed from num and typ.
func (e *Encoder) Tag(num protowire.Number, typ protowire.Type, raw []byte) error {
	if raw != nil {
		e.Write(raw)
		return nil
	}
	if num < protowire.MinValidNumber || num > protowire.MaxValidNumber {
		return ErrFieldNumber
	}
	e.Out = protowire.AppendTag(e.Out, num, typ)
	return nil
}

// Entry writes one field entry.
func (e *Encoder) Entry(ent Entry) error {
	if err := e.Tag(ent.Num, ent.Type, ent.Tag); err != nil {
		return err
	}
	switch ent.Type {
	case protowire.BytesType:
		if v, n := protowire.ConsumeVarint(ent.Len); n == len(ent.Len) && v == uint64(len(ent.Payload)) {
			e.Write(ent.Len)
		} else {
			e.Varint(uint64(len(ent.Payload)))
		}
		e.Write(ent.Payload)
	case protowire.StartGroupType, protowire.EndGroupType:
		// Tag only.
	default:
		e.Write(ent.Payload)
	}
	return nil
}

// Message writes entries in order.
func (e *Encoder) Message(es []Entry) error {
	for _, ent := range es {
		if err := e.Entry(ent); err != nil {
			return err
		}
	}
	return nil
}
