// Package wire provides low-level encoding and decoding helpers to
// parse and reassemble protobuf wire format messages without their
// schema.
//
// The provided decoder and encoder are very low level, and only
// understand the self-describing parts of the wire format: the field
// number and wire type carried by each tag. They attach no meaning to
// payloads. It is the caller's responsibility to decide what a
// length-delimited payload contains.
package wire
