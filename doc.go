// Package protosort rewrites serialized protobuf messages into a
// canonical byte form, without the message schema.
//
// Protobuf encoders are free to emit fields in any order, and
// implementations that range over maps or otherwise differ produce
// unequal bytes for semantically identical messages. [Sort] reorders
// the fields of a wire-encoded message, and of every nested payload
// that parses as a message, into ascending field number order, so
// that equal messages hash and diff equally.
//
// The schema is neither required nor consulted. The wire format does
// not say whether a length-delimited payload is a string, bytes, or
// a nested message, so the sorter attempts to decode each one: a
// payload that consumes fully as wire entries is treated as a
// message and sorted recursively, anything else is passed through
// byte-for-byte. This is a heuristic. A string whose bytes happen to
// parse as wire entries is sorted as if it were a message, an
// accepted approximation of this approach rather than a bug. Empty
// payloads, ambiguous between an empty message and an empty string,
// are always passed through.
//
// Deprecated group wire types are preserved but pessimize the sort:
// a message (or nested payload) containing group markers is not
// reordered at that nesting level, since group members are delimited
// only by entry position and reordering could change which group an
// entry belongs to.
package protosort
