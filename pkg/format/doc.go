// Package format renders a log Entry into the single string debuglog writes.
//
// The rendering is:
//
//	[LEVEL] [key] message
//	Data: <payload>
//
// The Data line appears only when the entry carries a payload. Maps, slices,
// arrays, structs and pointers to them are rendered as JSON indented with two
// spaces; nil renders as "null"; every other value uses its fmt string form.
// A payload that cannot be encoded (channels, funcs, cyclic references, a panicking
// MarshalJSON) falls back to "[Object: <value>]" instead of failing.
//
// The complete string is then cut to the maximum length of the configured
// LengthMode. Truncated output ends with "..." and is exactly MaxLength runes
// long. LengthWhole disables truncation.
package format
