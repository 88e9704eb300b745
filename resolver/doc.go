// Package resolver provides path-addressable access to nested structures.
//
// A nested structure is any combination of string-keyed mappings
// (map[string]any), sequences ([]any), and scalar values, such as produced
// by deserializing a YAML or JSON document. A path is a delimiter-separated
// string addressing a location inside such a structure:
//
//	"database.host"      -> structure["database"]["host"]
//	"servers.0.port"     -> structure["servers"][0]["port"]
//
// Segments are interpreted against the node they land on: a mapping node uses
// the segment as a key (a numeric-looking segment like "0" is still a key),
// while a sequence node requires the segment to parse as a non-negative
// integer index.
//
// There is no escaping mechanism for keys containing the delimiter character;
// callers with such keys must pick a different delimiter via WithDelimiter.
//
// Errors are sentinel values distinguishing absence (ErrNotFound) from
// container kind mismatches (ErrTypeMismatch) and malformed path strings
// (ErrInvalidPath); match them with errors.Is.
package resolver
