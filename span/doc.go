// Package span implements ordered sequences of symbol strings between two
// endpoints over an alphabet map.
//
// A Range validates its endpoints against the map, converts each endpoint
// to a variable-length positional Counter in base cardinality, and
// enumerates by repeated increment: the counter's digit count grows by one
// whenever the most significant digit overflows, so single-symbol strings
// are enumerated before two-symbol strings and so on, mirroring how natural
// numbers grow digit count. Over the lowercase alphabet the successor of
// "zz" is therefore "aaa".
//
// Range.Count computes the total number of elements in closed form without
// enumerating, and agrees exactly with exhausting Range.All.
package span
