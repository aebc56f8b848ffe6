// Package font loads the font used for rendering.
//
// [Resolve]() walks an ordered list of candidate paths and returns a
// [Handle] for the first usable one. Unusable candidates are skipped
// with a [SkipReason] logged at debug level, and the built-in Go Mono
// font is used when none is left (see [Default]()), so resolution
// never fails.
package font
