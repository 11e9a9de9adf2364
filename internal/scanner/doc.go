// Package scanner detects asset references in Dart source code.
//
// Detection is purely lexical: a fixed set of regular expressions is
// applied to each source file and quoted literal paths are collected into
// a reference set. Paths built programmatically (string concatenation,
// interpolation, variables) are invisible to the scanner. This is a
// documented limitation of the approach, not a bug; such assets will be
// reported as unused.
package scanner
