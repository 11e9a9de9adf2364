// Package manifest parses the Flutter project manifest (pubspec.yaml)
// and extracts the declared asset list, filtered by extension.
package manifest
