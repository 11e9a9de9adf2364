// Package main provides the entry point for the assetscan CLI.
//
// assetscan audits a Flutter project's declared assets: it detects which
// assets are never referenced from Dart source, reports the wasted bytes,
// and can delete unused assets and recompress PNG/JPEG assets in place.
//
// Usage:
//
//	assetscan scan [project-dir]
//	assetscan scan --optimize --confirm [project-dir]
//
// See --help for all available options.
package main

// main is the entry point for assetscan.
func main() {
	Execute()
}
