// Package config provides configuration structures and utilities for assetscan.
// It defines the recognized asset extensions, ignore patterns, compression
// quality, and the run-mode flags that control preview, report, and optimize
// behavior.
package config
