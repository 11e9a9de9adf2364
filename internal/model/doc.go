// Package model defines the data structures shared across assetscan.
// It contains the scan report aggregate, size accounting helpers, and
// the set arithmetic that turns declared assets into unused assets.
package model
