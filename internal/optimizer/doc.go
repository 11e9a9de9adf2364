// Package optimizer performs the destructive half of assetscan: deleting
// unused asset files and recompressing PNG/JPEG assets in place.
//
// Recompression never grows a file: the re-encoded bytes replace the
// original only when they are strictly smaller, which also makes repeated
// runs safe (savings trend to zero).
package optimizer
