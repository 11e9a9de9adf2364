// Package pipeline orchestrates the sequential steps of an assetscan run:
// manifest parsing, reference scanning, size accounting, and the optional
// delete and compress steps. Steps execute strictly in order on a shared
// ScanReport; there is no concurrency within a run.
package pipeline
