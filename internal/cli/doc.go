// Package cli implements the command-line interface for kenpom.
//
// The cli package provides the Cobra-based CLI that fetches the current
// kenpom.com ratings, optionally through a time-boxed local cache, and prints
// them as text or JSON with sorting and conference/top-N filtering. It
// coordinates the kenpom, cache, and config packages.
package cli
