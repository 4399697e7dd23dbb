// Package cli implements the non-interactive commands: a one-shot send and
// the key binding report.
package cli
