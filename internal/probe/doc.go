// Package probe asks locally installed tools for their version.
//
// Probing is best effort: every failure (tool missing, non-zero exit,
// timeout, launch error) degrades to an empty version plus a log entry on
// the configured actions.Logger. Timeouts cancel the command's context,
// which kills the child process.
package probe
