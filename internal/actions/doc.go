// Package actions provides the diagnostics sink used by nodever: grouped log
// lines, info/warning/error messages, and named outputs for downstream steps.
//
// Workflow speaks the GitHub Actions workflow-command protocol, Console renders
// styled lines for a local terminal, and Recorder keeps entries in memory for
// tests.
package actions
