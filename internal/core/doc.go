// Package core defines the collaborator interfaces shared across nodever:
// filesystem access, external command execution, and tool lookup on PATH.
// Each interface has an OS-backed implementation and an in-memory mock.
package core
