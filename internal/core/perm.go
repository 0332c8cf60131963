package core

import "os"

// File permission constants used when nodever writes files.
const (
	// PermOwnerRW is read/write for the owner only.
	PermOwnerRW os.FileMode = 0o600

	// PermOwnerRWGroupR is read/write for the owner, read for group and others.
	PermOwnerRWGroupR os.FileMode = 0o644
)
