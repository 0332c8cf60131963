package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/indaco/nodever/internal/core"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), core.PermOwnerRWGroupR); err != nil {
		t.Fatal(err)
	}
}
