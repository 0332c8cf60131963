package nodeversion

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/indaco/nodever/internal/actions"
	"github.com/indaco/nodever/internal/core"
)

func newTestResolver(files map[string]string) (*Resolver, *actions.Recorder) {
	fs := core.NewMockFileSystem()
	for path, content := range files {
		fs.SetFile(path, []byte(content))
	}
	rec := actions.NewRecorder()
	return NewResolver(fs, rec), rec
}

func TestResolver_Resolve(t *testing.T) {
	tests := []struct {
		name      string
		files     map[string]string
		path      string
		want      string
		wantFound bool
	}{
		{
			name:      "volta node",
			files:     map[string]string{"/p/package.json": `{"volta": {"node": "18.17.0"}}`},
			path:      "/p/package.json",
			want:      "18.17.0",
			wantFound: true,
		},
		{
			name:      "volta node wins over engines",
			files:     map[string]string{"/p/package.json": `{"engines": {"node": ">=16"}, "volta": {"node": "18.17.0"}}`},
			path:      "/p/package.json",
			want:      "18.17.0",
			wantFound: true,
		},
		{
			name:      "engines node",
			files:     map[string]string{"/p/package.json": `{"engines": {"node": "^20.0.0"}}`},
			path:      "/p/package.json",
			want:      "^20.0.0",
			wantFound: true,
		},
		{
			name:      "engines wins over extends",
			files:     map[string]string{"/p/package.json": `{"engines": {"node": "20"}, "volta": {"extends": "./missing.json"}}`},
			path:      "/p/package.json",
			want:      "20",
			wantFound: true,
		},
		{
			name: "volta extends relative to referring file",
			files: map[string]string{
				"/p/apps/web/package.json": `{"volta": {"extends": "../../package.json"}}`,
				"/p/package.json":          `{"volta": {"node": "20.9.0"}}`,
			},
			path:      "/p/apps/web/package.json",
			want:      "20.9.0",
			wantFound: true,
		},
		{
			name: "volta extends chain",
			files: map[string]string{
				"/p/a.json":      `{"volta": {"extends": "./b.json"}}`,
				"/p/b.json":      `{"volta": {"extends": "./conf/c.json"}}`,
				"/p/conf/c.json": `{"engines": {"node": "18"}}`,
			},
			path:      "/p/a.json",
			want:      "18",
			wantFound: true,
		},
		{
			name:      "json without version fields is absent",
			files:     map[string]string{"/p/package.json": `{"name": "app", "version": "1.0.0"}`},
			path:      "/p/package.json",
			want:      "",
			wantFound: false,
		},
		{
			name:      "json with empty volta node is absent",
			files:     map[string]string{"/p/package.json": `{"volta": {"node": ""}}`},
			path:      "/p/package.json",
			want:      "",
			wantFound: false,
		},
		{
			name:      "plain text v prefix",
			files:     map[string]string{"/p/.nvmrc": "v18.17.0"},
			path:      "/p/.nvmrc",
			want:      "18.17.0",
			wantFound: true,
		},
		{
			name:      "plain text node prefix",
			files:     map[string]string{"/p/.node-version": "node v16.2.0\n"},
			path:      "/p/.node-version",
			want:      "16.2.0",
			wantFound: true,
		},
		{
			name:      "plain text alias",
			files:     map[string]string{"/p/.nvmrc": "lts/hydrogen\n"},
			path:      "/p/.nvmrc",
			want:      "lts/hydrogen",
			wantFound: true,
		},
		{
			name:      "bare number is plain text",
			files:     map[string]string{"/p/.nvmrc": "20\n"},
			path:      "/p/.nvmrc",
			want:      "20",
			wantFound: true,
		},
		{
			name:      "tool-versions",
			files:     map[string]string{"/p/.tool-versions": "ruby 3.2.2\nnodejs 20.9.0\n"},
			path:      "/p/.tool-versions",
			want:      "20.9.0",
			wantFound: true,
		},
		{
			name:      "mise toml",
			files:     map[string]string{"/p/mise.toml": "[tools]\nnode = \"22\"\n"},
			path:      "/p/mise.toml",
			want:      "22",
			wantFound: true,
		},
		{
			name:      "mise toml without node is absent",
			files:     map[string]string{"/p/.mise.toml": "[tools]\npython = \"3.12\"\n"},
			path:      "/p/.mise.toml",
			want:      "",
			wantFound: false,
		},
		{
			name:      "malformed mise toml falls back to text",
			files:     map[string]string{"/p/mise.toml": "v20.1.0\n"},
			path:      "/p/mise.toml",
			want:      "20.1.0",
			wantFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestResolver(tt.files)

			got, found, err := r.Resolve(context.Background(), tt.path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want || found != tt.wantFound {
				t.Errorf("Resolve(%q) = (%q, %v), want (%q, %v)", tt.path, got, found, tt.want, tt.wantFound)
			}
		})
	}
}

func TestResolver_Resolve_MissingFile(t *testing.T) {
	r, _ := newTestResolver(nil)

	_, _, err := r.Resolve(context.Background(), "/p/.nvmrc")
	if !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "/p/.nvmrc does not exist") {
		t.Errorf("error should name the path: %v", err)
	}
}

func TestResolver_Resolve_MissingExtendsTarget(t *testing.T) {
	r, _ := newTestResolver(map[string]string{
		"/p/package.json": `{"volta": {"extends": "./base.json"}}`,
	})

	_, _, err := r.Resolve(context.Background(), "/p/package.json")
	if !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
}

func TestResolver_Resolve_ExtendsCycle(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
	}{
		{
			name:  "self reference",
			files: map[string]string{"/p/a.json": `{"volta": {"extends": "./a.json"}}`},
		},
		{
			name: "mutual reference",
			files: map[string]string{
				"/p/a.json":     `{"volta": {"extends": "./sub/b.json"}}`,
				"/p/sub/b.json": `{"volta": {"extends": "../a.json"}}`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestResolver(tt.files)
			_, _, err := r.Resolve(context.Background(), "/p/a.json")
			if !errors.Is(err, ErrExtendsCycle) {
				t.Errorf("expected ErrExtendsCycle, got %v", err)
			}
		})
	}
}

func TestResolver_Resolve_Logging(t *testing.T) {
	r, rec := newTestResolver(map[string]string{
		"/p/package.json":  `{"volta": {"extends": "./base.json"}}`,
		"/p/base.json":     `{"volta": {"node": "20"}}`,
		"/p/.nvmrc":        "lts/iron",
		"/p/.node-version": "20",
	})

	if _, _, err := r.Resolve(context.Background(), "/p/package.json"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := r.Resolve(context.Background(), "/p/.nvmrc"); err != nil {
		t.Fatal(err)
	}
	// "20" parses as a JSON number: plain text, but not logged as non-JSON.
	if _, _, err := r.Resolve(context.Background(), "/p/.node-version"); err != nil {
		t.Fatal(err)
	}

	want := []string{
		"Resolving node version from " + filepath.Join("/p", "base.json"),
		"Node version file is not JSON file",
	}
	if got := rec.Messages(actions.LevelInfo); !slices.Equal(got, want) {
		t.Errorf("info messages = %q, want %q", got, want)
	}
}

func TestResolver_Resolve_ReadError(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/p/.nvmrc", []byte("20"))
	fs.ReadFileErr = os.ErrPermission

	_, _, err := NewResolver(fs, actions.NewRecorder()).Resolve(context.Background(), "/p/.nvmrc")
	if !errors.Is(err, os.ErrPermission) {
		t.Errorf("expected permission error, got %v", err)
	}
}

func TestResolver_Resolve_RealFilesystem(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "packages", "api"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "package.json"), `{"volta": {"node": "20.11.1"}}`)
	writeFile(t, filepath.Join(dir, "packages", "api", "package.json"), `{"volta": {"extends": "../../package.json"}}`)

	r := NewResolver(core.NewOSFileSystem(), actions.NewRecorder())
	got, found, err := r.Resolve(context.Background(), filepath.Join(dir, "packages", "api", "package.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found || got != "20.11.1" {
		t.Errorf("Resolve = (%q, %v), want (%q, true)", got, found, "20.11.1")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
