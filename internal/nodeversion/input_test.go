package nodeversion

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"github.com/indaco/nodever/internal/actions"
)

func TestResolver_ResolveInput(t *testing.T) {
	files := map[string]string{"/ws/.nvmrc": "v20.9.0\n"}

	tests := []struct {
		name        string
		in          Input
		want        string
		wantFound   bool
		wantWarning bool
	}{
		{
			name:      "explicit version",
			in:        Input{Version: " 18 "},
			want:      "18",
			wantFound: true,
		},
		{
			name:        "version wins over file",
			in:          Input{Version: "18", VersionFile: ".nvmrc", Workspace: "/ws"},
			want:        "18",
			wantFound:   true,
			wantWarning: true,
		},
		{
			name:      "relative file joined to workspace",
			in:        Input{VersionFile: ".nvmrc", Workspace: "/ws"},
			want:      "20.9.0",
			wantFound: true,
		},
		{
			name:      "absolute file ignores workspace",
			in:        Input{VersionFile: "/ws/.nvmrc", Workspace: "/elsewhere"},
			want:      "20.9.0",
			wantFound: true,
		},
		{
			name:      "nothing set",
			in:        Input{Workspace: "/ws"},
			want:      "",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, rec := newTestResolver(files)

			got, found, err := r.ResolveInput(context.Background(), tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want || found != tt.wantFound {
				t.Errorf("ResolveInput() = (%q, %v), want (%q, %v)", got, found, tt.want, tt.wantFound)
			}
			if warned := len(rec.Messages(actions.LevelWarning)) > 0; warned != tt.wantWarning {
				t.Errorf("warning logged = %v, want %v", warned, tt.wantWarning)
			}
		})
	}
}

func TestResolver_ResolveInput_MissingFile(t *testing.T) {
	r, _ := newTestResolver(nil)

	_, _, err := r.ResolveInput(context.Background(), Input{VersionFile: ".nvmrc", Workspace: "/ws"})
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}
}

func TestResolver_ResolveInput_LogsResult(t *testing.T) {
	r, rec := newTestResolver(map[string]string{
		"/ws/package.json": `{"volta":{"extends":"./base.json"}}`,
		"/ws/base.json":    `{"volta":{"node":"20.9.0"}}`,
	})

	if _, _, err := r.ResolveInput(context.Background(), Input{VersionFile: "package.json", Workspace: "/ws"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"Resolving node version from " + filepath.Join("/ws", "base.json"),
		"Resolved " + filepath.Join("/ws", "package.json") + " as 20.9.0",
	}
	if got := rec.Messages(actions.LevelInfo); !slices.Equal(got, want) {
		t.Errorf("info messages = %q, want %q", got, want)
	}
}

func TestResolver_ResolveInput_NoResultNotLogged(t *testing.T) {
	r, rec := newTestResolver(map[string]string{"/ws/package.json": `{"name":"app"}`})

	_, found, err := r.ResolveInput(context.Background(), Input{VersionFile: "package.json", Workspace: "/ws"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatal("expected no version")
	}
	if got := rec.Messages(actions.LevelInfo); len(got) != 0 {
		t.Errorf("info messages = %q, want none", got)
	}
}
