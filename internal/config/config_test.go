package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vigil.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_ParsesSources(t *testing.T) {
	path := writeConfig(t, `
[sources]
app = "/var/log/app.log"
db = "/var/log/db.log"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(cfg.Sources) != 2 {
		t.Fatalf("len(Sources) = %d, want 2", len(cfg.Sources))
	}
	if cfg.Sources["app"] != "/var/log/app.log" {
		t.Fatalf("Sources[app] = %q, want /var/log/app.log", cfg.Sources["app"])
	}
	if got := cfg.Names(); len(got) != 2 || got[0] != "app" || got[1] != "db" {
		t.Fatalf("Names() = %v, want [app db]", got)
	}
}

func TestLoad_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
[sources]
app = "~/logs/app.log"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := filepath.Join(home, "logs", "app.log")
	if cfg.Sources["app"] != want {
		t.Fatalf("Sources[app] = %q, want %q", cfg.Sources["app"], want)
	}
}

func TestLoad_Failures(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"malformed toml", `[sources`, "parse config"},
		{"no sources table", `theme = "x"`, "no sources defined"},
		{"empty sources table", "[sources]\n", "no sources defined"},
		{"empty path", "[sources]\napp = \"  \"\n", "path is empty"},
		{"empty name", "[sources]\n\"\" = \"/var/log/app.log\"\n", "empty name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.body)
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load returned nil error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Load error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("Load of a missing file should fail")
	}
	if !strings.Contains(err.Error(), "read config") {
		t.Fatalf("Load error = %q, want read config wrap", err)
	}
}
