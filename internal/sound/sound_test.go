package sound

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecodeErrors(t *testing.T) {
	dir := t.TempDir()
	flac := filepath.Join(dir, "song.flac")
	if err := os.WriteFile(flac, []byte("not audio"), 0o644); err != nil {
		t.Fatal(err)
	}
	garbage := filepath.Join(dir, "broken.ogg")
	if err := os.WriteFile(garbage, []byte("not audio"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		path     string
		contains string
		notExist bool
	}{
		{"missing file", filepath.Join(dir, "nope.mp3"), "read sound", true},
		{"unsupported extension", flac, `unsupported format ".flac"`, false},
		{"corrupt ogg", garbage, "decode sound", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := decode(tt.path)
			if err == nil {
				t.Fatalf("decode(%s) = %v, want error", tt.path, s)
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("error %q does not mention %q", err, tt.contains)
			}
			if got := errors.Is(err, fs.ErrNotExist); got != tt.notExist {
				t.Errorf("errors.Is(err, fs.ErrNotExist) = %v, want %v", got, tt.notExist)
			}
		})
	}
}
