package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStartupFailureReportedOnce(t *testing.T) {
	var buf bytes.Buffer
	stderr = &buf
	t.Cleanup(func() {
		stderr = os.Stderr
		flagConfig = ""
	})

	missing := filepath.Join(t.TempDir(), "nope.yaml")
	if code := execute([]string{"--config", missing}); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if n := strings.Count(buf.String(), "failed to read config"); n != 1 {
		t.Errorf("error reported %d times, want once:\n%s", n, buf.String())
	}
}
