package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadContent_NotTerminal(t *testing.T) {
	var out bytes.Buffer
	content, err := ReadContent(strings.NewReader("héllo\n"), &out, "Enter content:")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if content != "héllo\n" {
		t.Errorf("Expected 'héllo\\n', got '%s'", content)
	}
	if out.Len() != 0 {
		t.Errorf("Prompt should not be written for non-terminal input, got '%s'", out.String())
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Errorf("Buffer should not be a terminal")
	}

	f, err := os.Create(filepath.Join(t.TempDir(), "plain"))
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Errorf("Regular file should not be a terminal")
	}
}
