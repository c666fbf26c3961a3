package emitter

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dealstack/testscaffold/internal/scaffold"
	"github.com/dealstack/testscaffold/internal/system"
	"github.com/dealstack/testscaffold/internal/ui"
)

func newTestEmitter(t *testing.T, opts Options) (*Emitter, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	e := New(system.NewFileSystem(), ui.NewWithWriter(&bytes.Buffer{}), &out, opts)
	return e, &out
}

func TestEmitWritesPayloadExactly(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.Mkdir(filepath.Join(tmpDir, "out"), 0755); err != nil {
		t.Fatalf("Failed to create destination directory: %v", err)
	}

	e, out := newTestEmitter(t, Options{Root: tmpDir})
	s := scaffold.Scaffold{Name: "hello", Destination: "out/test.txt", Payload: "hello"}

	if err := e.Emit(s); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(tmpDir, "out", "test.txt"))
	if err != nil {
		t.Fatalf("Failed to read emitted file: %v", err)
	}
	if string(content) != "hello" {
		t.Errorf("Expected file to contain exactly 'hello', got %q", content)
	}

	if !strings.Contains(out.String(), "File written successfully to ") {
		t.Errorf("Expected success line on stdout, got %q", out.String())
	}
	if !strings.Contains(out.String(), "Total characters: 5") {
		t.Errorf("Expected 'Total characters: 5' on stdout, got %q", out.String())
	}
}

func TestEmitIsIdempotent(t *testing.T) {
	tmpDir := t.TempDir()
	e, out := newTestEmitter(t, Options{Root: tmpDir})
	s := scaffold.Scaffold{Name: "hello", Destination: "test.txt", Payload: "hello"}

	for i := 0; i < 3; i++ {
		if err := e.Emit(s); err != nil {
			t.Fatalf("Emit run %d failed: %v", i+1, err)
		}
	}

	content, err := os.ReadFile(filepath.Join(tmpDir, "test.txt"))
	if err != nil {
		t.Fatalf("Failed to read emitted file: %v", err)
	}
	if string(content) != "hello" {
		t.Errorf("Expected identical content after repeated emits, got %q", content)
	}

	// The reported count is constant across runs
	if got := strings.Count(out.String(), "Total characters: 5"); got != 3 {
		t.Errorf("Expected 3 identical count lines, got %d in %q", got, out.String())
	}
}

func TestEmitTruncatesExistingFile(t *testing.T) {
	tmpDir := t.TempDir()
	dest := filepath.Join(tmpDir, "test.txt")
	if err := os.WriteFile(dest, []byte("previous content that is much longer"), 0644); err != nil {
		t.Fatalf("Failed to seed destination: %v", err)
	}

	e, _ := newTestEmitter(t, Options{Root: tmpDir})
	s := scaffold.Scaffold{Name: "hello", Destination: "test.txt", Payload: "hello"}

	if err := e.Emit(s); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}

	content, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("Failed to read emitted file: %v", err)
	}
	if string(content) != "hello" {
		t.Errorf("Expected truncate-and-rewrite, got %q", content)
	}
}

func TestEmitMissingDirectoryFails(t *testing.T) {
	tmpDir := t.TempDir()
	e, out := newTestEmitter(t, Options{Root: tmpDir})
	s := scaffold.Scaffold{Name: "hello", Destination: "missing_dir/test.txt", Payload: "hello"}

	if err := e.Emit(s); err == nil {
		t.Fatal("Expected filesystem fault for missing parent directory")
	}

	if _, err := os.Stat(filepath.Join(tmpDir, "missing_dir", "test.txt")); !os.IsNotExist(err) {
		t.Error("Expected no file to be created on failure")
	}
	if out.Len() != 0 {
		t.Errorf("Expected no confirmation output on failure, got %q", out.String())
	}
}

func TestEmitCreateDirs(t *testing.T) {
	tmpDir := t.TempDir()
	e, _ := newTestEmitter(t, Options{Root: tmpDir, CreateDirs: true})
	s := scaffold.Scaffold{Name: "hello", Destination: "a/b/test.txt", Payload: "hello"}

	if err := e.Emit(s); err != nil {
		t.Fatalf("Emit with CreateDirs failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(tmpDir, "a", "b", "test.txt"))
	if err != nil {
		t.Fatalf("Failed to read emitted file: %v", err)
	}
	if string(content) != "hello" {
		t.Errorf("Expected 'hello', got %q", content)
	}
}

func TestEmitAtomic(t *testing.T) {
	tmpDir := t.TempDir()
	e, out := newTestEmitter(t, Options{Root: tmpDir, Atomic: true})
	s := scaffold.Scaffold{Name: "hello", Destination: "test.txt", Payload: "hello"}

	if err := e.Emit(s); err != nil {
		t.Fatalf("Atomic emit failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(tmpDir, "test.txt"))
	if err != nil {
		t.Fatalf("Failed to read emitted file: %v", err)
	}
	if string(content) != "hello" {
		t.Errorf("Expected 'hello', got %q", content)
	}
	if !strings.Contains(out.String(), "Total characters: 5") {
		t.Errorf("Expected count line on stdout, got %q", out.String())
	}
}

func TestEmitSkipExisting(t *testing.T) {
	tmpDir := t.TempDir()
	dest := filepath.Join(tmpDir, "test.txt")
	if err := os.WriteFile(dest, []byte("hand-edited"), 0644); err != nil {
		t.Fatalf("Failed to seed destination: %v", err)
	}

	e, out := newTestEmitter(t, Options{Root: tmpDir, SkipExisting: true})
	s := scaffold.Scaffold{Name: "hello", Destination: "test.txt", Payload: "hello"}

	if err := e.Emit(s); err != nil {
		t.Fatalf("Emit with SkipExisting failed: %v", err)
	}

	content, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("Failed to read destination: %v", err)
	}
	if string(content) != "hand-edited" {
		t.Errorf("Expected existing content to be preserved, got %q", content)
	}
	if out.Len() != 0 {
		t.Errorf("Expected no confirmation output for a skipped emit, got %q", out.String())
	}
}

func TestEmitDryRunWritesNothing(t *testing.T) {
	tmpDir := t.TempDir()
	e, out := newTestEmitter(t, Options{Root: tmpDir, DryRun: true})
	s := scaffold.Scaffold{Name: "hello", Destination: "test.txt", Payload: "hello"}

	if err := e.Emit(s); err != nil {
		t.Fatalf("Dry-run emit failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tmpDir, "test.txt")); !os.IsNotExist(err) {
		t.Error("Expected dry run to write nothing")
	}
	if out.Len() != 0 {
		t.Errorf("Expected no confirmation output for a dry run, got %q", out.String())
	}
}

func TestEmitCatalogPayloadByteForByte(t *testing.T) {
	s, err := scaffold.Lookup("invite-co-investors")
	if err != nil {
		t.Fatalf("Failed to look up scaffold: %v", err)
	}

	tmpDir := t.TempDir()
	e, out := newTestEmitter(t, Options{Root: tmpDir, CreateDirs: true})

	if err := e.Emit(s); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}

	dest := filepath.Join(tmpDir, "src", "__tests__", "investor", "invite-co-investors.test.tsx")
	content, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("Failed to read emitted file: %v", err)
	}
	if !bytes.Equal(content, s.Bytes()) {
		t.Error("Expected emitted file to be byte-identical to the payload")
	}

	wantCount := fmt.Sprintf("Total characters: %d", s.CharCount())
	if !strings.Contains(out.String(), wantCount) {
		t.Errorf("Expected %q on stdout, got %q", wantCount, out.String())
	}
}

func TestEmitAllStopsAtFirstFailure(t *testing.T) {
	tmpDir := t.TempDir()
	e, _ := newTestEmitter(t, Options{Root: tmpDir})

	scaffolds := []scaffold.Scaffold{
		{Name: "first", Destination: "first.txt", Payload: "one"},
		{Name: "second", Destination: "missing_dir/second.txt", Payload: "two"},
		{Name: "third", Destination: "third.txt", Payload: "three"},
	}

	err := e.EmitAll(scaffolds)
	if err == nil {
		t.Fatal("Expected EmitAll to fail on the second scaffold")
	}
	if !strings.Contains(err.Error(), "second") {
		t.Errorf("Expected error to name the failing scaffold, got %v", err)
	}

	if _, statErr := os.Stat(filepath.Join(tmpDir, "first.txt")); statErr != nil {
		t.Error("Expected the first scaffold to have been written")
	}
	if _, statErr := os.Stat(filepath.Join(tmpDir, "third.txt")); !os.IsNotExist(statErr) {
		t.Error("Expected the third scaffold to be untouched after the failure")
	}
}

func TestInspect(t *testing.T) {
	tmpDir := t.TempDir()
	e, _ := newTestEmitter(t, Options{Root: tmpDir})
	s := scaffold.Scaffold{Name: "hello", Destination: "test.txt", Payload: "hello"}

	st, err := e.Inspect(s)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if st.Exists || st.Matches {
		t.Error("Expected missing destination before emit")
	}

	if err := e.Emit(s); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}

	st, err = e.Inspect(s)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if !st.Exists || !st.Matches {
		t.Error("Expected destination to exist and match after emit")
	}

	// Drift: hand-edit the emitted file
	if err := os.WriteFile(filepath.Join(tmpDir, "test.txt"), []byte("edited"), 0644); err != nil {
		t.Fatalf("Failed to edit destination: %v", err)
	}

	st, err = e.Inspect(s)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if !st.Exists {
		t.Error("Expected destination to still exist")
	}
	if st.Matches {
		t.Error("Expected drift to be detected")
	}
}

func TestRemove(t *testing.T) {
	tmpDir := t.TempDir()
	e, _ := newTestEmitter(t, Options{Root: tmpDir})
	s := scaffold.Scaffold{Name: "hello", Destination: "test.txt", Payload: "hello"}

	if err := e.Emit(s); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	if err := e.Remove(s); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(tmpDir, "test.txt")); !os.IsNotExist(err) {
		t.Error("Expected destination to be removed")
	}

	// Removing an absent destination is not an error
	if err := e.Remove(s); err != nil {
		t.Errorf("Expected removing a missing destination to succeed, got %v", err)
	}
}

func TestEmitRejectsUnsafeDestinations(t *testing.T) {
	tmpDir := t.TempDir()
	e, out := newTestEmitter(t, Options{Root: tmpDir})

	tests := []struct {
		name        string
		destination string
	}{
		{name: "absolute", destination: "/etc/passwd"},
		{name: "parent escape", destination: "../outside.txt"},
		{name: "empty", destination: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := scaffold.Scaffold{Name: "bad", Destination: tt.destination, Payload: "x"}
			if err := e.Emit(s); err == nil {
				t.Errorf("Expected error for destination %q", tt.destination)
			}
		})
	}

	if out.Len() != 0 {
		t.Errorf("Expected no confirmation output, got %q", out.String())
	}
}

func TestEmitWithMockFileSystem(t *testing.T) {
	mock := system.NewMockFileSystem()
	var out bytes.Buffer
	e := New(mock, ui.NewWithWriter(&bytes.Buffer{}), &out, Options{Root: "/project"})
	s := scaffold.Scaffold{Name: "hello", Destination: "out/test.txt", Payload: "hello"}

	if err := e.Emit(s); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}

	dest := filepath.Join("/project", "out", "test.txt")
	if string(mock.WrittenFiles[dest]) != "hello" {
		t.Errorf("Expected mock to capture payload at %s, got %v", dest, mock.WrittenFiles)
	}
}
