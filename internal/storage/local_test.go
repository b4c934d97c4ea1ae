package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newTestStorage(t *testing.T) (FileStorage, string) {
	t.Helper()
	dir := t.TempDir()
	fs, err := NewLocalStorage(dir, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewLocalStorage() failed: %v", err)
	}
	return fs, dir
}

func TestNewLocalStorageCreatesKindDirectories(t *testing.T) {
	_, dir := newTestStorage(t)

	for _, kind := range []Kind{KindVideo, KindNote, KindThumbnail} {
		info, err := os.Stat(filepath.Join(dir, string(kind)))
		if err != nil {
			t.Fatalf("directory for kind %s not created: %v", kind, err)
		}
		if !info.IsDir() {
			t.Errorf("path for kind %s is not a directory", kind)
		}
	}
}

func TestSaveGeneratesDisjointName(t *testing.T) {
	fs, dir := newTestStorage(t)

	content := []byte("lecture 1 recording bytes")
	stored, err := fs.Save(context.Background(), KindVideo, "lecture 1.mp4", bytes.NewReader(content))
	if err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	if stored.Name == "lecture 1.mp4" {
		t.Error("stored name must differ from the original filename")
	}
	if !strings.HasSuffix(stored.Name, ".mp4") {
		t.Errorf("stored name must preserve the extension, got %s", stored.Name)
	}
	if stored.Size != int64(len(content)) {
		t.Errorf("size: want %d, got %d", len(content), stored.Size)
	}

	data, err := os.ReadFile(filepath.Join(dir, string(KindVideo), stored.Name))
	if err != nil {
		t.Fatalf("stored file not on disk: %v", err)
	}
	if !bytes.Equal(data, content) {
		t.Error("stored bytes differ from the uploaded payload")
	}
}

func TestSaveNamesDoNotCollide(t *testing.T) {
	fs, _ := newTestStorage(t)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		stored, err := fs.Save(context.Background(), KindNote, "syllabus.pdf", strings.NewReader("x"))
		if err != nil {
			t.Fatalf("Save() failed: %v", err)
		}
		if seen[stored.Name] {
			t.Fatalf("duplicate stored name %s", stored.Name)
		}
		seen[stored.Name] = true
	}
}

func TestSaveWithoutExtension(t *testing.T) {
	fs, _ := newTestStorage(t)

	stored, err := fs.Save(context.Background(), KindNote, "README", strings.NewReader("notes"))
	if err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if strings.Contains(stored.Name, ".") {
		t.Errorf("no extension expected, got %s", stored.Name)
	}
}

func TestDelete(t *testing.T) {
	fs, dir := newTestStorage(t)

	stored, err := fs.Save(context.Background(), KindNote, "old.pdf", strings.NewReader("stale"))
	if err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	if err := fs.Delete(context.Background(), KindNote, stored.Name); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, string(KindNote), stored.Name)); !os.IsNotExist(err) {
		t.Error("file still present after Delete")
	}

	// Deleting a missing file is not an error.
	if err := fs.Delete(context.Background(), KindNote, stored.Name); err != nil {
		t.Errorf("Delete() of missing file returned %v", err)
	}
}
