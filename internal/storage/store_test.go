package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/atomlab/internal/atom"
)

func TestStoreSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	counts := atom.Counts{Protons: 11, Neutrons: 12, Electrons: 11}
	id, err := st.Save("Sodium", "svg", counts, []byte("<svg/>"))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(id)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Subject != "Sodium" || meta.Format != "svg" || meta.Counts != counts || meta.Bytes != 6 {
		t.Errorf("unexpected metadata %+v", meta)
	}

	data, err := os.ReadFile(st.Path(meta))
	if err != nil {
		t.Fatalf("diagram missing: %v", err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("unexpected diagram contents %q", data)
	}
}

func TestStoreList(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	st.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	if _, err := st.Save("oxygen", "png", atom.Counts{}, []byte{1}); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Save("catalog", "gif", atom.Counts{}, []byte{2}); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(tmpDir, "junk"), 0755); err != nil {
		t.Fatal(err)
	}

	exports, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(exports) != 2 {
		t.Fatalf("expected 2 exports, got %d", len(exports))
	}
	if exports[0].Subject != "oxygen" || exports[1].Subject != "catalog" {
		t.Errorf("expected oldest first, got %s then %s", exports[0].Subject, exports[1].Subject)
	}
}

func TestStoreListMissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "nope"))
	exports, err := st.List()
	if err != nil || len(exports) != 0 {
		t.Errorf("expected empty list, got %v %v", exports, err)
	}
}

func TestStoreLoadNotFound(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	in := []Metadata{{ID: "a", Subject: "Helium", Format: "svg"}}
	if err := ExportJSON(&buf, in); err != nil {
		t.Fatal(err)
	}
	var out []Metadata
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].Subject != "Helium" {
		t.Errorf("unexpected decode %+v", out)
	}
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"Sodium":      "sodium",
		"Sodium (Na)": "sodium--na-",
		"":            "atom",
	}
	for in, want := range tests {
		if got := slug(in); got != want {
			t.Errorf("slug(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStoreSaveCleansUpOnFailure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)
	ts := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	st.now = func() time.Time { return ts }

	id := fmt.Sprintf("helium_svg_%d", ts.UnixNano())
	// a directory where metadata.json should go makes the metadata write fail
	if err := os.MkdirAll(filepath.Join(tmpDir, id, metadataFile), 0755); err != nil {
		t.Fatal(err)
	}

	if _, err := st.Save("Helium", "svg", atom.Counts{}, []byte("<svg/>")); err == nil {
		t.Fatal("expected save to fail")
	}
	if _, err := os.Stat(filepath.Join(tmpDir, id)); !os.IsNotExist(err) {
		t.Errorf("failed export directory left behind: %v", err)
	}

	exports, err := st.List()
	if err != nil || len(exports) != 0 {
		t.Errorf("expected no exports, got %v %v", exports, err)
	}
}
