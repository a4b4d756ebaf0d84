package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeUserID(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"alice", "alice"},
		{"alice_01", "alice_01"},
		{"  bob  ", "bob"},
		{"evil user!", "evil_user"},
		{"../../etc/passwd", "passwd"},
		{"..\\..\\secret", "secret"},
		{"...", "anonymous"},
		{"", "anonymous"},
		{"名前", "anonymous"},
	}
	for _, tc := range cases {
		if got := SanitizeUserID(tc.in); got != tc.want {
			t.Errorf("SanitizeUserID(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAllowedImage(t *testing.T) {
	cases := []struct {
		filename string
		want     bool
	}{
		{"face.jpg", true},
		{"face.JPG", true},
		{"face.jpeg", true},
		{"face.png", true},
		{"face.gif", false},
		{"face.txt", false},
		{"face", false},
		{".jpg", true},
	}
	for _, tc := range cases {
		if got := AllowedImage(tc.filename); got != tc.want {
			t.Errorf("AllowedImage(%q) = %v, want %v", tc.filename, got, tc.want)
		}
	}
}

func TestImageFilename(t *testing.T) {
	if got := ImageFilename("alice", "left"); got != "alice_left.jpg" {
		t.Fatalf("unexpected filename: %s", got)
	}
}

func TestSaveImageOverwrites(t *testing.T) {
	disk := NewDisk(t.TempDir())

	first, err := disk.SaveImage("alice", "alice_left.jpg", []byte("first"))
	if err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	second, err := disk.SaveImage("alice", "alice_left.jpg", []byte("second"))
	if err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	if first != second {
		t.Fatalf("expected deterministic path, got %s and %s", first, second)
	}

	data, err := os.ReadFile(second)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if string(data) != "second" {
		t.Fatalf("expected overwrite, got %q", data)
	}

	entries, err := os.ReadDir(disk.UserDir("alice"))
	if err != nil {
		t.Fatalf("read dir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected a single file, got %d", len(entries))
	}
}

func TestImagePathLayout(t *testing.T) {
	disk := NewDisk("uploads")
	want := filepath.Join("uploads", "alice", "alice_left.jpg")
	if got := disk.ImagePath("alice", "alice_left.jpg"); got != want {
		t.Fatalf("ImagePath = %s, want %s", got, want)
	}
}
