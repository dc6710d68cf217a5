package media

import (
	"path/filepath"
	"testing"
)

func TestClassifyFileType(t *testing.T) {
	cases := []struct {
		name string
		want FileType
	}{
		{"voice.opus", FileTypeOpus},
		{"voice.OGG", FileTypeOpus},
		{"clip.mp4", FileTypeMp4},
		{"clip.MOV", FileTypeMp4},
		{"clip.avi", FileTypeMp4},
		{"report.pdf", FileTypePdf},
		{"letter.doc", FileTypeDoc},
		{"a.DOCX", FileTypeDoc},
		{"sheet.xls", FileTypeXls},
		{"sheet.xlsx", FileTypeXls},
		{"deck.ppt", FileTypePpt},
		{"deck.PPTX", FileTypePpt},
		{"a.xyz", FileTypeStream},
		{"noextension", FileTypeStream},
		{"", FileTypeStream},
		{"archive.tar.gz", FileTypeStream},
	}
	for _, tc := range cases {
		if got := ClassifyFileType(tc.name); got != tc.want {
			t.Errorf("ClassifyFileType(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestIsImagePath(t *testing.T) {
	for _, path := range []string{"photo.jpg", "photo.JPEG", "a.png", "b.gif", "c.webp", "d.bmp", "e.ico", "f.tiff"} {
		if !IsImagePath(path) {
			t.Errorf("IsImagePath(%q) = false, want true", path)
		}
	}
	for _, path := range []string{"clip.mp4", "doc.pdf", "noext", "photo.jpg.txt", ""} {
		if IsImagePath(path) {
			t.Errorf("IsImagePath(%q) = true, want false", path)
		}
	}
}

func TestIsAudioPath(t *testing.T) {
	for _, path := range []string{"voice.opus", "voice.ogg", "voice.mp3", "voice.wav", "voice.m4a", "voice.AAC", "voice.amr"} {
		if !IsAudioPath(path) {
			t.Errorf("IsAudioPath(%q) = false, want true", path)
		}
	}
	for _, path := range []string{"voice.txt", "clip.mp4", ""} {
		if IsAudioPath(path) {
			t.Errorf("IsAudioPath(%q) = true, want false", path)
		}
	}
}

func TestResolveMediaPathFileURI(t *testing.T) {
	if got := ResolveMediaPath("file:///Users/x/a%20b.png"); got != "/Users/x/a b.png" {
		t.Fatalf("expected percent-decoded path, got %q", got)
	}
	if got := ResolveMediaPath("file:///Users/x/a b.png"); got != "/Users/x/a b.png" {
		t.Fatalf("expected plain path passthrough, got %q", got)
	}
	// Malformed escapes keep the undecoded remainder.
	if got := ResolveMediaPath("file:///tmp/bad%zz.png"); got != "/tmp/bad%zz.png" {
		t.Fatalf("expected undecoded remainder for malformed escape, got %q", got)
	}
	// Host-qualified URIs are not file:/// and stay untouched.
	if got := ResolveMediaPath("file://host/share/a.png"); got != "file://host/share/a.png" {
		t.Fatalf("expected host-qualified URI untouched, got %q", got)
	}
}

func TestResolveMediaPathHomeExpansion(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	want := filepath.Join(home, "docs", "f.pdf")
	if got := ResolveMediaPath("~/docs/f.pdf"); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestResolveMediaPathHomeInsideFileURI(t *testing.T) {
	// After the file:// strip the tilde is no longer leading, so it is not
	// expanded.
	if got := ResolveMediaPath("file:///~/a.png"); got != "/~/a.png" {
		t.Fatalf("unexpected resolution %q", got)
	}
}

func TestResolveMediaPathPlain(t *testing.T) {
	if got := ResolveMediaPath("/var/data/a.png"); got != "/var/data/a.png" {
		t.Fatalf("expected absolute path untouched, got %q", got)
	}
	if got := ResolveMediaPath("relative/a.png"); got != "relative/a.png" {
		t.Fatalf("expected relative path untouched, got %q", got)
	}
}
