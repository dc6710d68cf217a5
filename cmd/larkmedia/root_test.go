package main

import (
	"testing"
)

func TestRootCommandWiring(t *testing.T) {
	root := NewRootCommand()

	want := map[string]bool{
		"image":    false,
		"file":     false,
		"upload":   false,
		"classify": false,
		"version":  false,
	}
	for _, sub := range root.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestBuildUploaderRequiresCredentials(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("LARKMEDIA_CONFIG", "")
	t.Setenv("LARKMEDIA_APP_ID", "")
	t.Setenv("LARKMEDIA_APP_SECRET", "")

	if _, err := buildUploader(&cliOptions{}); err == nil {
		t.Fatalf("expected missing-credential error")
	}

	uploader, err := buildUploader(&cliOptions{appID: "cli_abc", appSecret: "shh"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uploader == nil {
		t.Fatalf("expected a wired uploader")
	}
}
