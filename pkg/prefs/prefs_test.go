package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if p != Default() {
		t.Errorf("got %+v, want defaults", p)
	}
}

func TestLoadFillsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
theme = "midnight"

[cloud]
max_words = 100
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if p.Theme != "midnight" {
		t.Errorf("Theme = %s", p.Theme)
	}
	if p.Cloud.MaxWords != 100 {
		t.Errorf("Cloud.MaxWords = %d", p.Cloud.MaxWords)
	}
	if p.Cloud.MaxWidth != Default().Cloud.MaxWidth {
		t.Errorf("Cloud.MaxWidth = %v, want default", p.Cloud.MaxWidth)
	}
	if p.Server.Addr != Default().Server.Addr {
		t.Errorf("Server.Addr = %s, want default", p.Server.Addr)
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("theme = [broken"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("bad TOML should be an error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	want := Default()
	want.Theme = "midnight"
	want.Cloud.Spacing = 12
	want.Server.RedisAddr = "localhost:6379"

	if err := Save(want, path); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got != want {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestSaveRejectsEmptyTheme(t *testing.T) {
	p := Default()
	p.Theme = ""
	if err := Save(p, filepath.Join(t.TempDir(), "config.toml")); err == nil {
		t.Error("empty theme should be rejected")
	}
}

func TestWatcherNotifiesSubscribers(t *testing.T) {
	w := NewWatcher(Default())

	var got []string
	w.Subscribe(func(p Preferences) { got = append(got, "first:"+p.Theme) })
	w.Subscribe(func(p Preferences) { got = append(got, "second:"+p.Theme) })

	next := Default()
	next.Theme = "midnight"
	w.Update(next)

	if len(got) != 2 || got[0] != "first:midnight" || got[1] != "second:midnight" {
		t.Errorf("notifications = %v", got)
	}
	if w.Current().Theme != "midnight" {
		t.Errorf("Current().Theme = %s", w.Current().Theme)
	}
}
