package theme

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/daytally/internal/storage"
)

const ns = "calendar-theme-2025"

type brokenKV struct{}

func (brokenKV) Save(context.Context, string, []byte) error { return errors.New("disk full") }
func (brokenKV) Load(context.Context, string) ([]byte, error) {
	return nil, errors.New("storage unavailable")
}

func TestToggleRoundTrip(t *testing.T) {
	kv := storage.NewMemoryStore()
	c := NewController(kv, ns, nil)
	if c.Load() {
		t.Fatal("expected dark default")
	}
	if !c.Toggle() {
		t.Fatal("expected light after toggle")
	}
	raw, err := kv.Load(context.Background(), ns)
	if err != nil || string(raw) != "true" {
		t.Fatalf("expected persisted true literal, got %q (%v)", raw, err)
	}

	fresh := NewController(kv, ns, nil)
	if !fresh.Load() || !fresh.Light() {
		t.Fatal("expected light after reload")
	}
	fresh.Toggle()
	if NewController(kv, ns, nil).Load() {
		t.Fatal("expected dark after second toggle")
	}
}

func TestCorruptThemeFallsBackToDark(t *testing.T) {
	for _, payload := range []string{"yes", `"true"`, "{}", ""} {
		kv := storage.NewMemoryStore()
		_ = kv.Save(context.Background(), ns, []byte(payload))
		var buf bytes.Buffer
		c := NewController(kv, ns, log.New(&buf))
		if c.Load() {
			t.Fatalf("payload %q should load as dark", payload)
		}
		if !strings.Contains(buf.String(), "malformed theme") {
			t.Fatalf("payload %q should warn, log: %q", payload, buf.String())
		}
	}
}

func TestBrokenStorageNeverFails(t *testing.T) {
	var buf bytes.Buffer
	c := NewController(brokenKV{}, ns, log.New(&buf))
	if c.Load() {
		t.Fatal("expected dark when storage is unavailable")
	}
	if !c.Toggle() {
		t.Fatal("toggle must still flip the in-memory flag")
	}
	out := buf.String()
	if !strings.Contains(out, "storage unavailable") || !strings.Contains(out, "disk full") {
		t.Fatalf("expected both failures logged: %q", out)
	}
}
