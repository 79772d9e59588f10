package cmd

import (
	"testing"

	"github.com/atomicstack/bizray-tui/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	for i, name := range []string{"stdin", "stdout", "stderr"} {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadRedactsToken(t *testing.T) {
	s := config.Defaults()
	s.Auth.Token = "secret-token"
	cfg := config.Config{
		Settings: s,
		Logging:  config.Logging{FilePath: "trace.log", Trace: true},
		Flags:    map[string]string{"theme": "default"},
		Args:     []string{"--trace"},
	}

	payload := startupTracePayload(cfg)

	flags, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flags["theme"] != "default" || flags["trace"] != true || flags["logFile"] != "trace.log" {
		t.Fatalf("unexpected flags %v", flags)
	}
	settings, ok := payload["settings"].(config.Settings)
	if !ok {
		t.Fatalf("expected settings in payload")
	}
	if settings.Auth.Token != "" {
		t.Fatalf("token leaked into trace payload")
	}
	if payload["hasToken"] != true {
		t.Fatalf("expected hasToken true")
	}
	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
}
