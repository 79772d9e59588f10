package app

import (
	"path/filepath"
	"testing"

	"github.com/atomicstack/bizray-tui/internal/config"
	uistate "github.com/atomicstack/bizray-tui/internal/ui/state"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	s := config.Defaults()
	return config.Config{
		Settings:     s,
		File:         s,
		SettingsPath: filepath.Join(t.TempDir(), "config.yaml"),
	}
}

func TestNewModelWithoutTokenStartsOnLogin(t *testing.T) {
	model, runner := newModel(testConfig(t), "test")
	defer runner.Stop()
	app := model.App()
	if app.Screen().Kind != uistate.ScreenLogin {
		t.Fatalf("expected login screen, got %s", app.Screen())
	}
	if app.Results.PageSize != config.DefaultPageSize {
		t.Fatalf("expected default page size, got %d", app.Results.PageSize)
	}
}

func TestNewModelWithTokenStartsOnSearch(t *testing.T) {
	cfg := testConfig(t)
	cfg.Settings.Auth.Token = "stored"
	cfg.Settings.UI.PageSize = 25
	model, runner := newModel(cfg, "test")
	defer runner.Stop()
	app := model.App()
	if app.Screen().Kind != uistate.ScreenSearch || app.Token != "stored" {
		t.Fatalf("expected search screen with token, got %s", app.Screen())
	}
	if app.Results.PageSize != 25 {
		t.Fatalf("expected page size 25, got %d", app.Results.PageSize)
	}
}
