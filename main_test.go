package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/atomicstack/bizray-tui/internal/config"
	"github.com/atomicstack/bizray-tui/internal/logging"
)

func TestReportMapsExitCodes(t *testing.T) {
	logging.Configure(filepath.Join(t.TempDir(), "bizray.log"))
	invalid := fmt.Errorf("%w: bad theme", config.ErrInvalid)
	if code := report(invalid); code != 2 {
		t.Fatalf("expected exit code 2 for invalid config, got %d", code)
	}
	if code := report(errors.New("boom")); code != 1 {
		t.Fatalf("expected exit code 1 for runtime errors, got %d", code)
	}
}
