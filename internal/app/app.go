package app

import (
	"errors"
	"time"

	"github.com/atomicstack/bizray-tui/internal/api"
	"github.com/atomicstack/bizray-tui/internal/backend"
	"github.com/atomicstack/bizray-tui/internal/config"
	"github.com/atomicstack/bizray-tui/internal/logging/events"
	"github.com/atomicstack/bizray-tui/internal/state"
	"github.com/atomicstack/bizray-tui/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

const updateBuffer = 64

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg config.Config, version string) error {
	model, runner := newModel(cfg, version)
	defer runner.Stop()
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		events.App.Stop("killed")
		return nil
	}
	if err != nil {
		events.App.Stop(err.Error())
		return err
	}
	events.App.Stop("quit")
	return nil
}

func newModel(cfg config.Config, version string) (*ui.Model, *backend.Runner) {
	s := cfg.Settings
	client := api.NewClient(
		s.API.Endpoint,
		time.Duration(s.API.TimeoutSeconds)*time.Second,
		api.WithUserAgent("bizray-tui/"+version),
	)
	runner := backend.NewRunner(updateBuffer)
	model := ui.NewModel(ui.Options{
		App:       state.New(state.Options{Token: s.Auth.Token, PageSize: s.UI.PageSize}),
		Runner:    runner,
		Store:     config.NewStore(cfg.SettingsPath, cfg.File),
		Authorize: client.Authorize(),
		Theme:     s.UI.Theme,
		ShowHints: s.UI.ShowHints,
	})
	return model, runner
}
