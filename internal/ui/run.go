package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkyte/paddock/internal/agent"
	"github.com/mkyte/paddock/internal/catalog"
	"github.com/mkyte/paddock/internal/preset"
	"github.com/mkyte/paddock/internal/setup"
	"github.com/mkyte/paddock/internal/util"
)

// Run boots the editor TUI and blocks until it exits.
func Run(ctx context.Context, repo *preset.Repo, store *setup.Store, index *catalog.Index, client *agent.Client, cfg util.Config, version string) error {
	m := initialModel(ctx, repo, store, index, client, cfg, version)
	program := tea.NewProgram(m, tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
