package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/storefront/internal/tui"
)

func runTUI(cmd *cobra.Command, flags *rootFlags) error {
	ctx := cmd.Context()

	app, err := openApp(ctx, cmd, flags, "launch storefront", logToFile)
	if err != nil {
		return err
	}
	defer app.Close()

	app.Log.Info("launching storefront")

	m := tui.NewModel(ctx, tui.Dependencies{
		Store:     app.Store,
		Navigator: app.Navigator,
		Browser:   app.Browser,
		Auth:      app.Client,
		Logger:    app.Log,
	}, tui.Options{
		ToastDuration:  app.Config.UI.ToastDuration,
		ErrorDismiss:   app.Config.UI.ErrorDismiss,
		SearchDebounce: app.Config.UI.SearchDebounce,
	})
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		app.Log.Error(err, "storefront execution failed")
		return fmt.Errorf("failed to run storefront: %w", err)
	}

	app.Log.Info("storefront closed")
	return nil
}
