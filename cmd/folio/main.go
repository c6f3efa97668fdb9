package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/raghavdwd/folio/internal/app"
	"github.com/raghavdwd/folio/internal/portfolio"
	"github.com/raghavdwd/folio/internal/shorturl"
	"github.com/raghavdwd/folio/internal/tui"

	"github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const (
	version = "1.0.0"
	repoURL = "https://github.com/raghavdwd/folio"
)

func buildApplication() (*app.Application, error) {
	// .env is optional; real config lives in the yaml file and environment.
	_ = godotenv.Load()

	cfg, err := app.LoadConfig(app.DefaultConfigPath())
	if err != nil {
		return nil, err
	}
	return app.NewApplication(cfg), nil
}

func main() {
	root := &cobra.Command{
		Use:     "folio",
		Short:   "Terminal portfolio and short-URL dashboard for " + portfolio.GitHubUser,
		Long:    "folio renders a terminal portfolio with GitHub activity, an AI chat sidekick, and a short-URL management dashboard.\n\nRun without arguments for the TUI.\n\nFor more information, visit: " + repoURL,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := buildApplication()
			if err != nil {
				return err
			}

			tab, _ := cmd.Flags().GetString("tab")
			p := tea.NewProgram(tui.New(application, tab), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return err
			}
			return nil
		},
	}

	root.Flags().StringP("tab", "t", "home", "starting tab: home|chat|links")

	dashboardCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the TUI on the short-URL dashboard tab",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := buildApplication()
			if err != nil {
				return err
			}
			p := tea.NewProgram(tui.New(application, "links"), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return err
			}
			return nil
		},
	}
	root.AddCommand(dashboardCmd)

	resolveCmd := &cobra.Command{
		Use:   "resolve [slug]",
		Short: "Resolve a short slug to its target",
		Long:  "Resolve a short slug to its target URL without opening the TUI.\n\nExamples:\n  - folio resolve blog\n  - folio resolve gh",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := buildApplication()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			link, err := application.Links.Resolve(ctx, args[0])
			if errors.Is(err, shorturl.ErrNotFound) {
				// Unknown slugs land on the portfolio instead of an error page.
				fmt.Printf("no link for %q — falling back to %s\n", args[0], portfolio.GitHubProfileURL)
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Println(link.Content)
			return nil
		},
	}
	root.AddCommand(resolveCmd)

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Discard the saved dashboard session",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := buildApplication()
			if err != nil {
				return err
			}
			if err := application.Session.Logout(); err != nil {
				return err
			}
			fmt.Println("logged out")
			return nil
		},
	}
	root.AddCommand(logoutCmd)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("folio v%s\n", version)
			fmt.Printf("Repository: %s\n", repoURL)
		},
	}
	root.AddCommand(versionCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
