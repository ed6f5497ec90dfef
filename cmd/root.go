// Package cmd defines the cloudtune command-line interface.
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/user/cloudtune-cli/api"
	"github.com/user/cloudtune-cli/config"
	"github.com/user/cloudtune-cli/deps"
	"github.com/user/cloudtune-cli/player"
	"github.com/user/cloudtune-cli/store"
	"github.com/user/cloudtune-cli/tui"
)

var Version = "0.1.0"

var debugFlag bool

var rootCmd = &cobra.Command{
	Use:   "cloudtune",
	Short: "A terminal client for the cloud music service",
	Long: `cloudtune is a terminal client for the cloud music service.
It browses your favorite playlist and streams tracks through mpv,
all without leaving the terminal.

Features:
  - QR-code login (or paste a session cookie with 'cloudtune login')
  - Favorite playlist browser with vim-style keys
  - Playback through a local mpv process
  - Command mode (:) with the same vocabulary as the keybindings`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cloudtune version %s\n", Version)
	},
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check system dependencies",
	Long:  `Check that mpv is installed and available in PATH.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Checking dependencies...")
		fmt.Println()

		if err := deps.CheckMpv(); err != nil {
			fmt.Println("✗ mpv: NOT FOUND")
			fmt.Printf("  Install from: %s\n", deps.MpvInstallURL)
			os.Exit(1)
		}
		fmt.Println("✓ mpv: OK")
	},
}

// runTUI wires the collaborators together and runs the controller loop
// until quit or a collaborator failure.
func runTUI() error {
	if debugFlag {
		f, err := tea.LogToFile("cloudtune-debug.log", "debug")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	st, err := store.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	client := api.New(cfg.API.BaseURL, st)
	if client.IsLogin() {
		// Validate the persisted session and warm the favorites cache.
		// A dead cookie just means the user logs in again inside the TUI.
		ctx := context.Background()
		if ok, err := client.LoginStatus(ctx); err == nil && ok {
			if err := client.RefreshFavorites(ctx); err != nil {
				return err
			}
		}
	}

	// The player is optional: without mpv the gauge stays blank and
	// playback commands report the failure, but browsing still works
	pl := player.New(cfg.Player.SocketPath)
	if proc, err := player.Launch(cfg.Player.SocketPath); err == nil {
		defer func() {
			pl.Close()
			if proc.Process != nil {
				proc.Process.Kill()
			}
		}()
		// The socket appears shortly after mpv starts
		for i := 0; i < 50; i++ {
			time.Sleep(100 * time.Millisecond)
			if err := pl.Connect(); err == nil {
				break
			}
		}
	}

	model := tui.NewModel(tui.Options{
		API:          client,
		Player:       pl,
		History:      st,
		TickInterval: time.Duration(cfg.UI.TickMS) * time.Millisecond,
	})

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	return model.Err()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "write debug output to cloudtune-debug.log")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(loginCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
