package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/user/cloudtune-cli/api"
	"github.com/user/cloudtune-cli/config"
	"github.com/user/cloudtune-cli/store"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in by pasting a session cookie",
	Long: `Log in by pasting the SESSION cookie of an existing web session.
This is an alternative to the QR-code flow inside the TUI, useful on
machines without a phone at hand.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		st, err := store.Open(cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		var cookie string
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Session cookie").
					Description("Paste the value of the SESSION cookie from your browser.").
					EchoMode(huh.EchoModePassword).
					Validate(func(s string) error {
						if s == "" {
							return fmt.Errorf("cookie must not be empty")
						}
						return nil
					}).
					Value(&cookie),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}

		// Validate the cookie against the service before persisting it
		client := api.New(cfg.API.BaseURL, nil)
		client.SetCookie(cookie, "")
		ok, err := client.LoginStatus(context.Background())
		if err != nil {
			return fmt.Errorf("validate cookie: %w", err)
		}
		if !ok {
			return fmt.Errorf("the service rejected this cookie")
		}

		if err := st.SaveSession(cookie, client.Nickname()); err != nil {
			return fmt.Errorf("persist session: %w", err)
		}

		fmt.Printf("Logged in as %s\n", client.Nickname())
		return nil
	},
}
