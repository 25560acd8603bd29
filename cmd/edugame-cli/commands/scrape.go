package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vytor/edugame/internal/config"
	"github.com/vytor/edugame/internal/models"
	"github.com/vytor/edugame/internal/portal"
	"github.com/vytor/edugame/internal/registry"
	"github.com/vytor/edugame/internal/services"
)

const passwordEnv = "EDUGAME_PASSWORD"

func newScrapeCmd(cfg config.Config) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "scrape --username <user>",
		Short: "Logs into the portal and prints the computed student record.",
		Long:  fmt.Sprintf("Logs into the portal and prints the computed student record. The password is read from %s unless --password is given.", passwordEnv),
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = os.Getenv(passwordEnv)
			}
			if password == "" {
				return fmt.Errorf("no password: set %s or pass --password", passwordEnv)
			}

			settings, err := portal.LoadSettings(cfg.PortalConfigFile)
			if err != nil {
				return err
			}
			client, err := portal.New(portal.Options{
				BaseURL:   cfg.PortalBaseURL,
				TermPath:  cfg.PortalTermPath,
				UserAgent: cfg.PortalUserAgent,
				RateLimit: cfg.PortalRateLimit,
				Timeout:   cfg.PortalTimeout,
				Settings:  settings,
			})
			if err != nil {
				return err
			}

			svc := services.NewScrapeService(client, registry.New(), settings, nil)
			result, err := svc.Scrape(cmd.Context(), models.Credentials{Username: username, Password: password})
			if err != nil {
				return err
			}

			renderStudent(cmd.OutOrStdout(), result.Student)
			renderCourses(cmd.OutOrStdout(), result.Courses)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Portal username.")
	cmd.Flags().StringVar(&password, "password", "", "Portal password (prefer "+passwordEnv+").")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}
