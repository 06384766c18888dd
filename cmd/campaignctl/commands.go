package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"campaign-dashboard/internal/adapter/memory"
	"campaign-dashboard/internal/adapter/terminal"
	"campaign-dashboard/internal/adapter/usecase"
	"campaign-dashboard/internal/bootstrap"
	"campaign-dashboard/internal/config"
	"campaign-dashboard/internal/config/configs"
	"campaign-dashboard/internal/db"
)

// cli holds state shared by all subcommands once the root has loaded the
// configuration.
type cli struct {
	load    func() (config.Config, error)
	cfg     config.Config
	logger  *slog.Logger
	source  string
	fixture string
}

func newRootCmd(load func() (config.Config, error)) *cobra.Command {
	c := &cli{load: load}

	root := &cobra.Command{
		Use:   "campaignctl",
		Short: "Inspect and manage campaign experiment data",
		Long: `campaignctl prints the campaign dashboard in the terminal and manages
the PostgreSQL campaign store.

Configuration is read from the environment (and an optional .env file)
exactly like the dashboard server. Flags override the source selection.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}
	root.PersistentFlags().StringVar(&c.source, "source", "", "campaign source: seed, file or postgres (overrides SOURCE_KIND)")
	root.PersistentFlags().StringVar(&c.fixture, "file", "", "YAML fixture to read campaigns from (implies --source=file)")

	root.AddCommand(c.showCmd(), c.summaryCmd(), c.migrateCmd(), c.seedCmd())
	return root
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := c.load()
	if err != nil {
		return err
	}
	if c.fixture != "" {
		cfg.Source.Kind = configs.SourceFile
		cfg.Source.FixturePath = c.fixture
	}
	if c.source != "" {
		cfg.Source.Kind = c.source
	}
	c.cfg = cfg
	c.logger = cfg.Log.New(cmd.ErrOrStderr())
	return nil
}

func (c *cli) useCase(cmd *cobra.Command) (*usecase.DashboardUseCase, func(), error) {
	repo, closeSource, err := bootstrap.CampaignSource(cmd.Context(), c.cfg, c.logger)
	if err != nil {
		return nil, closeSource, err
	}
	return usecase.NewDashboardUseCase(repo, c.cfg.Palette.Dashboard(), nil), closeSource, nil
}

// showCmd renders the full dashboard as a styled table.
func (c *cli) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the dashboard table, key metrics and pipeline tally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, closeSource, err := c.useCase(cmd)
			defer closeSource()
			if err != nil {
				return err
			}
			d, err := svc.Dashboard(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, err = fmt.Fprint(out, terminal.NewRenderer(out).Render(c.cfg.App.Title, d))
			return err
		},
	}
}

// summaryCmd prints the key metrics as JSON for scripting.
func (c *cli) summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print key metrics as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, closeSource, err := c.useCase(cmd)
			defer closeSource()
			if err != nil {
				return err
			}
			s, err := svc.Summary(cmd.Context())
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(s)
		},
	}
}

func (c *cli) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations to PSQL_ADDRESS",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := db.Migrate(c.cfg.Psql.Addr.String()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			c.logger.Info("migrations applied successfully")
			return nil
		},
	}
}

// seedCmd loads the demo campaigns into PostgreSQL, dated relative to today.
func (c *cli) seedCmd() *cobra.Command {
	var migrateFirst bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the demo campaigns into PostgreSQL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if migrateFirst {
				if err := db.Migrate(c.cfg.Psql.Addr.String()); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
			}
			pool, err := db.NewPostgresPool(cmd.Context(), c.cfg.Psql)
			if err != nil {
				return err
			}
			defer pool.Close()

			n, err := db.Seed(cmd.Context(), pool, memory.SeedCampaigns(time.Now()))
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			c.logger.Info("seeded campaigns", slog.Int64("inserted", n))
			return nil
		},
	}
	cmd.Flags().BoolVar(&migrateFirst, "migrate", false, "apply migrations before seeding")
	return cmd
}
