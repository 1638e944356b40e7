package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/system-sage/internal/adapter"
	"github.com/MKhiriev/system-sage/internal/config"
	"github.com/MKhiriev/system-sage/internal/logger"
	"github.com/MKhiriev/system-sage/models"
)

const Name = "sysagectl"

type App struct {
	cfg        *config.ClientConfig
	newAdapter AdapterFactory
	adapter    adapter.ServerAdapter
	buildInfo  models.AppBuildInfo

	ctx context.Context
	out io.Writer
	err io.Writer

	logger *logger.Logger
}

func NewApp(ctx context.Context, cfg *config.ClientConfig, newAdapter AdapterFactory, buildInfo models.AppBuildInfo, out, errOut io.Writer, logger *logger.Logger) *App {
	return &App{
		cfg:        cfg,
		newAdapter: newAdapter,
		buildInfo:  buildInfo,
		ctx:        ctx,
		out:        out,
		err:        errOut,
		logger:     logger,
	}
}

// Run implements [Client].
func (a *App) Run(args []string) error {
	root := a.Command()
	root.SetArgs(args)
	return root.ExecuteContext(a.ctx)
}

// Command builds the root command with every subcommand attached.
func (a *App) Command() *cobra.Command {
	var (
		address string
		timeout time.Duration
	)

	root := &cobra.Command{
		Use:           Name,
		Short:         "Command line client for the system-sage server",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("address") {
				a.cfg.Adapter.HTTPAddress = address
			}
			if cmd.Flags().Changed("timeout") {
				a.cfg.Adapter.RequestTimeout = timeout
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			serverAdapter, err := a.newAdapter(a.cfg.Adapter, a.logger)
			if err != nil {
				return fmt.Errorf("create server adapter: %w", err)
			}
			a.adapter = serverAdapter
			return nil
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.err)

	root.PersistentFlags().StringVarP(&address, "address", "a", "", "server address host:port or URL (env ADAPTER_ADDRESS)")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 0, "timeout of a single request (env ADAPTER_REQUEST_TIMEOUT)")

	root.AddCommand(
		a.profilesCommand(),
		a.inventoryCommand(),
		a.auditCommand(),
		a.versionCommand(),
	)
	return root
}

func (a *App) profilesCommand() *cobra.Command {
	profiles := &cobra.Command{
		Use:   "profiles",
		Short: "Manage BIOS profiles",
		Args:  cobra.NoArgs,
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			found, err := a.adapter.GetProfiles(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(cmd, found)
		},
	}

	get := &cobra.Command{
		Use:   "get ID",
		Short: "Show one profile, null when it does not exist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			found, err := a.adapter.GetProfile(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.print(cmd, found)
		},
	}

	var name, description string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			created, err := a.adapter.CreateProfile(cmd.Context(), models.BiosProfile{Name: name, Description: description})
			if err != nil {
				return err
			}
			return a.print(cmd, created)
		},
	}
	create.Flags().StringVar(&name, "name", "", "profile name")
	create.Flags().StringVar(&description, "description", "", "profile description")
	_ = create.MarkFlagRequired("name")

	update := &cobra.Command{
		Use:   "update ID",
		Short: "Replace name and description of a profile, creating it when missing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			updated, err := a.adapter.UpdateProfile(cmd.Context(), id, models.BiosProfile{Name: name, Description: description})
			if err != nil {
				return err
			}
			return a.print(cmd, updated)
		},
	}
	update.Flags().StringVar(&name, "name", "", "profile name")
	update.Flags().StringVar(&description, "description", "", "profile description")
	_ = update.MarkFlagRequired("name")

	remove := &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Delete a profile with its settings and logs",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err = a.adapter.DeleteProfile(cmd.Context(), id); err != nil {
				return err
			}
			return a.print(cmd, map[string]int64{"deleted": id})
		},
	}

	profiles.AddCommand(list, get, create, update, remove)
	return profiles
}

func (a *App) inventoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inventory",
		Short: "List the software installed on the server host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			software, err := a.adapter.GetInstalledSoftware(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(cmd, software)
		},
	}
}

func (a *App) auditCommand() *cobra.Command {
	audit := &cobra.Command{
		Use:   "audit",
		Short: "Audit the developer environment of the server host",
		Args:  cobra.NoArgs,
	}

	lists := []struct {
		use   string
		short string
		list  func(ctx context.Context) ([]string, error)
	}{
		{"components", "Detected developer tools", func(ctx context.Context) ([]string, error) { return a.adapter.GetDetectedComponents(ctx) }},
		{"env-vars", "Environment variables, secrets masked", func(ctx context.Context) ([]string, error) { return a.adapter.GetEnvironmentVariables(ctx) }},
		{"issues", "Configuration issues", func(ctx context.Context) ([]string, error) { return a.adapter.GetIdentifiedIssues(ctx) }},
	}
	for _, l := range lists {
		audit.AddCommand(&cobra.Command{
			Use:   l.use,
			Short: l.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				items, err := l.list(cmd.Context())
				if err != nil {
					return err
				}
				return a.print(cmd, items)
			},
		})
	}

	return audit
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show client build information and the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := struct {
				Client models.AppBuildInfo `json:"client"`
				Server string              `json:"server,omitempty"`
				Error  string              `json:"error,omitempty"`
			}{Client: a.buildInfo}

			serverVersion, err := a.adapter.GetServerVersion(cmd.Context())
			if err != nil {
				a.logger.Warn().Err(err).Str("func", "*App.versionCommand").Msg("server version unavailable")
				out.Error = err.Error()
			}
			out.Server = serverVersion

			return a.print(cmd, out)
		},
	}
}

func (a *App) print(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", raw)
	}
	return id, nil
}
