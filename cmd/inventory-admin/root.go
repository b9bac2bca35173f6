package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/iyhunko/treko-inventory/internal/config"
	"github.com/iyhunko/treko-inventory/internal/logger"
	"github.com/iyhunko/treko-inventory/internal/panel"
	"github.com/iyhunko/treko-inventory/internal/store"
	"github.com/spf13/cobra"
)

// app carries what every subcommand shares.
type app struct {
	in  io.Reader
	out io.Writer

	conf    *config.AdminConfig
	client  *store.Client
	gate    *panel.Gate
	logFile io.Closer

	// flag values, applied over the environment when set
	apiURL   string
	timeout  time.Duration
	code     string
	name     string
	password string
	logPath  string
	debug    bool
}

func newApp(in io.Reader, out io.Writer) *app {
	return &app{in: in, out: out}
}

// execute runs the command line and releases the log file afterwards.
// Cobra skips post-run hooks when a command fails, so the close lives here.
func (a *app) execute(args []string, errOut io.Writer) error {
	cmd := a.rootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(a.out)
	cmd.SetErr(errOut)
	err := cmd.Execute()
	if a.logFile != nil {
		if cerr := a.logFile.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing log file: %w", cerr)
		}
	}
	return err
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "inventory-admin",
		Short: "TREKO inventory administration panel",
		Long: `Administers the product catalog of the TREKO inventory API.

Run without arguments to open the interactive panel. The subcommands run a
single operation after logging in with the configured employee.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runTUI,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.apiURL, "api-url", "", "inventory API base URL (env "+config.AdminAPIURLEnv+")")
	flags.DurationVar(&a.timeout, "timeout", 0, "per-request timeout (env "+config.AdminTimeoutEnv+")")
	flags.StringVar(&a.code, "employee-code", "", "employee code (env "+config.AdminCodeEnv+")")
	flags.StringVar(&a.name, "employee-name", "", "employee name (env "+config.AdminNameEnv+")")
	flags.StringVar(&a.password, "password", "", "employee password (env "+config.AdminPasswordEnv+")")
	flags.StringVar(&a.logPath, "log-file", "", "log file (env "+config.AdminLogFileEnv+")")
	flags.BoolVar(&a.debug, "debug", false, "log debug records")

	rootCmd.AddCommand(
		a.newListCmd(),
		a.newCreateCmd(),
		a.newUpdateCmd(),
		a.newDeleteCmd(),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	conf, err := config.LoadAdminFromEnv()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("api-url") {
		conf.APIURL = a.apiURL
	}
	if flags.Changed("timeout") {
		conf.Timeout = a.timeout
	}
	if flags.Changed("employee-code") {
		conf.Code = a.code
	}
	if flags.Changed("employee-name") {
		conf.Name = a.name
	}
	if flags.Changed("password") {
		conf.Password = a.password
	}
	if flags.Changed("log-file") {
		conf.LogFile = a.logPath
	}
	if flags.Changed("debug") {
		conf.DebugMode = a.debug
	}
	a.conf = conf

	// stdout belongs to the UI and to command output
	a.logFile, err = logger.InitFileLogger(conf.LogFile, conf.DebugMode)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	a.client = store.NewClient(conf.APIURL, conf.Timeout)
	a.gate = panel.NewGate(a.client)
	slog.Debug("admin configured", slog.String("api_url", conf.APIURL), slog.Duration("timeout", conf.Timeout))
	return nil
}

// login opens the session gate with the configured employee.
func (a *app) login(ctx context.Context) error {
	form := panel.NewLoginForm(a.client, a.gate)
	if err := form.Submit(ctx, a.conf.Code, a.conf.Name, a.conf.Password); err != nil {
		return errors.New(form.Message())
	}
	return nil
}

// session logs in and returns a Manager with the catalog loaded.
func (a *app) session(ctx context.Context) (*panel.Manager, error) {
	if err := a.login(ctx); err != nil {
		return nil, err
	}
	mgr := panel.NewManager(a.client)
	if err := mgr.Load(ctx); err != nil {
		return nil, errors.New(mgr.Err())
	}
	return mgr, nil
}
