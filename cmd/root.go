package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/hance08/payments/internal/app"
	"github.com/hance08/payments/internal/config"
	"github.com/hance08/payments/internal/constants"
	"github.com/hance08/payments/internal/errhandler"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cli carries what every command needs once flags are parsed.
type cli struct {
	v          *viper.Viper
	cfgFile    string
	cfg        *config.Config
	migrations fs.FS
	stdout     io.Writer
	stderr     io.Writer
}

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	rootCmd := NewRootCmd(migrations, os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		errhandler.HandleError(os.Stderr, err)
		os.Exit(1)
	}
}

func NewRootCmd(migrations fs.FS, stdout, stderr io.Writer) *cobra.Command {
	c := &cli{
		v:          viper.New(),
		migrations: migrations,
		stdout:     stdout,
		stderr:     stderr,
	}

	rootCmd := &cobra.Command{
		Use:   "payments <transactions.csv>",
		Short: "payments replays a transaction file and prints client balances",
		Long: `payments reads deposits, withdrawals, disputes, resolves and chargebacks
from a CSV file in order, applies them to client accounts and writes the
final state of every account to standard output.

An input file named like a subcommand (info, runs) must be given with a
path, for example ./info.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &processRunner{cli: c}
			return runner.Run(args[0])
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.cfgFile, "config", "c", "", "set the config file path")
	flags.StringP("format", "f", config.FormatCSV, "output format (csv, table)")
	flags.Int("precision", constants.DefaultPrecision, "round printed amounts to this many decimal places (negative prints them exactly)")
	flags.String("export-db", "", "export the final snapshot to this SQLite file")
	flags.Bool("freeze-locked", false, "reject deposits and withdrawals on locked accounts")
	flags.String("log-level", "warn", "log level (trace, debug, info, warn, error, off)")

	_ = c.v.BindPFlag("output.format", flags.Lookup("format"))
	_ = c.v.BindPFlag("output.precision", flags.Lookup("precision"))
	_ = c.v.BindPFlag("export.database", flags.Lookup("export-db"))
	_ = c.v.BindPFlag("engine.freeze_locked", flags.Lookup("freeze-locked"))
	_ = c.v.BindPFlag("log.level", flags.Lookup("log-level"))

	rootCmd.AddCommand(NewInfoCmd(c))
	rootCmd.AddCommand(NewRunsCmd(c))

	return rootCmd
}

func (c *cli) initConfig() error {
	v := c.v

	if c.cfgFile != "" {
		v.SetConfigFile(c.cfgFile)
	} else {
		if appDir, err := app.AppDataDir(); err == nil {
			v.AddConfigPath(appDir)
		}
		v.SetConfigName(constants.ConfigName)
		v.SetConfigType(constants.ConfigType)
	}

	defaults := config.NewDefault()
	v.SetDefault("engine.freeze_locked", defaults.Engine.FreezeLocked)
	v.SetDefault("output.format", defaults.Output.Format)
	v.SetDefault("output.precision", defaults.Output.Precision)
	v.SetDefault("export.database", defaults.Export.Database)
	v.SetDefault("log.level", defaults.Log.Level)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv() // allow using environment variables to override

	if err := v.ReadInConfig(); err != nil {
		if c.cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg := config.NewDefault()
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}
	cfg.Output.Format = strings.ToLower(cfg.Output.Format)
	cfg.ConfigPath = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return err
	}

	c.cfg = cfg
	return nil
}
