package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/mdwtime/foundation/core/error"
	mdwlog "github.com/msto63/mdwtime/foundation/core/log"
	"github.com/msto63/mdwtime/foundation/utils/timex"
	"github.com/msto63/mdwtime/pkg/core/config"
	"github.com/msto63/mdwtime/pkg/core/logging"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "todctl",
	Short: "Tageszeit-Werkzeuge für mdwtime",
	Long: `todctl arbeitet mit Tageszeiten (Stunde, Minute, Sekunde, Millisekunde)
ohne Datum: Parsen, Rechnen im 24-Stunden-Zyklus, Umwandlung in die
native Datenbankstruktur und Verwaltung benannter Zeitfenster.

Zeiten werden als HH[:MM[:SS[.fff]]] angegeben.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: $MDWTIME_CONFIG oder ./configs/mdwtime.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output und Diagnose abgelehnter Zeiten")
}

// loadConfig loads the configuration file. Without an explicit --config a
// missing file falls back to the defaults.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}

	cfg, err := config.LoadFromEnv()
	if mdwerror.HasCode(err, mdwerror.CodeMissingConfig) {
		return config.Default(), nil
	}
	return cfg, err
}

// newLogger creates the command logger writing to stderr
func newLogger(cfg *config.Config) *mdwlog.Logger {
	lc := logging.DefaultLoggerConfig(cfg.General.Name)
	lc.Level = cfg.General.LogLevel
	lc.Format = cfg.General.LogFormat
	lc.Output = rootCmd.ErrOrStderr()
	if verbose {
		lc.Level = "debug"
	}
	return logging.NewLogger(lc)
}

// newValidator returns a validator that reports rejected times when
// diagnostics are enabled in the config or via --verbose
func newValidator(cfg *config.Config, logger *mdwlog.Logger) *timex.Validator {
	if cfg.General.Diagnostics || verbose {
		return logging.NewValidator(logger)
	}
	return timex.NewValidator(nil)
}

// setup loads config, logger and validator for a command
func setup() (*config.Config, *mdwlog.Logger, *timex.Validator, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	logger := newLogger(cfg)
	logger.Debug("config loaded", mdwlog.Fields{"store": cfg.Store.Path})
	return cfg, logger, newValidator(cfg, logger), nil
}

// parseTime parses a command argument, reporting rejections via v
func parseTime(v *timex.Validator, arg string) (timex.TimeOfDay, error) {
	t, err := v.Parse(arg)
	if err != nil {
		return timex.TimeOfDay{}, fmt.Errorf("ungültige Zeit %q: %w", arg, err)
	}
	return t, nil
}
