package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/switchboard/internal/config"
	"github.com/zjrosen/switchboard/internal/log"
)

var (
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "switchboard",
	Short: "Capability-based dispatch registry",
	Long: `Switchboard wires interchangeable variants (route calculators, message
senders, document devices) into dispatchers that forward to whichever
variant is currently bound. Conformance is checked when a binding is made,
and bindings can be swapped at any time without touching caller code.`,
}

// SetVersion sets the version string shown by --version.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .switchboard/config.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false,
		"enable debug logging to .switchboard/debug.log")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("route.strategy", defaults.Route.Strategy)
	viper.SetDefault("notify.channel", defaults.Notify.Channel)
	viper.SetDefault("notify.email_from", defaults.Notify.EmailFrom)
	viper.SetDefault("cache.enabled", defaults.Cache.Enabled)
	viper.SetDefault("cache.ttl", defaults.Cache.TTL)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)
	viper.SetDefault("tracing.service_name", defaults.Tracing.ServiceName)
	viper.SetDefault("debug", defaults.Debug)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .switchboard/config.yaml (current directory)
		// 2. ~/.config/switchboard/config.yaml (user config)
		if _, err := os.Stat(".switchboard/config.yaml"); err == nil {
			viper.SetConfigFile(".switchboard/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "switchboard"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create a default one.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".switchboard/config.yaml"
			if writeErr := config.WriteDefault(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults.
		}
	}

	_ = viper.Unmarshal(&cfg)

	if cfg.Debug || os.Getenv("SWITCHBOARD_DEBUG") != "" {
		if err := os.MkdirAll(".switchboard", 0755); err == nil {
			// The cleanup closes the file on process exit anyway.
			_, _ = log.Init(filepath.Join(".switchboard", "debug.log"))
		}
	}
}

// loadConfig re-reads the config file into a fresh Config. Used by the
// watch loop after a change signal.
func loadConfig() (config.Config, error) {
	if err := viper.ReadInConfig(); err != nil {
		return config.Config{}, err
	}
	var fresh config.Config
	if err := viper.Unmarshal(&fresh); err != nil {
		return config.Config{}, err
	}
	if err := fresh.Validate(); err != nil {
		return config.Config{}, err
	}
	return fresh, nil
}
