package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// logger writes diagnostics to stderr; results go to the command's stdout.
var logger = log.New(os.Stderr, "dsu: ", 0)

// newRootCmd builds the dsu command tree. Each call owns a fresh viper
// instance, so flags and config never leak between executions.
func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:           "dsu",
		Short:         "Solve union-find problems",
		Long:          "dsu reads problem files (JSON, TOML or YAML) and solves them with a disjoint-set engine.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfgFile, _ := cmd.Flags().GetString("config")
			return initConfig(v, cfgFile)
		},
	}

	cmd.PersistentFlags().String("config", "", "config file (default .dsu.yaml)")
	cmd.PersistentFlags().String("format", "json", "output format: json or text")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	_ = v.BindPFlag("format", cmd.PersistentFlags().Lookup("format"))
	_ = v.BindPFlag("verbose", cmd.PersistentFlags().Lookup("verbose"))

	cmd.AddCommand(newSolveCmd(v), newKindsCmd())

	return cmd
}

// initConfig points v at the config file and DSU_* environment.
// A missing default .dsu.yaml is fine; an explicit --config must be readable.
func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".dsu")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix("DSU")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: read: %w", err)
	}

	return nil
}

// verboseLogger returns logger when verbose is set and a discarding logger otherwise.
func verboseLogger(verbose bool) *log.Logger {
	if verbose {
		return logger
	}

	return log.New(io.Discard, "", 0)
}
