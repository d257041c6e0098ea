package main

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/kbukum/ergolog/config"
	"github.com/kbukum/ergolog/logger"
)

type commandContext struct {
	configFile string
	envFile    string
	root       string
	level      string
	noColors   bool
	noTime     bool
	pause      time.Duration

	cfg logger.Config
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "ergolog",
		Short:         "Tagged console logging demo",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations["skipConfigLoad"] == "true" {
				return nil
			}
			return ctx.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), ctx.pause)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&ctx.configFile, "config", "c", "", "Configuration file path")
	flags.StringVar(&ctx.envFile, "env-file", "", "Path to a .env file")
	flags.StringVar(&ctx.root, "root", "", "Root logger name")
	flags.StringVar(&ctx.level, "level", "", "Minimum level (debug, info, warning, error, critical)")
	flags.BoolVar(&ctx.noColors, "no-colors", false, "Disable ANSI colors")
	flags.BoolVar(&ctx.noTime, "no-time", false, "Omit timestamps")
	flags.DurationVar(&ctx.pause, "pause", 500*time.Millisecond, "Work simulated inside the timer examples")

	rootCmd.AddCommand(newDemoCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// setup loads the configuration, applies flag overrides and installs the
// global logger writing to the command's output.
func (c *commandContext) setup(cmd *cobra.Command) error {
	var opts []config.LoaderOption
	if c.configFile != "" {
		opts = append(opts, config.WithConfigFile(c.configFile))
	}
	if c.envFile != "" {
		opts = append(opts, config.WithEnvFile(c.envFile))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("root") {
		cfg.Root = c.root
	}
	if flags.Changed("level") {
		cfg.Level = c.level
	}
	if flags.Changed("no-colors") {
		cfg.NoColors = c.noColors
	}
	if flags.Changed("no-time") {
		cfg.NoTime = c.noTime
	}

	var out io.Writer = cmd.OutOrStdout()
	if cfg.Output == "stderr" {
		out = cmd.ErrOrStderr()
	}
	if err := logger.Init(cfg, logger.WithWriter(out)); err != nil {
		return err
	}
	c.cfg = logger.Default().Config()
	return nil
}
