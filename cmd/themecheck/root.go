package main

import (
	"github.com/spf13/cobra"

	"github.com/phyten/themecheck/internal/logging"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "themecheck",
		Short: "Verify WCAG contrast and color relationships of CSS themes",
		Long: `themecheck reads CSS custom properties from one stylesheet per theme variant
and checks text contrast, brand color families, light/dark polarity and
configured color pairs against WCAG 2.1 AA.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := a.logLevel
			if !cmd.Flags().Changed("log-level") {
				level = a.getenv("THEMECHECK_LOG_LEVEL")
			}
			return a.initLogging(level)
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug|info|warn|error|off (default warn)")
	root.PersistentFlags().BoolVar(&a.logJSON, "log-json", false, "write logs as JSON lines")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file (default: search for .themecheck.*)")

	root.AddCommand(newCheckCmd(a))
	root.AddCommand(newContrastCmd(a))
	root.AddCommand(newLuminanceCmd(a))
	root.AddCommand(newVarsCmd(a))
	return root
}

func (a *app) initLogging(level string) error {
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return err
	}
	logging.Init(a.stderr, lvl, a.logJSON)
	return nil
}
