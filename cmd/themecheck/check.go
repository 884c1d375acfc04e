package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phyten/themecheck/internal/config"
	"github.com/phyten/themecheck/internal/engine"
	"github.com/phyten/themecheck/internal/logging"
	"github.com/phyten/themecheck/internal/report"
	"github.com/phyten/themecheck/internal/termcolor"
)

type checkFlags struct {
	output       string
	color        string
	strict       bool
	hueTolerance float64
	mutedMin     float64
	only         []string
	fields       string
	out          string
	open         bool
	truncate     int
	title        string
}

func newCheckCmd(a *app) *cobra.Command {
	var f checkFlags
	cmd := &cobra.Command{
		Use:   "check [light.css [dark.css ...]]",
		Short: "Run every theme check and print a report",
		Long: `Run the theme checks. Stylesheets given as arguments replace the files of
the configured variants in order; without a config file the first is the
light variant and the second the dark one.

Exit status is 1 when any check fails (or is skipped, with --strict) and 2
on a usage or configuration error.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd, args, f)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.output, "output", "o", "", "output format: table|json|ndjson|csv|markdown|html")
	fl.StringVar(&f.color, "color", "", "colorize the table: auto|always|never")
	fl.BoolVar(&f.strict, "strict", false, "treat skipped checks as failures")
	fl.Float64Var(&f.hueTolerance, "hue-tolerance", 0, "maximum hue drift of a family variant from its base, in degrees (default 30)")
	fl.Float64Var(&f.mutedMin, "muted-min", 0, "minimum luminance of muted text on dark variants (default 0.3)")
	fl.StringSliceVar(&f.only, "only", nil, "run only checks with these IDs or prefixes (repeatable, comma separated)")
	fl.StringVar(&f.fields, "fields", "", "columns for table/csv/markdown, e.g. status,check,subject,value")
	fl.StringVar(&f.out, "out", "", "write the report to a file instead of stdout")
	fl.BoolVar(&f.open, "open", false, "open the HTML report in a browser (implies --output html)")
	fl.IntVar(&f.truncate, "truncate", 0, "cut table messages to this many cells (0 keeps them whole)")
	fl.StringVar(&f.title, "title", "", "title of the HTML report")
	return cmd
}

// flagLayer turns the flags the user actually set into a config layer.
func (f checkFlags) flagLayer(cmd *cobra.Command) config.CheckConfig {
	var layer config.CheckConfig
	changed := cmd.Flags().Changed
	if changed("output") {
		layer.Output = &f.output
	}
	if f.open && !changed("output") {
		html := "html"
		layer.Output = &html
	}
	if changed("color") {
		layer.Color = &f.color
	}
	if changed("strict") {
		layer.Strict = &f.strict
	}
	if changed("hue-tolerance") {
		layer.HueTolerance = &f.hueTolerance
	}
	if changed("muted-min") {
		layer.MutedMinLuminance = &f.mutedMin
	}
	if changed("only") {
		only := append([]string(nil), f.only...)
		layer.Only = &only
	}
	return layer
}

func (a *app) runCheck(cmd *cobra.Command, args []string, f checkFlags) error {
	log := logging.Component("cli")

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	envLayer, err := config.FromEnv(a.getenv)
	if err != nil {
		return err
	}
	flagLayer := f.flagLayer(cmd)
	// --log-level is a persistent flag, so it lives on app.
	if cmd.Flags().Changed("log-level") {
		flagLayer.LogLevel = &a.logLevel
	}
	settings, err := config.Normalize(config.MergeSettings(config.DefaultSettings(), cfg.Check, envLayer, flagLayer))
	if err != nil {
		return err
	}
	if err := a.initLogging(settings.LogLevel); err != nil {
		return err
	}
	if f.open && settings.Output != "html" {
		return fmt.Errorf("--open needs --output html, got %s", settings.Output)
	}
	fields, err := report.ResolveFields(f.fields)
	if err != nil {
		return err
	}

	theme, err := cfg.Theme(args)
	if err != nil {
		return err
	}
	rep, err := engine.Run(theme, settings.EngineOptions())
	if err != nil {
		return err
	}

	out := a.stdout
	outPath := f.out
	if outPath == "" && f.open {
		tmp, err := os.CreateTemp("", "themecheck-*.html")
		if err != nil {
			return err
		}
		outPath = tmp.Name()
		if err := tmp.Close(); err != nil {
			return err
		}
	}
	var file *os.File
	if outPath != "" {
		file, err = os.Create(outPath)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}

	opts := report.Options{
		Format: settings.Output,
		Fields: fields,
		Table:  a.tableStyle(settings.Color, out, f.truncate),
		Title:  f.title,
	}
	if err := report.Write(out, rep, opts); err != nil {
		return err
	}
	if file != nil {
		if err := file.Close(); err != nil {
			return err
		}
		log.Debug().Str("path", outPath).Msg("report written")
	}
	if f.open {
		if err := a.openFile(outPath); err != nil {
			return fmt.Errorf("open %s: %w", outPath, err)
		}
	}

	if rep.Failed(settings.Strict) {
		return errChecksFailed
	}
	return nil
}

// loadConfig finds and reads the config file. Having none is fine.
func (a *app) loadConfig() (config.Config, error) {
	log := logging.Component("config")
	explicit := strings.TrimSpace(a.configPath)
	if explicit == "" {
		explicit = a.getenv(config.EnvConfigPath)
	}
	cwd, err := a.getwd()
	if err != nil {
		return config.Config{}, err
	}
	path, where, err := config.Find(cwd, explicit, a.getenv("XDG_CONFIG_HOME"), a.getenv("HOME"))
	if err != nil {
		return config.Config{}, err
	}
	if path == "" {
		log.Debug().Msg("no config file found, using the built-in layout")
		return config.Config{}, nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	log.Debug().Str("path", path).Str("where", where).Msg("config loaded")
	return cfg, nil
}

func (a *app) tableStyle(colorMode string, out io.Writer, truncate int) report.TableStyle {
	env := termcolor.EnvMap(a.environ())
	mode, _ := termcolor.ParseMode(colorMode)
	if mode == termcolor.ModeAuto {
		f, _ := out.(*os.File)
		mode = termcolor.DetectMode(f, env)
	}
	return report.TableStyle{
		Color:      mode == termcolor.ModeAlways,
		Scheme:     termcolor.DetectScheme(env),
		Profile:    termcolor.DetectProfile(env),
		MaxMessage: truncate,
	}
}
