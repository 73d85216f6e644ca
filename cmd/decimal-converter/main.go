// Command decimal-converter converts between fractional inches,
// decimal inches and millimeters from the terminal.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"decimal-converter/internal/convert"
	"decimal-converter/internal/logger"
	"decimal-converter/internal/reference"
	"decimal-converter/internal/service"
	"decimal-converter/internal/settings"
	"decimal-converter/internal/util"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
)

// set with -ldflags "-X main.version=..."
var version = "dev"

// CLI defines the command-line interface for decimal-converter.
type CLI struct {
	Config   string `name:"config" short:"c" help:"Config file path" type:"path" default:"config.json" env:"DECIMAL_CONVERTER_CONFIG"`
	LogLevel string `name:"log-level" help:"Override the configured log level (debug, info, warn, error)"`

	Fraction FractionCmd    `cmd:"" help:"Convert a fraction to decimal inches"`
	Inches   InchesCmd      `cmd:"" help:"Convert inches (3/8, 1 3/8 or 0.375) to millimeters"`
	MM       MillimetersCmd `cmd:"" name:"mm" help:"Convert millimeters to decimal inches and the nearest fraction"`
	Table    TableCmd       `cmd:"" help:"Print the common fractions reference table"`
	Settings SettingsGroup  `cmd:"" help:"Show or change saved preferences"`
	Version  VersionCmd     `cmd:"" help:"Print version information"`
}

// SettingsGroup contains preference operations.
type SettingsGroup struct {
	Show SettingsShowCmd `cmd:"" help:"Print the saved preferences"`
	Set  SettingsSetCmd  `cmd:"" help:"Change saved preferences"`
}

// app is bound into every command's Run
type app struct {
	out         io.Writer
	conversions service.ConversionService
	preferences service.PreferencesService
	logger      zerolog.Logger
}

// FractionCmd converts a fraction to decimal inches.
type FractionCmd struct {
	Input []string `arg:"" help:"Fraction, e.g. 3/8 or 7/16. put -- before a negative value"`
	Table bool     `help:"Also print the reference table (skipped with minimal UI)"`
}

func (c *FractionCmd) Run(a *app) error {
	out, err := a.conversions.FractionToDecimal(strings.Join(c.Input, " "))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s in = %s in\n", out.Value, out.DecimalInches)
	return a.maybeTable(c.Table, reference.FractionContext)
}

// InchesCmd converts inches to millimeters.
type InchesCmd struct {
	Input []string `arg:"" help:"Inches, e.g. 3/8, 1 3/8 or 0.375. put -- before a negative value"`
	Table bool     `help:"Also print the reference table (skipped with minimal UI)"`
}

func (c *InchesCmd) Run(a *app) error {
	out, err := a.conversions.InchesToMillimeters(strings.Join(c.Input, " "))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s in = %s mm\n", strings.Join(c.Input, " "), out.Millimeters)
	return a.maybeTable(c.Table, reference.InchesContext)
}

// MillimetersCmd converts millimeters to inches.
type MillimetersCmd struct {
	Input string `arg:"" help:"Millimeters, e.g. 25.4 or 9.525. put -- before a negative value"`
	Table bool   `help:"Also print the reference table (skipped with minimal UI)"`
}

func (c *MillimetersCmd) Run(a *app) error {
	out, err := a.conversions.MillimetersToInches(c.Input)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s mm = %s in\n", out.Millimeters, out.DecimalInches)
	fmt.Fprintf(a.out, "nearest fraction: %s in\n", out.NearestFraction)
	return a.maybeTable(c.Table, reference.MillimetersContext)
}

// TableCmd prints a reference view.
type TableCmd struct {
	Context string `arg:"" optional:"" default:"inches" help:"fraction, inches or millimeters"`
}

func (c *TableCmd) Run(a *app) error {
	return a.printTable(c.Context)
}

// SettingsShowCmd prints the saved preferences.
type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(a *app) error {
	printSettings(a.out, a.preferences.Get())
	return nil
}

// SettingsSetCmd changes saved preferences. toggles left out keep
// their saved value
type SettingsSetCmd struct {
	MinimizeToTray string `name:"minimize-to-tray" enum:"on,off,keep" default:"keep" help:"Send the desktop window to the tray when it is closed (on, off)"`
	MinimalUI      string `name:"minimal-ui" enum:"on,off,keep" default:"keep" help:"Hide reference tables (on, off)"`
}

func (c *SettingsSetCmd) Run(a *app) error {
	s := a.preferences.Get()
	if c.MinimizeToTray != "keep" {
		s.MinimizeToTray = c.MinimizeToTray == "on"
	}
	if c.MinimalUI != "keep" {
		s.MinimalUI = c.MinimalUI == "on"
	}
	saved, err := a.preferences.Update(s)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	printSettings(a.out, saved)
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(a *app) error {
	fmt.Fprintf(a.out, "decimal-converter version %s\n", version)
	return nil
}

func (a *app) maybeTable(requested bool, context reference.Context) error {
	if !requested {
		return nil
	}
	if a.preferences.Get().MinimalUI {
		a.logger.Debug().Msg("minimal UI is on, skipping reference table")
		return nil
	}
	fmt.Fprintln(a.out)
	return a.printTable(string(context))
}

func (a *app) printTable(context string) error {
	view, err := a.conversions.ReferenceView(context)
	if err != nil {
		return err
	}
	printRow(a.out, view.Headers)
	dashes := make([]string, len(view.Headers))
	for i, h := range view.Headers {
		dashes[i] = strings.Repeat("-", len(h))
	}
	printRow(a.out, dashes)
	for _, r := range view.Rows {
		printRow(a.out, r.Cells)
	}
	return nil
}

func printRow(w io.Writer, cells []string) {
	var line strings.Builder
	for _, c := range cells {
		fmt.Fprintf(&line, "%-16s", c)
	}
	fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
}

func printSettings(w io.Writer, s settings.Settings) {
	fmt.Fprintf(w, "%-18s %t\n", "minimize to tray:", s.MinimizeToTray)
	fmt.Fprintf(w, "%-18s %t\n", "minimal UI:", s.MinimalUI)
}

func newApp(cli *CLI, stdout, stderr io.Writer) (*app, error) {
	config, err := util.LoadConfig(cli.Config)
	if err != nil {
		return nil, err
	}
	levelName := config.LogLevel
	if cli.LogLevel != "" {
		levelName = cli.LogLevel
	}
	level, err := logger.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	appLogger := logger.NewConsole(stderr, level)

	grid, err := convert.GridByName(config.NearestFraction)
	if err != nil {
		return nil, err
	}
	settingsPath := config.SettingsPath
	if settingsPath == "" {
		settingsPath = settings.DefaultPath()
	}

	return &app{
		out:         stdout,
		conversions: service.NewConversionService(grid, appLogger),
		preferences: service.NewPreferencesService(settings.NewFileStore(settingsPath), appLogger),
		logger:      appLogger,
	}, nil
}

// run returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	var cli CLI
	exitCode := -1
	parser, err := kong.New(&cli,
		kong.Name("decimal-converter"),
		kong.Description("Decimal Equivalent Calculator - fractions, decimal inches and millimeters"),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exitCode = code }),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	ctx, err := parser.Parse(args)
	if exitCode >= 0 {
		// --help and friends
		return exitCode
	}
	if err != nil {
		parser.Errorf("%s", err)
		return 2
	}

	a, err := newApp(&cli, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "decimal-converter: %v\n", err)
		return 1
	}

	err = ctx.Run(a)
	if err != nil {
		var userErr service.UserError
		if errors.As(err, &userErr) {
			fmt.Fprintln(stderr, userErr.Message)
			return 1
		}
		fmt.Fprintf(stderr, "decimal-converter: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
