// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

// schemaview renders JSON Schema files in the terminal.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/woozymasta/schemaview"
	"github.com/woozymasta/schemaview/internal/tui"
)

const (
	// dotEnvFile is loaded from working directory before flags are parsed.
	dotEnvFile = ".env"
	// bannerText is printed above report and menu output.
	bannerText = "JSON Schema Viewer"
	// fullHint points users at the raw view.
	fullHint = "Run with --full <file> to see complete JSON"
	// promptText asks for a menu choice.
	promptText = "Select a schema number (or 'q' to quit) [1]: "
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/schemaview"
	_buildTime string
)

var (
	// errNoSchemas is returned when discovery finds nothing to select.
	errNoSchemas = errors.New("no JSON schema files found")
	// errMissingFullTarget is returned when --full has no file argument.
	errMissingFullTarget = errors.New("--full requires a schema file path")
	// errQuit stops interactive selection without error exit.
	errQuit = errors.New("quit")
)

// cliOptions describes schemaview CLI flags.
type cliOptions struct {
	Full    bool   `long:"full" description:"Print complete pretty JSON of the schema file with line numbers"`
	YAML    bool   `long:"yaml" description:"With --full, print the schema as YAML"`
	Dir     string `short:"d" long:"dir" env:"SCHEMAVIEW_DIR" description:"Directory searched recursively for *.json schemas" default:"docs"`
	TUI     bool   `short:"i" long:"tui" description:"Open the interactive panel instead of printing views"`
	Repair  bool   `long:"repair" env:"SCHEMAVIEW_REPAIR" description:"Repair malformed JSON before giving up"`
	Color   string `long:"color" env:"SCHEMAVIEW_COLOR" description:"Colorize output" choice:"auto" choice:"always" choice:"never" default:"auto"`
	Verbose bool   `short:"v" long:"verbose" description:"Print debug diagnostics to stderr"`
	Version bool   `long:"version" description:"Print version information"`

	Args struct {
		Schema string `positional-arg-name:"schema" description:"Schema number from the discovery list or path to a schema file"`
	} `positional-args:"yes"`
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	programName string
	logger      *slog.Logger
	cwd         string
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "schemaview"
	}

	programName = filepath.Base(programName)
	cwd, _ := os.Getwd()
	runner := cliRunner{
		programName: programName,
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
		cwd:         cwd,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	if err := loadDotEnv(dotEnvFile); err != nil {
		writeCLIError(runner.stderr, err)
		return 1
	}

	options, err := parseCLIArgs(args, runner.programName)
	if err == nil {
		err = runner.execute(options)
	}

	if err == nil || errors.Is(err, errQuit) {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// execute runs the mode selected by parsed options.
func (runner *cliRunner) execute(options *cliOptions) error {
	if options.Version {
		runner.printVersionInfo()
		return nil
	}

	runner.logger = newLogger(runner.stderr, options.Verbose)
	painter := newPainter(runner.stdout, options.Color)
	target := strings.TrimSpace(options.Args.Schema)

	if options.Full {
		if target == "" {
			return errMissingFullTarget
		}

		doc, err := runner.load(target, options.Repair)
		if err != nil {
			return err
		}

		return runner.writeFull(doc, options.YAML, painter)
	}

	path, err := runner.resolveTarget(target, options.Dir, painter)
	if err != nil {
		return err
	}

	doc, err := runner.load(path, options.Repair)
	if err != nil {
		return err
	}

	if options.TUI {
		return tui.Run(doc, tui.Options{})
	}

	return runner.writeReport(doc, painter)
}

// resolveTarget maps positional argument to schema file path.
// Discovery runs only when schema is chosen by number.
func (runner *cliRunner) resolveTarget(target, dir string, painter schemaview.Painter) (string, error) {
	if target != "" && !schemaview.IsNumericChoice(target) {
		return target, nil
	}

	files, err := runner.discover(dir)
	if err != nil {
		return "", err
	}

	if target == "" {
		writeBanner(runner.stdout, painter)
		if err := schemaview.WriteSchemaMenu(runner.stdout, files, runner.cwd, painter); err != nil {
			return "", err
		}

		choice, err := runner.prompt()
		if err != nil {
			return "", err
		}

		target = choice
	}

	file, err := schemaview.SelectSchema(files, target)
	if err != nil {
		return "", err
	}

	runner.logger.Debug("schema selected", "choice", target, "path", file.Path)
	return file.Path, nil
}

// discover lists schemas and rejects empty result.
func (runner *cliRunner) discover(dir string) ([]schemaview.SchemaFile, error) {
	files, err := schemaview.Discover(dir)
	if err != nil {
		return nil, err
	}

	runner.logger.Debug("schemas discovered", "dir", dir, "count", len(files))
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %q", errNoSchemas, dir)
	}

	return files, nil
}

// prompt reads one menu choice from stdin. Empty input picks the first schema.
func (runner *cliRunner) prompt() (string, error) {
	if _, err := io.WriteString(runner.stdout, "\n"+promptText); err != nil {
		return "", err
	}

	line, err := bufio.NewReader(runner.stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read selection: %w", err)
	}

	choice := strings.TrimSpace(line)
	if errors.Is(err, io.EOF) && choice == "" {
		return "", errQuit
	}

	if strings.EqualFold(choice, "q") {
		return "", errQuit
	}

	if choice == "" {
		return "1", nil
	}

	return choice, nil
}

// load reads one schema file and reports repair.
func (runner *cliRunner) load(path string, repair bool) (schemaview.Document, error) {
	runner.logger.Debug("loading schema", "path", path, "repair", repair)

	doc, err := schemaview.LoadFile(path, schemaview.LoadOptions{Repair: repair})
	if err != nil {
		return schemaview.Document{}, err
	}

	if doc.Repaired {
		runner.logger.Warn("schema loaded after JSON repair", "path", path)
	}

	return doc, nil
}

// writeFull prints complete document as numbered JSON or YAML.
func (runner *cliRunner) writeFull(doc schemaview.Document, asYAML bool, painter schemaview.Painter) error {
	if asYAML {
		data, err := schemaview.EncodeYAML(doc.Root)
		if err != nil {
			return err
		}

		if _, err := runner.stdout.Write(data); err != nil {
			return fmt.Errorf("write yaml to stdout: %w", err)
		}

		return nil
	}

	header := fmt.Sprintf("%s (%s)", doc.Path, schemaview.FormatSize(doc.Size))
	if _, err := fmt.Fprintf(runner.stdout, "%s\n\n", painter.Paint(schemaview.StyleHeading, header)); err != nil {
		return fmt.Errorf("write json to stdout: %w", err)
	}

	if err := schemaview.WritePrettyJSON(runner.stdout, doc.Root, painter, true); err != nil {
		return fmt.Errorf("write json to stdout: %w", err)
	}

	return nil
}

// reportSection is one titled block of the report.
type reportSection struct {
	title string
	write func(io.Writer) error
}

// writeReport prints banner, overview, properties, tree and examples.
func (runner *cliRunner) writeReport(doc schemaview.Document, painter schemaview.Painter) error {
	return writeSections(runner.stdout, painter, reportSections(doc, painter))
}

// reportSections lists report blocks for document in print order.
func reportSections(doc schemaview.Document, painter schemaview.Painter) []reportSection {
	sections := []reportSection{
		{write: func(w io.Writer) error {
			writeBanner(w, painter)
			return schemaview.WriteOverview(w, doc, painter)
		}},
		{title: "Properties", write: func(w io.Writer) error {
			return schemaview.WritePropertiesTable(w, doc.Root, painter)
		}},
		{title: "Tree View", write: func(w io.Writer) error {
			return schemaview.WriteTree(w, schemaview.BuildTree(doc.Root, schemaview.TreeOptions{}), painter)
		}},
	}

	if examples := schemaview.CollectExamples(doc.Root); len(examples) > 0 {
		sections = append(sections, reportSection{title: "Examples", write: func(w io.Writer) error {
			return schemaview.WriteExamples(w, examples, painter)
		}})
	}

	return sections
}

// writeSections prints sections followed by the raw view hint.
// Output written before a failing section is kept.
func writeSections(w io.Writer, painter schemaview.Painter, sections []reportSection) error {
	out := bufio.NewWriter(w)
	defer func() { _ = out.Flush() }()

	for _, section := range sections {
		if section.title != "" {
			writeSection(out, painter, section.title)
		}

		if err := section.write(out); err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintf(out, "\n%s\n", painter.Paint(schemaview.StyleHint, fullHint))
	if err := out.Flush(); err != nil {
		return fmt.Errorf("write report to stdout: %w", err)
	}

	return nil
}

// writeBanner prints program banner.
func writeBanner(w io.Writer, painter schemaview.Painter) {
	rule := strings.Repeat("=", len(bannerText)+4)
	_, _ = fmt.Fprintf(w, "%s\n%s\n%s\n\n",
		painter.Paint(schemaview.StyleBanner, rule),
		painter.Paint(schemaview.StyleBanner, "  "+bannerText),
		painter.Paint(schemaview.StyleBanner, rule),
	)
}

// writeSection prints section heading.
func writeSection(w io.Writer, painter schemaview.Painter, title string) {
	_, _ = fmt.Fprintf(w, "\n%s\n\n", painter.Paint(schemaview.StyleHeading, title))
}

// newLogger creates stderr text logger; verbose enables debug level.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newPainter selects colour theme or plain output for w.
func newPainter(w io.Writer, mode string) schemaview.Painter {
	switch mode {
	case "never":
		return schemaview.PlainPainter{}
	case "always":
		renderer := lipgloss.NewRenderer(w)
		renderer.SetColorProfile(termenv.ANSI256)
		return schemaview.NewTheme(renderer)
	default:
		if !isTerminal(w) {
			return schemaview.PlainPainter{}
		}

		return schemaview.NewTheme(lipgloss.NewRenderer(w))
	}
}

// isTerminal reports whether w is a terminal file.
func isTerminal(w io.Writer) bool {
	file, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// loadDotEnv loads optional env file; existing variables win.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}

	return nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments into options.
func parseCLIArgs(args []string, programName string) (*cliOptions, error) {
	options := &cliOptions{}

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = programName
	parser.LongDescription = strings.TrimSpace(fmt.Sprintf(`
View JSON Schema files in the terminal.
Without arguments, lists schemas found under --dir and asks which one to open.
A number selects from that list; any other argument is a file path.

Examples:
> $ %s
> $ %s 2
> $ %s docs/config.schema.json
> $ %s --full --yaml docs/config.schema.json
> $ %s -i docs/config.schema.json
`, programName, programName, programName, programName, programName))

	rest, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}

	if len(rest) > 0 {
		return nil, &flags.Error{
			Type:    flags.ErrUnknown,
			Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(rest, " ")),
		}
	}

	return options, nil
}

// printVersionInfo writes build metadata.
func (runner *cliRunner) printVersionInfo() {
	_, _ = fmt.Fprintf(runner.stdout, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
