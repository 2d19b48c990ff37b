package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Nomadcxx/sceneparse/internal/config"
	"github.com/Nomadcxx/sceneparse/internal/parser"
	"github.com/Nomadcxx/sceneparse/internal/render"
	"github.com/Nomadcxx/sceneparse/internal/ui"
)

var (
	section    string
	jsonOutput bool
	noColor    bool
	report     bool

	// Version information (set via -ldflags during build)
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

const exampleConfig = `[output]
format = "text"  # text, json
color = true

[defaults]
section = ""  # classification hint applied when --section is not given

# Pattern extensions, keyed by canonical value:
# [patterns.sources]
# WEB = ["custom[._-]?web"]
`

var rootCmd = &cobra.Command{
	Use:   "sceneparse",
	Short: "Scene release name parser",
	Long: `sceneparse parses scene release names into structured records:
type, title, group, year, episode, source, format, resolution and more.

Examples:
  sceneparse parse Show.Name.S02E05.720p.HDTV.x264-GRP
  sceneparse parse --json Some.Movie.2020.1080p.BluRay.x264-GROUP
  cat names.txt | sceneparse batch -
  sceneparse interactive`,
}

var parseCmd = &cobra.Command{
	Use:   "parse <release-name>...",
	Short: "Parse one or more release names",
	Args:  cobra.MinimumNArgs(1),
	Run:   runParse,
}

var batchCmd = &cobra.Command{
	Use:   "batch <file|->",
	Short: "Parse names from a file or stdin, one per line",
	Args:  cobra.ExactArgs(1),
	Run:   runBatch,
}

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Inspect parses interactively in the TUI",
	Run:   runInteractive,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration file location and contents",
	Run:   runConfig,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sceneparse %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&section, "section", "", "classification hint (e.g. TV, MP3, 0DAY)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit JSON instead of text")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	batchCmd.Flags().BoolVar(&report, "report", false, "write a timestamped batch report file")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(interactiveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads the config and builds the parser bound to its knowledge base.
func setup() (*config.Config, *parser.Parser, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if section == "" {
		section = cfg.Defaults.Section
	}
	return cfg, parser.New(cfg.Taxonomy()), nil
}

func runParse(cmd *cobra.Command, args []string) {
	cfg, p, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	for i, name := range args {
		r := p.ParseWithHint(name, section)
		if jsonOutput || cfg.Output.Format == "json" {
			out, err := render.JSON(r)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(out)
			continue
		}
		if i > 0 {
			fmt.Println()
		}
		fmt.Print(render.Text(r, cfg.Output.Color && !noColor))
	}
}

func runBatch(cmd *cobra.Command, args []string) {
	cfg, p, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	input := os.Stdin
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		input = f
	}

	// Ctrl+C stops the batch between records.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	stream := render.NewStream(os.Stdout)
	asJSON := jsonOutput || cfg.Output.Format == "json"

	var results []*parser.Release
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		name := scanner.Text()
		if name == "" {
			continue
		}
		r := p.ParseWithHint(name, section)
		if asJSON {
			if err := stream.Write(ctx, r); err != nil {
				if err == context.Canceled {
					break
				}
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		} else {
			fmt.Println(r.String())
		}
		if report {
			results = append(results, r)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
	if asJSON {
		if err := stream.Flush(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if report {
		path, err := render.Generate(results)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Report saved to %s\n", path)
	}
}

func runInteractive(cmd *cobra.Command, args []string) {
	_, p, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	model := ui.NewModel(p, section)
	prog := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func runConfig(cmd *cobra.Command, args []string) {
	path, err := config.ConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Config file: %s\n\n", path)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		fmt.Println("No config file yet. Example:")
		fmt.Print(exampleConfig, "\n")
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}
