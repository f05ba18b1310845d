package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/diverger/gh-holiday/internal/app"
	"github.com/diverger/gh-holiday/internal/config"
	"github.com/diverger/gh-holiday/internal/detect"
	"github.com/diverger/gh-holiday/internal/github"
	"github.com/diverger/gh-holiday/internal/output"
)

var (
	version = "dev"
)

func main() {
	var (
		showVersion bool
		showHelp    bool
		preview     bool
		timeout     int
		jsonPath    string
	)

	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help")
	flag.BoolVar(&showHelp, "h", false, "Show help (shorthand)")
	flag.BoolVar(&preview, "preview", false, "Open the interactive palette preview")
	flag.IntVar(&timeout, "timeout", 0, "HTTP timeout in seconds (0 uses the default)")
	flag.StringVar(&jsonPath, "json", "", "Write the detection result to this JSON file")
	flag.Parse()

	if showVersion {
		fmt.Printf("gh-holiday %s\n", version)
		os.Exit(0)
	}

	if showHelp {
		printHelp()
		os.Exit(0)
	}

	if preview {
		p := tea.NewProgram(app.New(), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error running preview: %v\n", err)
			os.Exit(1)
		}

		os.Exit(0)
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting current directory: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring config: %v\n", err)
		cfg = nil
	}

	if orphans := detect.ConfigCheck(); len(orphans) > 0 {
		fmt.Fprintf(os.Stderr, "Warning: unreachable theme definitions: %v\n", orphans)
	}

	username := config.ResolveUsername(flag.Arg(0), cfg)

	opts := []github.Option{}
	if timeout > 0 {
		opts = append(opts, github.WithTimeout(time.Duration(timeout)*time.Second))
	} else if cfg != nil && cfg.TimeoutSeconds > 0 {
		opts = append(opts, github.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second))
	}
	if cfg != nil && cfg.BaseURL != "" {
		opts = append(opts, github.WithBaseURL(cfg.BaseURL))
	}

	client := github.NewClient(opts...)

	detector := detect.New(client, os.Stdout)
	detector.APIColors = github.CalendarColors

	emitter := output.NewEmitter(os.Stdout)
	if jsonPath != "" {
		emitter.JSONPath = jsonPath
	} else if cfg != nil && cfg.OutputJSON != "" && emitter.JSONPath == "" {
		emitter.JSONPath = cfg.OutputJSON
	}

	emitter.Header(username)

	res := detector.Run(context.Background(), username)

	if err := emitter.Result(res); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not write outputs: %v\n", err)
	}

	// Detection never fails the workflow: a missing theme is still a result.
	os.Exit(0)
}

func printHelp() {
	fmt.Println(`gh-holiday - GitHub contribution graph holiday theme detector

Usage:
  gh-holiday [flags] [username]

Description:
  Fetches a user's GitHub contribution graph, samples the rendered cell
  colors, and reports which holiday theme (if any) GitHub is currently
  applying. Falls back to page messages, style attributes, and a date
  calendar so a result is always produced.

Flags:
  -h, --help     Show this help message
  -v, --version  Show version
  -preview       Open the interactive palette preview
  -timeout N     HTTP timeout in seconds
  -json PATH     Write the detection result to a JSON file

Environment:
  GITHUB_USERNAME  Username to check when no argument is given
  GITHUB_OUTPUT    GitHub Actions output file (key=value pairs appended)
  OUTPUT_JSON      Path for the JSON result artifact
  GH_HOLIDAY_MODE  Initial preview mode (light or dark)

Outputs (GITHUB_OUTPUT):
  holiday_detected, theme_name, theme_description, light_color,
  dark_color, light_dots, dark_dots, detection_method`)
}
