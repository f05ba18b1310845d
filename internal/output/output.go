// Package output serializes a detection result into the structured run log,
// the GitHub Actions output file, and an optional JSON artifact.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/diverger/gh-holiday/internal/detect"
)

// Environment variables honored by the emitter. GITHUB_OUTPUT is set by the
// Actions runner; OUTPUT_JSON is this tool's own knob.
const (
	GitHubOutputEnv = "GITHUB_OUTPUT"
	JSONOutputEnv   = "OUTPUT_JSON"
)

// Emitter writes a detection result to every configured sink. The downstream
// SVG generator reads the key=value sink, so field names and value formats
// are a compatibility contract.
type Emitter struct {
	Out io.Writer

	// GitHubOutputPath, when non-empty, receives key=value lines appended in
	// the Actions output format.
	GitHubOutputPath string

	// JSONPath, when non-empty, receives the result as an indented JSON file.
	JSONPath string

	Now func() time.Time
}

// NewEmitter builds an emitter writing the run log to out, with sink paths
// taken from the environment.
func NewEmitter(out io.Writer) *Emitter {
	return &Emitter{
		Out:              out,
		GitHubOutputPath: os.Getenv(GitHubOutputEnv),
		JSONPath:         os.Getenv(JSONOutputEnv),
		Now:              time.Now,
	}
}

// Header prints the run preamble: target identifier and timestamp.
func (e *Emitter) Header(username string) {
	fmt.Fprintf(e.Out, "Checking GitHub profile for holiday theme: %s\n", username)
	fmt.Fprintf(e.Out, "Run started at %s\n", e.Now().UTC().Format(time.RFC3339))
}

// Result writes the final record to the run log and to every configured
// sink. Sink failures are reported but do not abort the remaining sinks; the
// run log always carries the result.
func (e *Emitter) Result(res detect.Result) error {
	blob, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	fmt.Fprintf(e.Out, "\nDetection result:\n%s\n", blob)

	var firstErr error

	if e.GitHubOutputPath != "" {
		if err := e.appendGitHubOutput(res); err != nil {
			firstErr = fmt.Errorf("write %s: %w", e.GitHubOutputPath, err)
		}
	}

	if e.JSONPath != "" {
		if err := os.WriteFile(e.JSONPath, append(blob, '\n'), 0o644); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("write %s: %w", e.JSONPath, err)
		}
	}

	return firstErr
}

func (e *Emitter) appendGitHubOutput(res detect.Result) error {
	f, err := os.OpenFile(e.GitHubOutputPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	for _, field := range outputFields(res) {
		if _, err := fmt.Fprintf(f, "%s=%s\n", field.key, escapeValue(field.value)); err != nil {
			f.Close()
			return err
		}
	}

	return f.Close()
}

type field struct {
	key   string
	value string
}

// outputFields flattens a result into ordered key=value pairs. Booleans are
// rendered as the literal tokens true/false; the extracted colors map is
// serialized as JSON.
func outputFields(res detect.Result) []field {
	fields := []field{
		{"holiday_detected", strconv.FormatBool(res.HolidayDetected)},
		{"theme_name", res.ThemeName},
		{"theme_description", res.ThemeDescription},
		{"light_color", res.LightColor},
		{"dark_color", res.DarkColor},
		{"light_dots", res.LightDots},
		{"dark_dots", res.DarkDots},
		{"detection_method", res.DetectionMethod},
	}

	if len(res.ExtractedColors) > 0 {
		blob, err := json.Marshal(res.ExtractedColors)
		if err == nil {
			fields = append(fields, field{"extracted_colors", string(blob)})
		}
	}

	return fields
}

// escapeValue applies the Actions output-file escaping rules.
func escapeValue(v string) string {
	v = strings.ReplaceAll(v, "%", "%25")
	v = strings.ReplaceAll(v, "\n", "%0A")
	v = strings.ReplaceAll(v, "\r", "%0D")

	return v
}
