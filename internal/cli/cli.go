package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/minatsilvester/hedwig/internal/executor"
	"github.com/minatsilvester/hedwig/internal/keybinds"
	"github.com/minatsilvester/hedwig/internal/state"
	"github.com/minatsilvester/hedwig/internal/types"
)

// Output formats accepted by Send
const (
	FormatBody = "body"
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// isInteractive checks if stdin is a terminal (not piped)
func isInteractive() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// SendOptions contains options for sending a request in CLI mode
type SendOptions struct {
	Method       string
	URL          string
	OutputFormat string // body, text, json, yaml
	ChooseMethod bool   // pick the method from a list when stdin is a terminal
	Out          io.Writer
}

// Result is the outcome of a CLI send, as printed in the json and yaml formats
type Result struct {
	Method   string `json:"method" yaml:"method"`
	URL      string `json:"url" yaml:"url"`
	Response string `json:"response" yaml:"response"`
	Duration int64  `json:"durationMs" yaml:"durationMs"`
	Size     int    `json:"size" yaml:"size"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Send executes one request through a single-entry state, the same path
// the TUI takes, and writes the result to opts.Out
func Send(ctx context.Context, exec executor.Executor, opts SendOptions) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	method := opts.Method
	if opts.ChooseMethod && isInteractive() {
		chosen, err := PromptMethod(method)
		if err != nil {
			return err
		}
		method = chosen
	}

	// the state hides executor errors in the response text, so keep the cause
	var sendErr error
	capture := executor.Func(func(ctx context.Context, method, url string) (string, error) {
		body, err := exec.Execute(ctx, method, url)
		sendErr = err
		return body, err
	})

	s := state.New(types.Request{Name: opts.URL, URL: opts.URL, Method: method})
	start := time.Now()
	s.Send(ctx, capture)
	duration := time.Since(start)

	req, _ := s.SelectedRequest()
	result := &Result{
		Method:   executor.NormalizeMethod(method),
		URL:      opts.URL,
		Response: req.ResponseText(),
		Duration: duration.Milliseconds(),
	}
	if sendErr != nil {
		result.Response = ""
		result.Error = sendErr.Error()
	} else {
		result.Size = len(result.Response)
	}

	output, err := formatOutput(result, opts.OutputFormat)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	fmt.Fprint(opts.Out, output)

	if sendErr != nil {
		return fmt.Errorf("request failed: %w", sendErr)
	}
	return nil
}

// formatOutput formats the result based on the output format
func formatOutput(result *Result, format string) (string, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil

	case FormatYAML:
		data, err := yaml.Marshal(result)
		if err != nil {
			return "", err
		}
		return string(data), nil

	case FormatText:
		var sb strings.Builder

		sb.WriteString(fmt.Sprintf("%s %s\n", result.Method, result.URL))
		sb.WriteString(fmt.Sprintf("Duration: %s | Size: %s\n",
			executor.FormatDuration(result.Duration),
			executor.FormatSize(result.Size)))

		if result.Response != "" {
			sb.WriteString("\n")
			sb.WriteString(result.Response)
			sb.WriteString("\n")
		}

		if result.Error != "" {
			sb.WriteString(fmt.Sprintf("\n%sError: %s%s\n", colorRed, result.Error, colorReset))
		}

		return sb.String(), nil

	case FormatBody, "":
		if result.Error != "" {
			return "", nil
		}
		return result.Response + "\n", nil
	}

	return "", fmt.Errorf("unknown output format %q (use body, text, json, or yaml)", format)
}

// ANSI color codes
const (
	colorReset = "\x1b[0m"
	colorRed   = "\x1b[31m"
)

// PrintKeys writes the registry as a keybinds config followed by its validation results
func PrintKeys(out io.Writer, registry *keybinds.Registry) error {
	data, err := yaml.Marshal(keybinds.ExportConfig(registry))
	if err != nil {
		return fmt.Errorf("failed to encode keybinds: %w", err)
	}

	fmt.Fprint(out, string(data))
	fmt.Fprintln(out)
	fmt.Fprintln(out, keybinds.NewValidator().ValidateRegistry(registry).String())
	return nil
}
