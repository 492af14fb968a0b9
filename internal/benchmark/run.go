// internal/benchmark/run.go
package benchmark

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/fatih/color"
	progressbar "github.com/schollz/progressbar/v3"

	"github.com/mwiater/balbis/internal/appconfig"
	"github.com/mwiater/balbis/internal/endpoint"
	"github.com/mwiater/balbis/internal/logging"
	"github.com/mwiater/balbis/internal/recipe"
	"github.com/mwiater/balbis/internal/util"
)

var failedResult = color.New(color.FgRed).SprintFunc()
var warningResult = color.New(color.FgYellow).SprintFunc()

// Options carry per-run switches from the command line.
type Options struct {
	DryRun bool
	Warmup bool
}

var (
	waitForModelFn = func(ctx context.Context, client *endpoint.Client) (string, error) {
		return client.WaitForModel(ctx)
	}
	warmupFn = func(ctx context.Context, client *endpoint.Client, model string) error {
		return client.Warmup(ctx, model)
	}
	runCommandFn = runCommand
)

// Run launches the benchmark described by a recipe and returns the exit
// code the launcher should terminate with. Operator-facing progress is
// printed directly; request-level detail goes to the log.
func Run(ctx context.Context, cfg *appconfig.Config, rec *recipe.Recipe, opts Options) int {
	if err := recipe.Normalize(rec); err != nil {
		fmt.Println(failedResult(fmt.Sprintf("Error: %v", err)))
		return 1
	}

	if !rec.Benchmark.Enabled {
		fmt.Println(failedResult("Error: benchmark.enabled is false (or benchmark block is missing) in recipe"))
		return 1
	}

	if opts.DryRun {
		cmd := Build(rec, PlaceholderModel)
		fmt.Println("\n=== Running Benchmark ===")
		fmt.Println(util.ShellJoin(cmd))
		return 0
	}

	client := endpoint.New(cfg, rec.BaseURL())
	fmt.Printf("Waiting for endpoint readiness: %s (timeout: %ds)\n", client.ModelsURL(), int(client.WaitTimeout().Seconds()))

	// The spinner appears only once a probe has failed, so an endpoint
	// that is already serving produces no waiting output at all.
	var bar *progressbar.ProgressBar
	if !cfg.Debug {
		client.Notify = func(attempt int, err error) {
			if bar == nil {
				bar = progressbar.Default(-1, util.TruncateRunes("Polling "+client.ModelsURL(), 64))
			}
			_ = bar.Add(1)
		}
	}

	model, err := waitForModelFn(ctx, client)
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		var waitErr *endpoint.WaitError
		if errors.As(err, &waitErr) {
			fmt.Printf("Timed out waiting for endpoint/model: %s\n", waitErr.URL)
			fmt.Printf("Last probe error: %v\n", waitErr.LastErr)
		}
		fmt.Println(failedResult("Error: Could not resolve model from /v1/models."))
		return 1
	}

	if opts.Warmup {
		fmt.Printf("Warming up model %s...\n", model)
		if err := warmupFn(ctx, client, model); err != nil {
			logging.LogEvent("Warmup failed for model %s: %v", model, err)
			fmt.Println(warningResult(fmt.Sprintf("Warning: model warmup failed: %v", err)))
		}
	}

	cmd := Build(rec, model)
	fmt.Println("\n=== Running Benchmark ===")
	fmt.Printf("Using model from /v1/models: %s\n", model)
	fmt.Println("Benchmark command (resolved):")
	fmt.Println(util.ShellJoin(cmd))
	logging.LogEvent("Executing benchmark: %s", util.ShellJoin(cmd))

	code, err := runCommandFn(ctx, cmd[0], cmd[1:])
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			fmt.Println(failedResult("Error: llama-benchy not found in PATH. You can install with 'uv pip install -U llama-benchy'"))
			return 1
		}
		fmt.Println(failedResult(fmt.Sprintf("Error: %v", err)))
		return 1
	}
	logging.LogEvent("Benchmark process exited with code %d", code)
	return code
}

// runCommand executes the benchmark process attached to the launcher's
// stdio so its progress output reaches the operator directly. The
// returned code is the child's own exit code; err is only non-nil when
// the process could not run at all.
func runCommand(ctx context.Context, name string, args []string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode(), nil
	}
	return 1, err
}
