// Package local renders documents by shelling out to the rendercv CLI. The
// CLI is known to exit non-zero on some platforms even after producing a
// perfectly good PDF, so success is judged by the artifacts on disk rather
// than the exit code: the run fails only when the output folder or the PDF
// inside it never appears.
package local

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/goliatone/go-cvgen/pkg/render"
)

// Name identifies this client in the render registry.
const Name = "local"

const (
	defaultTimeout = 60 * time.Second
	healthTimeout  = 5 * time.Second
	inputFilename  = "cv.yaml"
	outputFolder   = "rendercv_output"
)

// RunFunc executes the CLI in dir and returns captured output. Split out so
// tests can fake the tool.
type RunFunc func(ctx context.Context, dir string, name string, args ...string) (stdout, stderr string, err error)

// Client drives the rendercv CLI. Each render runs in a fresh scratch
// directory (removed afterwards) unless a fixed output directory is
// configured, so a PDF left over from an earlier run can never be mistaken
// for this run's result.
type Client struct {
	command []string
	timeout time.Duration
	dir     string
	run     RunFunc
	logger  *slog.Logger
}

var _ render.Client = (*Client)(nil)

// New builds a local client. Defaults: the `rendercv` binary on PATH, a 60
// second render timeout, and a throwaway scratch directory per render.
func New(opts ...Option) *Client {
	c := &Client{
		command: []string{"rendercv"},
		timeout: defaultTimeout,
		run:     runCommand,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name implements render.Client.
func (c *Client) Name() string { return Name }

// Render writes doc to cv.yaml in the scratch directory, runs
// `rendercv render cv.yaml` there, and reads back the generated PDF.
func (c *Client) Render(ctx context.Context, doc []byte) (render.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	dir := c.dir
	if dir == "" {
		scratch, err := os.MkdirTemp("", "rendercv_")
		if err != nil {
			return render.Result{}, fmt.Errorf("local: scratch dir: %w", err)
		}
		defer os.RemoveAll(scratch)
		dir = scratch
	} else {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return render.Result{}, fmt.Errorf("local: output dir: %w", err)
		}
		// A fixed directory may hold output from an earlier run; clear it so
		// the artifact check below only ever sees this run's files.
		if err := os.RemoveAll(filepath.Join(dir, outputFolder)); err != nil {
			return render.Result{}, fmt.Errorf("local: clear previous output: %w", err)
		}
	}

	if err := os.WriteFile(filepath.Join(dir, inputFilename), doc, 0o644); err != nil {
		return render.Result{}, fmt.Errorf("local: write document: %w", err)
	}

	runCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	args := append(c.command[1:len(c.command):len(c.command)], "render", inputFilename)
	c.logger.Debug("running rendercv", "command", c.command[0], "dir", dir)
	stdout, stderr, runErr := c.run(runCtx, dir, c.command[0], args...)
	if runErr != nil {
		if err := ctx.Err(); err != nil {
			return render.Result{}, err
		}
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			return render.Result{
				Message: fmt.Sprintf("RenderCV timed out (>%ds)", int(c.timeout.Seconds())),
			}, nil
		}
		if errors.Is(runErr, exec.ErrNotFound) {
			return render.Result{
				Message: "RenderCV CLI not found. Please install: pip install rendercv",
			}, nil
		}
		// Any other failure falls through to the artifact check.
	}

	outputPath := filepath.Join(dir, outputFolder)
	if _, err := os.Stat(outputPath); err != nil {
		msg := "RenderCV failed - no output folder created"
		if stderr != "" {
			msg += "\n\nError:\n" + stderr
		}
		if stdout != "" {
			msg += "\n\nOutput:\n" + stdout
		}
		return render.Result{Message: msg}, nil
	}

	pdfs, err := filepath.Glob(filepath.Join(outputPath, "*.pdf"))
	if err != nil {
		return render.Result{}, fmt.Errorf("local: scan output: %w", err)
	}
	if len(pdfs) == 0 {
		msg := "RenderCV failed - no PDF file generated"
		if stderr != "" {
			msg += "\n\nError:\n" + stderr
		}
		return render.Result{Message: msg}, nil
	}

	pdf, err := os.ReadFile(pdfs[0])
	if err != nil {
		return render.Result{}, fmt.Errorf("local: read pdf: %w", err)
	}
	c.logger.Info("rendered document", "client", Name, "pdf", filepath.Base(pdfs[0]), "size", len(pdf))
	return render.Result{
		Success: true,
		Message: fmt.Sprintf("CV rendered successfully: %s", filepath.Base(pdfs[0])),
		PDF:     pdf,
	}, nil
}

// HealthCheck reports whether the CLI responds to --version in time.
func (c *Client) HealthCheck(ctx context.Context) bool {
	if ctx == nil {
		ctx = context.Background()
	}
	runCtx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	args := append(c.command[1:len(c.command):len(c.command)], "--version")
	_, _, err := c.run(runCtx, "", c.command[0], args...)
	return err == nil
}

func runCommand(ctx context.Context, dir string, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}
