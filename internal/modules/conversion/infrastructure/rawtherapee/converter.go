package rawtherapee

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"

	"github.com/saransh1220/rawconvert/internal/modules/conversion/domain"
)

// DefaultCommand is the patched rawtherapee CLI baked into the function image.
// It takes: <input> <output> <spot x> <spot y> <min L*>.
const DefaultCommand = "rawtherapee-cli-custom"

// Converter develops raw files by running the rawtherapee CLI as a child process.
type Converter struct {
	command string
}

// NewConverter creates a converter for command, falling back to DefaultCommand
func NewConverter(command string) *Converter {
	if command == "" {
		command = DefaultCommand
	}
	return &Converter{command: command}
}

// Command returns the executable this converter runs.
func (c *Converter) Command() string {
	return c.command
}

// BuildArgs returns the positional arguments for one conversion.
func (c *Converter) BuildArgs(inputPath, outputPath string, params domain.Params) []string {
	return params.Args(inputPath, outputPath)
}

// Convert runs the CLI to completion and returns its stdout.
// A non-zero exit is reported as *domain.ExitError; a missing executable wraps
// domain.ErrConverterNotFound.
func (c *Converter) Convert(ctx context.Context, inputPath, outputPath string, params domain.Params) (string, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, c.command, c.BuildArgs(inputPath, outputPath, params)...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", domain.ErrConverterNotFound, c.command)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &domain.ExitError{
				Command: c.command,
				Code:    exitErr.ExitCode(),
				Stdout:  stdout.String(),
				Stderr:  stderr.String(),
			}
		}
		return "", fmt.Errorf("failed to run %s: %w", c.command, err)
	}

	return stdout.String(), nil
}

var _ domain.Converter = (*Converter)(nil)
