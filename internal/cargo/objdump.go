// Package cargo invokes the external build-and-inspect tooling. It exposes a
// narrow Runner interface so everything downstream of the raw dump text can
// be tested with literal fixtures.
package cargo

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/rs/zerolog/log"
)

// Runner produces the textual output of one firmware inspection. A non-nil
// error means the inspection could not run at all (tool missing, binary not
// built); there is no partial output in that case.
type Runner interface {
	Run(ctx context.Context) (string, error)
}

// Objdump runs `cargo objdump` for a named binary and captures its stdout.
// cargo builds (or reuses) the binary, then hands the flags after "--" to
// llvm-objdump.
type Objdump struct {
	Binary    string
	Target    string // target triple, e.g. thumbv7m-none-eabihf
	BuildType string // "release" or "debug"
	Dir       string // working directory, empty for the current one
	Flags     []string
}

func (o Objdump) args() []string {
	args := []string{"objdump", "--bin", o.Binary}
	if o.Target != "" {
		args = append(args, "--target", o.Target)
	}
	args = append(args, "--"+o.BuildType, "--")
	return append(args, o.Flags...)
}

func (o Objdump) Run(ctx context.Context) (string, error) {
	args := o.args()
	log.Debug().Strs("args", args).Msg("running cargo objdump")

	cmd := exec.CommandContext(ctx, "cargo", args...)
	cmd.Dir = o.Dir

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("run cargo objdump (is the firmware built?): %w", err)
	}

	return stdout.String(), nil
}
