package cmd

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// stdinName is the name used for standard input in messages.
const stdinName = "-"

// transform turns one input into the bytes written for it.
type transform func(name string, in []byte) ([]byte, error)

// processInputs applies fn to every named file, or to standard input when
// there are none. Inputs are handled concurrently; their outputs are written
// in argument order once all have succeeded.
func processInputs(cmd *cobra.Command, args []string, fn transform) error {
	if len(args) == 0 {
		in, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		out, err := fn(stdinName, in)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}

	outs := make([][]byte, len(args))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range args {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			in, err := os.ReadFile(name)
			if err != nil {
				return fmt.Errorf("reading %s: %w", name, err)
			}
			log.Debug("processing input", zap.String("file", name), zap.Int("bytes", len(in)))
			out, err := fn(name, in)
			if err != nil {
				return err
			}
			outs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, out := range outs {
		if _, err := w.Write(out); err != nil {
			return err
		}
	}
	return nil
}

// trimLineEnding drops the trailing newline text tools usually append.
func trimLineEnding(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return b
}
