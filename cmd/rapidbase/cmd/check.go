package cmd

import (
	"fmt"
	"sync/atomic"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [file...]",
	Short: "Validate encoded data without decoding it",
	Long: `Check that each input decodes with the selected codec, printing one line
per input. The command fails if any input is invalid. A trailing newline is
ignored.

Example:
  rapidbase check --codec hex *.hex`,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := selectedVariant()
		if err != nil {
			return err
		}

		var failed atomic.Int32
		err = processInputs(cmd, args, func(name string, in []byte) ([]byte, error) {
			if err := v.Check(trimLineEnding(in)); err != nil {
				failed.Add(1)
				log.Debug("invalid input", zap.String("file", name), zap.Error(err))
				return fmt.Appendf(nil, "%s: %v\n", name, err), nil
			}
			return fmt.Appendf(nil, "%s: ok\n", name), nil
		})
		if err != nil {
			return err
		}
		if n := failed.Load(); n > 0 {
			return fmt.Errorf("%d of %d inputs are not valid %s", n, max(len(args), 1), v)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
