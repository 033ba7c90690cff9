package cmd

import (
	"errors"
	"fmt"

	"github.com/mnightingale/rapidbase"
	"github.com/spf13/cobra"
)

var forgiving bool

var errForgivingCodec = errors.New("--forgiving only applies to the base64 codec")

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode [file...]",
	Short: "Decode text back to binary data",
	Long: `Decode each input with the selected codec. A trailing newline is ignored.

With --forgiving, base64 input is decoded the way web browsers decode it:
whitespace anywhere is skipped and padding may be omitted.

Example:
  rapidbase decode --codec base32 message.txt
  echo ' aGVs bG8 ' | rapidbase decode --forgiving`,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := selectedVariant()
		if err != nil {
			return err
		}
		if forgiving && v.Family() != rapidbase.FamilyBase64 {
			return errForgivingCodec
		}
		return processInputs(cmd, args, func(name string, in []byte) ([]byte, error) {
			var (
				out []byte
				err error
			)
			if forgiving {
				out, err = rapidbase.ForgivingDecodeInPlace(in)
			} else {
				out, err = v.DecodeInPlace(trimLineEnding(in))
			}
			if err != nil {
				return nil, fmt.Errorf("decoding %s: %w", name, err)
			}
			return out, nil
		})
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().BoolVar(&forgiving, "forgiving", false, "Accept base64 with whitespace and missing padding")
}
