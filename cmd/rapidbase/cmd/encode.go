package cmd

import (
	"github.com/spf13/cobra"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode [file...]",
	Short: "Encode binary data as text",
	Long: `Encode each input with the selected codec. Every encoding is followed by
a newline.

Example:
  rapidbase encode --codec hex-upper image.png`,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := selectedVariant()
		if err != nil {
			return err
		}
		return processInputs(cmd, args, func(name string, in []byte) ([]byte, error) {
			out := v.AppendEncode(make([]byte, 0, v.EncodedLen(len(in))+1), in)
			return append(out, '\n'), nil
		})
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}
