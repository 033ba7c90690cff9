package cmd

import (
	"fmt"
	"os"

	"github.com/mnightingale/rapidbase"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	codecName   string
	backendName string
	verbose     bool

	log = zap.NewNop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rapidbase",
	Short: "Hex, base32 and base64 encoding with vectorised kernels",
	Long: `rapidbase encodes, decodes and validates hex, base32, base32hex, base64
and base64url data.

Files named on the command line are processed concurrently and written to
standard output in argument order. Without arguments standard input is used.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(verbose)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		log = l
		rapidbase.SetLogger(l)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&codecName, "codec", "c", "base64", "Codec variant, see 'rapidbase info' for the list")
	rootCmd.PersistentFlags().StringVarP(&backendName, "backend", "b", "auto", "Kernel backend: auto, scalar, swar or vector128")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// selectedVariant resolves the --codec and --backend flags.
func selectedVariant() (rapidbase.Variant, error) {
	v, err := rapidbase.ParseVariant(codecName)
	if err != nil {
		return v, fmt.Errorf("--codec %q: %w", codecName, err)
	}
	b, err := rapidbase.ParseBackend(backendName)
	if err != nil {
		return v, fmt.Errorf("--backend %q: %w", backendName, err)
	}
	if b != rapidbase.BackendAuto && !b.Available() {
		log.Warn("backend not available, using automatic selection",
			zap.Stringer("requested", b),
			zap.Stringer("backend", rapidbase.ActiveBackend()),
		)
	}
	return v.WithBackend(b), nil
}
