package cmd

import (
	"fmt"
	"os"

	"github.com/mnightingale/rapidbase"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type kernelInfo struct {
	Encode string `yaml:"encode"`
	Decode string `yaml:"decode"`
	Check  string `yaml:"check"`
}

type platformInfo struct {
	Version   string          `yaml:"version"`
	Backend   string          `yaml:"backend"`
	Override  string          `yaml:"override,omitempty"`
	Kernels   kernelInfo      `yaml:"kernels"`
	Available []string        `yaml:"available"`
	Codecs    []string        `yaml:"codecs"`
	CPU       map[string]bool `yaml:"cpu"`
}

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the selected backend and CPU features",
	Long: `Print, as YAML, the kernels selected for this machine, every backend
that can run on it and the CPU features used to decide.

The selection can be overridden with the ` + rapidbase.BackendEnv + ` environment variable.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(collectInfo()); err != nil {
			return fmt.Errorf("failed to write info: %w", err)
		}
		return enc.Close()
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func collectInfo() platformInfo {
	info := platformInfo{
		Version:  rapidbase.Version(),
		Backend:  rapidbase.ActiveBackend().String(),
		Override: os.Getenv(rapidbase.BackendEnv),
		Kernels: kernelInfo{
			Encode: rapidbase.EncodeKernel(),
			Decode: rapidbase.DecodeKernel(),
			Check:  rapidbase.CheckKernel(),
		},
		CPU: rapidbase.CPUFeatures(),
	}
	for _, b := range rapidbase.AvailableBackends() {
		info.Available = append(info.Available, b.String())
	}
	for _, v := range rapidbase.Variants() {
		info.Codecs = append(info.Codecs, v.String())
	}
	return info
}
