package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mletourn/lzmatool/internal/config"
	"github.com/mletourn/lzmatool/internal/run"
)

var (
	compressOutput string
	compressPreset int
	compressForce  bool
)

// compressCmd compresses a single file into an XZ container
var compressCmd = &cobra.Command{
	Use:   "compress <input>",
	Short: "Compress a file into an XZ container",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		preset := compressPreset
		if !cmd.Flags().Changed("preset") {
			preset = config.Instance.DefaultPreset
		}

		runOperation(run.Params{
			Mode:       run.ModeCompress,
			InputPath:  args[0],
			OutputPath: compressOutput,
			Preset:     preset,
			Force:      compressForce,
		})
	},
}

func init() {
	compressCmd.Flags().StringVarP(&compressOutput, "output", "o", "", "output file (default: input path plus .xz)")
	compressCmd.Flags().IntVarP(&compressPreset, "preset", "p", 6, "LZMA compression preset, 0-9")
	compressCmd.Flags().BoolVarP(&compressForce, "force", "f", false, "overwrite the output file if it exists")

	rootCmd.AddCommand(compressCmd)
}
