package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mletourn/lzmatool/internal/config"
	"github.com/mletourn/lzmatool/internal/run"
)

var (
	decompressOutput string
	decompressPreset int
	decompressForce  bool
)

// decompressCmd extracts a single XZ container back to a plain file
var decompressCmd = &cobra.Command{
	Use:   "decompress <input>",
	Short: "Decompress an XZ file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// The preset is unused by the decoder but still range-checked so a
		// bad value fails the same way in both modes.
		preset := decompressPreset
		if !cmd.Flags().Changed("preset") {
			preset = config.Instance.DefaultPreset
		}

		runOperation(run.Params{
			Mode:       run.ModeDecompress,
			InputPath:  args[0],
			OutputPath: decompressOutput,
			Preset:     preset,
			Force:      decompressForce,
		})
	},
}

func init() {
	decompressCmd.Flags().StringVarP(&decompressOutput, "output", "o", "", "output file (default: input path without .xz, or plus .out)")
	decompressCmd.Flags().IntVarP(&decompressPreset, "preset", "p", 6, "LZMA compression preset, 0-9 (compress only)")
	decompressCmd.Flags().BoolVarP(&decompressForce, "force", "f", false, "overwrite the output file if it exists")

	rootCmd.AddCommand(decompressCmd)
}
