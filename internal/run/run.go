// Package run holds the process-free core of the tool: parameter validation,
// default output derivation, codec invocation and result reporting. The cmd
// layer does all printing and exiting.
package run

import (
	"fmt"
	"path/filepath"
	"strings"

	compression "github.com/mletourn/lzmatool/internal/common/compressionutil"
	"github.com/mletourn/lzmatool/internal/common/fsutil"
)

// Mode selects the direction of the operation.
type Mode string

const (
	ModeCompress   Mode = "compress"
	ModeDecompress Mode = "decompress"
)

// Params describes one invocation.
type Params struct {
	Mode       Mode
	InputPath  string
	OutputPath string // derived from InputPath when empty
	Preset     int    // 0-9
	Force      bool   // allow overwriting an existing output
}

// Result reports a completed operation.
type Result struct {
	InputPath  string
	OutputPath string
	InputSize  int64
	OutputSize int64
	Ratio      float64 // OutputSize / InputSize
	HasRatio   bool    // set for compression of a nonempty input
}

// Lines renders the human-readable stdout report.
func (r *Result) Lines() []string {
	if r.HasRatio {
		return []string{
			fmt.Sprintf("Compression terminee: %s -> %s", r.InputPath, r.OutputPath),
			fmt.Sprintf("Taille: %d -> %d octets (ratio %.2f%%)", r.InputSize, r.OutputSize, r.Ratio*100),
		}
	}
	return []string{
		fmt.Sprintf("Operation terminee: %s -> %s", r.InputPath, r.OutputPath),
		fmt.Sprintf("Taille: %d -> %d octets", r.InputSize, r.OutputSize),
	}
}

// DefaultOutputPath derives the output path from the mode and input path.
// Compression appends ".xz" to the full filename. Decompression strips a
// final ".xz" extension, or appends ".out" when the input has none.
func DefaultOutputPath(mode Mode, input string) string {
	if mode == ModeDecompress {
		if filepath.Ext(input) == ".xz" {
			return strings.TrimSuffix(input, ".xz")
		}
		return input + ".out"
	}
	return input + ".xz"
}

// Execute validates the parameters, runs the codec and collects sizes.
// Validation order: input existence, preset range, overwrite guard. On any
// codec or filesystem failure a partially written output is removed on a
// best-effort basis.
func Execute(p Params) (*Result, error) {
	if !fsutil.IsRegularFile(p.InputPath) {
		return nil, &NotFoundError{Path: p.InputPath}
	}

	if p.Preset < 0 || p.Preset > 9 {
		return nil, ErrInvalidPreset
	}

	outputPath := p.OutputPath
	if outputPath == "" {
		outputPath = DefaultOutputPath(p.Mode, p.InputPath)
	}

	if fsutil.PathExists(outputPath) && !p.Force {
		return nil, &OutputExistsError{Path: outputPath}
	}

	if dir := filepath.Dir(outputPath); dir != "" {
		if err := fsutil.CreateDirIfNotExists(dir); err != nil {
			return nil, &compression.IOError{Err: err}
		}
	}

	var err error
	if p.Mode == ModeCompress {
		err = compression.CompressXZ(p.InputPath, outputPath, p.Preset)
	} else {
		err = compression.ExtractXZ(p.InputPath, outputPath)
	}
	if err != nil {
		_ = fsutil.RemoveIfExists(outputPath)
		return nil, err
	}

	inputSize, err := fsutil.FileSize(p.InputPath)
	if err != nil {
		return nil, &compression.IOError{Err: err}
	}
	outputSize, err := fsutil.FileSize(outputPath)
	if err != nil {
		return nil, &compression.IOError{Err: err}
	}

	result := &Result{
		InputPath:  p.InputPath,
		OutputPath: outputPath,
		InputSize:  inputSize,
		OutputSize: outputSize,
	}
	if p.Mode == ModeCompress && inputSize > 0 {
		result.Ratio = float64(outputSize) / float64(inputSize)
		result.HasRatio = true
	}
	return result, nil
}
