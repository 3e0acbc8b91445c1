package run

import (
	"errors"

	compression "github.com/mletourn/lzmatool/internal/common/compressionutil"
)

// ErrInvalidPreset rejects a preset outside the 0-9 range.
var ErrInvalidPreset = errors.New("--preset doit etre entre 0 et 9")

// NotFoundError reports an input path that does not exist or is not a
// regular file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string { return "fichier introuvable: " + e.Path }

// OutputExistsError reports a resolved output path already present while the
// force flag is not set.
type OutputExistsError struct {
	Path string
}

func (e *OutputExistsError) Error() string {
	return "le fichier de sortie existe deja: " + e.Path + " (utilisez --force)"
}

// Diagnostic renders the single stderr line for a failed invocation.
func Diagnostic(err error) string {
	var codecErr *compression.CodecError
	var ioErr *compression.IOError
	switch {
	case errors.As(err, &codecErr):
		return "Erreur LZMA: " + codecErr.Err.Error()
	case errors.As(err, &ioErr):
		return "Erreur fichier: " + ioErr.Err.Error()
	case errors.Is(err, ErrInvalidPreset):
		return "Erreur: --preset doit etre entre 0 et 9."
	default:
		return "Erreur: " + err.Error()
	}
}

// ExitCode maps an Execute error to the process exit code: 0 success,
// 1 argument/path errors, 2 codec failures, 3 filesystem failures.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var codecErr *compression.CodecError
	if errors.As(err, &codecErr) {
		return 2
	}
	var ioErr *compression.IOError
	if errors.As(err, &ioErr) {
		return 3
	}
	return 1
}
