package compression

import (
	"io"
	"os"

	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"
)

// chunkSize is the fixed buffer size used when streaming data through the
// encoder or decoder.
const chunkSize = 1 << 20 // 1 MiB

// presetDictCaps maps a compression preset (0-9) to the LZMA2 dictionary
// capacity, following the defaults of xz(1).
var presetDictCaps = [10]int{
	256 << 10, // 0
	1 << 20,   // 1
	2 << 20,   // 2
	4 << 20,   // 3
	4 << 20,   // 4
	8 << 20,   // 5
	8 << 20,   // 6
	16 << 20,  // 7
	32 << 20,  // 8
	64 << 20,  // 9
}

// writerConfig builds the encoder configuration for a preset.
// xz(1): presets 0-3 use a hash-chain match finder, the rest use bt4;
// the block size defaults to three times the dictionary size or 1 MiB,
// whichever is more.
func writerConfig(preset int) xz.WriterConfig {
	dictCap := presetDictCaps[preset]

	matcher := lzma.BinaryTree
	if preset < 4 {
		matcher = lzma.HashTable4
	}

	blockSize := int64(3 * dictCap)
	if blockSize < chunkSize {
		blockSize = chunkSize
	}

	return xz.WriterConfig{
		DictCap:   dictCap,
		CheckSum:  xz.CRC64,
		Matcher:   matcher,
		BlockSize: blockSize,
	}
}

// CompressXZ compresses a file using XZ format with the given preset (0-9).
func CompressXZ(src, dst string, preset int) error {
	inputFile, err := os.Open(src)
	if err != nil {
		return &IOError{Err: err}
	}
	defer inputFile.Close()

	outputFile, err := os.Create(dst)
	if err != nil {
		return &IOError{Err: err}
	}

	xzWriter, err := writerConfig(preset).NewWriter(outputFile)
	if err != nil {
		outputFile.Close()
		return &CodecError{Err: err}
	}

	if err := copyChunks(xzWriter, inputFile); err != nil {
		xzWriter.Close()
		outputFile.Close()
		return classify(err)
	}

	if err := xzWriter.Close(); err != nil {
		outputFile.Close()
		return classify(err)
	}

	if err := outputFile.Close(); err != nil {
		return &IOError{Err: err}
	}

	return nil
}

// ExtractXZ decompresses an XZ file.
func ExtractXZ(src, dst string) error {
	inputFile, err := os.Open(src)
	if err != nil {
		return &IOError{Err: err}
	}
	defer inputFile.Close()

	readerConfig := xz.ReaderConfig{DictCap: presetDictCaps[9]}
	xzReader, err := readerConfig.NewReader(inputFile)
	if err != nil {
		return classify(err)
	}

	outputFile, err := os.Create(dst)
	if err != nil {
		return &IOError{Err: err}
	}

	if err := copyChunks(outputFile, xzReader); err != nil {
		outputFile.Close()
		return classify(err)
	}

	if err := outputFile.Close(); err != nil {
		return &IOError{Err: err}
	}

	return nil
}

// copyChunks streams data from src to dst in fixed chunkSize reads, writing
// every chunk before the next read so output ordering matches input.
func copyChunks(dst io.Writer, src io.Reader) error {
	buf := make([]byte, chunkSize)
	for {
		n, err := src.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
