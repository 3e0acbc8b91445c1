package compression

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ulikunitz/xz/lzma"
)

// xzMagic is the XZ container signature.
// https://tukaani.org/xz/xz-file-format-1.0.4.txt
var xzMagic = []byte{0xFD, 0x37, 0x7A, 0x58, 0x5A, 0x00}

func testPayload() []byte {
	// Compressible but not trivial content.
	payload := bytes.Repeat([]byte("le contenu se repete encore et encore. "), 512)
	for i := 0; i < 256; i++ {
		payload = append(payload, byte(i))
	}
	return payload
}

func TestCompressExtractRoundTrip(t *testing.T) {
	payload := testPayload()

	for preset := 0; preset <= 9; preset++ {
		dir := t.TempDir()
		src := filepath.Join(dir, "data.bin")
		compressed := filepath.Join(dir, "data.bin.xz")
		restored := filepath.Join(dir, "restored.bin")

		if err := os.WriteFile(src, payload, 0644); err != nil {
			t.Fatal(err)
		}

		if err := CompressXZ(src, compressed, preset); err != nil {
			t.Fatalf("CompressXZ preset %d failed: %v", preset, err)
		}

		header, err := os.ReadFile(compressed)
		if err != nil {
			t.Fatal(err)
		}
		if len(header) < len(xzMagic) || !bytes.Equal(header[:len(xzMagic)], xzMagic) {
			t.Errorf("preset %d: output does not start with the XZ magic bytes", preset)
		}

		if err := ExtractXZ(compressed, restored); err != nil {
			t.Fatalf("ExtractXZ preset %d failed: %v", preset, err)
		}

		got, err := os.ReadFile(restored)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, payload) {
			t.Errorf("preset %d: round trip altered the content", preset)
		}
	}
}

func TestCompressEmptyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "empty")
	compressed := filepath.Join(dir, "empty.xz")
	restored := filepath.Join(dir, "empty.out")

	if err := os.WriteFile(src, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if err := CompressXZ(src, compressed, 6); err != nil {
		t.Fatalf("CompressXZ failed: %v", err)
	}
	if err := ExtractXZ(compressed, restored); err != nil {
		t.Fatalf("ExtractXZ failed: %v", err)
	}

	info, err := os.Stat(restored)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 0 {
		t.Errorf("expected empty restored file, got %d bytes", info.Size())
	}
}

func TestCompressMissingInput(t *testing.T) {
	dir := t.TempDir()
	err := CompressXZ(filepath.Join(dir, "absent"), filepath.Join(dir, "absent.xz"), 6)
	if err == nil {
		t.Fatal("expected error for missing input")
	}
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Errorf("expected *IOError, got %T: %v", err, err)
	}
}

func TestExtractNotXZData(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "garbage.xz")
	dst := filepath.Join(dir, "garbage")

	if err := os.WriteFile(src, []byte("definitely not an xz stream"), 0644); err != nil {
		t.Fatal(err)
	}

	err := ExtractXZ(src, dst)
	if err == nil {
		t.Fatal("expected error for invalid xz data")
	}
	var codecErr *CodecError
	if !errors.As(err, &codecErr) {
		t.Errorf("expected *CodecError, got %T: %v", err, err)
	}
	if _, statErr := os.Stat(dst); statErr == nil {
		t.Error("output file created despite invalid input stream")
	}
}

func TestExtractTruncatedStream(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "data.bin")
	compressed := filepath.Join(dir, "data.bin.xz")
	truncated := filepath.Join(dir, "truncated.xz")
	restored := filepath.Join(dir, "restored.bin")

	if err := os.WriteFile(src, testPayload(), 0644); err != nil {
		t.Fatal(err)
	}
	if err := CompressXZ(src, compressed, 1); err != nil {
		t.Fatal(err)
	}

	full, err := os.ReadFile(compressed)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(truncated, full[:len(full)/2], 0644); err != nil {
		t.Fatal(err)
	}

	err = ExtractXZ(truncated, restored)
	if err == nil {
		t.Fatal("expected error for truncated stream")
	}
	var codecErr *CodecError
	if !errors.As(err, &codecErr) {
		t.Errorf("expected *CodecError, got %T: %v", err, err)
	}
}

func TestWriterConfigPresets(t *testing.T) {
	tests := []struct {
		preset    int
		dictCap   int
		matcher   lzma.MatchAlgorithm
		blockSize int64
	}{
		{0, 256 << 10, lzma.HashTable4, 1 << 20},
		{3, 4 << 20, lzma.HashTable4, 3 * (4 << 20)},
		{4, 4 << 20, lzma.BinaryTree, 3 * (4 << 20)},
		{6, 8 << 20, lzma.BinaryTree, 3 * (8 << 20)},
		{9, 64 << 20, lzma.BinaryTree, 3 * (64 << 20)},
	}

	for _, tt := range tests {
		cfg := writerConfig(tt.preset)
		if cfg.DictCap != tt.dictCap {
			t.Errorf("preset %d: DictCap = %d, want %d", tt.preset, cfg.DictCap, tt.dictCap)
		}
		if cfg.Matcher != tt.matcher {
			t.Errorf("preset %d: Matcher = %v, want %v", tt.preset, cfg.Matcher, tt.matcher)
		}
		if cfg.BlockSize != tt.blockSize {
			t.Errorf("preset %d: BlockSize = %d, want %d", tt.preset, cfg.BlockSize, tt.blockSize)
		}
		if err := cfg.Verify(); err != nil {
			t.Errorf("preset %d: invalid writer config: %v", tt.preset, err)
		}
	}
}

func TestClassify(t *testing.T) {
	pathErr := &os.PathError{Op: "write", Path: "x", Err: os.ErrPermission}
	if _, ok := classify(pathErr).(*IOError); !ok {
		t.Error("expected *os.PathError to classify as *IOError")
	}

	if _, ok := classify(errors.New("xz: corrupt block")).(*CodecError); !ok {
		t.Error("expected plain codec error to classify as *CodecError")
	}
}
