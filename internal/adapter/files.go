// Package adapter contains the filesystem adapters behind the perfchart workflows.
package adapter

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	m "perfchart.dev/pkg/perfchart/internal/model"
)

// compressedExt marks zstd-compressed files. Readers strip it transparently.
const compressedExt = ".zst"

// readFile loads a file, decompressing it when its name ends in .zst.
func readFile(path m.FilePath) ([]byte, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(string(path), compressedExt) {
		return data, nil
	}

	zr, err := zstd.NewReader(bytes.NewReader(data), zstd.WithDecoderConcurrency(0))
	if err != nil {
		return nil, fmt.Errorf("open zstd stream %s: %w", path, err)
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", path, err)
	}

	return out, nil
}

// writeFile stores data, compressing it when compress is set.
func writeFile(path m.FilePath, data []byte, compress bool) error {
	if compress {
		var buf bytes.Buffer

		zw, err := zstd.NewWriter(&buf)
		if err != nil {
			return err
		}

		if _, err := zw.Write(data); err != nil {
			_ = zw.Close()
			return fmt.Errorf("compress %s: %w", path, err)
		}

		if err := zw.Close(); err != nil {
			return fmt.Errorf("compress %s: %w", path, err)
		}

		data = buf.Bytes()
	}

	return os.WriteFile(string(path), data, 0o644)
}

// baseExt returns the file extension ignoring a trailing .zst.
func baseExt(path string) string {
	return filepath.Ext(strings.TrimSuffix(path, compressedExt))
}

func digest(data []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(data))
}
