// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
)

// readArtifact reads path, feeds the stored bytes to h, and returns the
// decompressed contents.
func readArtifact(path string, h hash.Hash) ([]byte, error) {
	raw, err := os.ReadFile(path) //nolint:gosec // artifact paths come from operator configuration
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	h.Write(raw)

	if !strings.HasSuffix(path, ".gz") {
		return raw, nil
	}

	gzr, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", path, err)
	}
	defer func() { _ = gzr.Close() }() //nolint:errcheck // error on gzip close after read is not actionable

	data, err := io.ReadAll(gzr)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", path, err)
	}
	return data, nil
}

func decodeJSON(path string, data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
