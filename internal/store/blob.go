package store

import (
	"bytes"
	"compress/gzip"
	"encoding/gob"
	"fmt"
)

// serializeZ compresses a mesh z buffer using gob encoding and gzip
// compression. NaN cells survive the round trip.
func serializeZ(z []float64) ([]byte, error) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	enc := gob.NewEncoder(gz)
	if err := enc.Encode(z); err != nil {
		gz.Close()
		return nil, err
	}
	if err := gz.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// deserializeZ decompresses and decodes a z buffer from a gob+gzip blob.
func deserializeZ(blob []byte) ([]float64, error) {
	if len(blob) == 0 {
		return nil, fmt.Errorf("empty z blob")
	}
	gz, err := gzip.NewReader(bytes.NewReader(blob))
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gz.Close()

	var z []float64
	dec := gob.NewDecoder(gz)
	if err := dec.Decode(&z); err != nil {
		return nil, fmt.Errorf("failed to decode z values: %w", err)
	}
	return z, nil
}
