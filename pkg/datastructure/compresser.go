package datastructure

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// CompressData zstd-compresses inData into bbufOut.
func CompressData(inData []byte, bbufOut *bytes.Buffer) error {
	encoder, err := zstd.NewWriter(bbufOut, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return fmt.Errorf("failed to create zstd encoder: %w", err)
	}

	if _, err = io.Copy(encoder, bytes.NewReader(inData)); err != nil {
		encoder.Close()
		return fmt.Errorf("failed to compress data: %w", err)
	}
	return encoder.Close()
}

func DecompressData(inData []byte, out io.Writer) error {
	d, err := zstd.NewReader(bytes.NewReader(inData))
	if err != nil {
		return fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	defer d.Close()

	_, err = io.Copy(out, d)
	return err
}

func Compress(inData []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := CompressData(inData, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Decompress(inData []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := DecompressData(inData, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
