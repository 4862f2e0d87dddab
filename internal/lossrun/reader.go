package lossrun

import (
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/modaudit/internal/model"
)

const readBatchSize = 256

// Reader wraps a parquet GenericReader for streaming LossRunRow records.
type Reader struct {
	file   *os.File
	reader *parquet.GenericReader[model.LossRunRow]
}

// Open opens a Parquet loss-run file and returns a streaming Reader.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open loss run: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat loss run: %w", err)
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open parquet: %w", err)
	}

	r := parquet.NewGenericReader[model.LossRunRow](pf)
	return &Reader{file: f, reader: r}, nil
}

// NumRows returns the total number of rows in the file.
func (r *Reader) NumRows() int64 {
	return r.reader.NumRows()
}

// Read reads up to len(rows) records into the provided slice.
// Returns the number of rows read and io.EOF when done.
func (r *Reader) Read(rows []model.LossRunRow) (int, error) {
	n, err := r.reader.Read(rows)
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("read loss-run rows: %w", err)
	}
	return n, err
}

// Schema returns the Parquet schema for validation.
func (r *Reader) Schema() *parquet.Schema {
	return r.reader.Schema()
}

// Close releases all resources.
func (r *Reader) Close() error {
	if err := r.reader.Close(); err != nil {
		r.file.Close()
		return err
	}
	return r.file.Close()
}

// ReadClaims streams an entire loss-run file and converts every row to a
// Claim, preserving file order. Row-level conversion failures abort with
// the offending row number; a partial loss run would silently skew the mod.
func ReadClaims(path string) ([]model.Claim, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	if err := ValidateSchema(r.Schema()); err != nil {
		return nil, err
	}

	claims := make([]model.Claim, 0, r.NumRows())
	buf := make([]model.LossRunRow, readBatchSize)
	var rowNum int64

	for {
		n, readErr := r.Read(buf)
		for i := 0; i < n; i++ {
			rowNum++
			claim, convErr := ToClaim(&buf[i])
			if convErr != nil {
				return nil, fmt.Errorf("loss-run row %d: %w", rowNum, convErr)
			}
			claims = append(claims, claim)
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, readErr
		}
	}

	return claims, nil
}
