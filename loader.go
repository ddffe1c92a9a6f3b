package cashflow

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LedgerFileName is the ledger file name inside the data directory.
const LedgerFileName = "cashflow.jsonl"

// LoadLedger reads the ledger file from the data directory. A missing file is
// not an error: it yields an empty ledger, so the first command works on a
// fresh machine.
func LoadLedger(dir string) (*Ledger, error) {
	filePath := filepath.Join(dir, LedgerFileName)

	f, err := os.Open(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", filePath, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", filePath, err)
	}
	return ledger, nil
}

// SaveLedger writes the ledger to the data directory. The file is written to
// a temporary sibling and renamed into place, so a crash mid-write never
// leaves a truncated ledger behind.
func SaveLedger(dir string, ledger *Ledger) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", dir, err)
	}

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, ledger); err != nil {
		return fmt.Errorf("could not encode ledger: %w", err)
	}

	filePath := filepath.Join(dir, LedgerFileName)
	tmp, err := os.CreateTemp(dir, LedgerFileName+".tmp")
	if err != nil {
		return fmt.Errorf("could not create temporary ledger file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("could not write ledger file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("could not close ledger file: %w", err)
	}
	if err := os.Rename(tmpName, filePath); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("could not replace ledger file %q: %w", filePath, err)
	}
	return nil
}
