package cashflow

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeLedger decodes records from a stream of JSONL data, decodes each line
// into the appropriate record struct, and returns a sorted Ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Record RecordType `json:"record"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(lineBytes), err)
		}

		var decoded Record
		var err error

		switch identifier.Record {
		case RecRecurring:
			var rec RecurringRule
			err = json.Unmarshal(lineBytes, &rec)
			decoded = rec
		case RecOneTime:
			var rec OneTimeEntry
			err = json.Unmarshal(lineBytes, &rec)
			decoded = rec
		case RecBalance:
			var rec BalanceSnapshot
			err = json.Unmarshal(lineBytes, &rec)
			decoded = rec
		default:
			err = fmt.Errorf("unknown record type: %q", identifier.Record)
		}
		if err != nil {
			return nil, err
		}
		if err := ledger.Append(decoded); err != nil {
			return nil, err
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	return ledger, nil
}

// EncodeRecord marshals a single record to JSON and writes it to the writer,
// followed by a newline, in JSONL format.
func EncodeRecord(w io.Writer, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// EncodeLedger persists the ledger to an io.Writer in JSONL format: recurring
// rules first in creation order, then one-time entries and balance snapshots
// in chronological order. The output is canonical, so encoding the same ledger
// twice yields byte-identical files.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	ledger.stableSort()

	for rec := range ledger.Recurring() {
		if err := EncodeRecord(w, rec); err != nil {
			return err
		}
	}
	for rec := range ledger.OneTime() {
		if err := EncodeRecord(w, rec); err != nil {
			return err
		}
	}
	for rec := range ledger.Snapshots() {
		if err := EncodeRecord(w, rec); err != nil {
			return err
		}
	}
	return nil
}
