package cashflow

import (
	"errors"
	"fmt"
	"time"
)

// RecordType is a typed string for identifying ledger records.
type RecordType string

// Record types used for identifying ledger lines.
const (
	RecRecurring RecordType = "recurring"
	RecOneTime   RecordType = "one-time"
	RecBalance   RecordType = "balance"
)

// Record defines the common interface for all types of ledger records.
type Record interface {
	What() RecordType // What returns the record type (e.g. "recurring", "balance").
	Created() time.Time
	Validate() error
}

type baseRec struct {
	Record    RecordType `json:"record"`    // Record specifies the type of ledger line.
	ID        ID         `json:"id"`        // ID uniquely identifies the record.
	CreatedAt time.Time  `json:"createdAt"` // CreatedAt is the creation timestamp, used as a sort tiebreaker.
}

func newBaseRec(kind RecordType) baseRec {
	return baseRec{Record: kind, ID: NewID(), CreatedAt: time.Now().UTC()}
}

// What returns the record type, used to identify the kind of ledger line.
func (r baseRec) What() RecordType { return r.Record }

// Created returns the creation timestamp of the record.
func (r baseRec) Created() time.Time { return r.CreatedAt }

// MarshalJSON implements the json.Marshaler interface for baseRec.
func (r baseRec) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", r.Record)
	w.Append("id", r.ID)
	return w.MarshalJSON()
}

// RecurringRule represents an amount applied on a fixed day of every month,
// like a salary or a subscription.
type RecurringRule struct {
	baseRec
	Description string `json:"description"` // Description is the human label, e.g. "Netflix".
	Amount      Money  `json:"amount"`      // Amount is positive for income, negative for an expense.
	Day         int    `json:"day"`         // Day is the scheduled day of month, 1 to 31.
	Active      bool   `json:"active"`      // Active rules participate in projections; inactive ones are kept but ignored.
}

// NewRecurringRule creates a recurring rule with a fresh identity.
func NewRecurringRule(description string, amount Money, day int) RecurringRule {
	return RecurringRule{
		baseRec:     newBaseRec(RecRecurring),
		Description: description,
		Amount:      amount,
		Day:         day,
		Active:      true,
	}
}

// Validate checks the rule fields.
func (r RecurringRule) Validate() error {
	if r.Description == "" {
		return errors.New("recurring rule description is missing")
	}
	if r.Day < 1 || r.Day > 31 {
		return fmt.Errorf("recurring rule day must be between 1 and 31, got %d", r.Day)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for RecurringRule.
func (r RecurringRule) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(r.baseRec)
	w.Append("description", r.Description)
	w.Append("amount", r.Amount)
	w.Append("day", r.Day)
	w.Append("active", r.Active)
	w.Append("createdAt", r.CreatedAt)
	return w.MarshalJSON()
}

// OneTimeEntry represents a single dated amount, like a planned transfer or
// an exceptional purchase.
type OneTimeEntry struct {
	baseRec
	Description string `json:"description"` // Description is the human label.
	Amount      Money  `json:"amount"`      // Amount is positive for income, negative for an expense.
	Date        Date   `json:"date"`        // Date is the calendar date the entry applies on.
}

// NewOneTimeEntry creates a one-time entry with a fresh identity.
func NewOneTimeEntry(description string, amount Money, on Date) OneTimeEntry {
	return OneTimeEntry{
		baseRec:     newBaseRec(RecOneTime),
		Description: description,
		Amount:      amount,
		Date:        on,
	}
}

// Validate checks the entry fields.
func (e OneTimeEntry) Validate() error {
	if e.Description == "" {
		return errors.New("one-time entry description is missing")
	}
	if e.Date.IsZero() {
		return errors.New("one-time entry date is missing")
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for OneTimeEntry.
func (e OneTimeEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.baseRec)
	w.Append("description", e.Description)
	w.Append("amount", e.Amount)
	w.Append("date", e.Date)
	w.Append("createdAt", e.CreatedAt)
	return w.MarshalJSON()
}

// BalanceSnapshot records the observed account balance on a given date. The
// latest snapshot anchors every projection.
type BalanceSnapshot struct {
	baseRec
	Date    Date  `json:"date"`    // Date is the day the balance was observed.
	Balance Money `json:"balance"` // Balance is the observed account balance.
}

// NewBalanceSnapshot creates a balance snapshot with a fresh identity.
func NewBalanceSnapshot(on Date, balance Money) BalanceSnapshot {
	return BalanceSnapshot{
		baseRec: newBaseRec(RecBalance),
		Date:    on,
		Balance: balance,
	}
}

// Validate checks the snapshot fields.
func (s BalanceSnapshot) Validate() error {
	if s.Date.IsZero() {
		return errors.New("balance snapshot date is missing")
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for BalanceSnapshot.
func (s BalanceSnapshot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(s.baseRec)
	w.Append("date", s.Date)
	w.Append("balance", s.Balance)
	w.Append("createdAt", s.CreatedAt)
	return w.MarshalJSON()
}
