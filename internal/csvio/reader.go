package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hance08/payments/internal/payments"
	"github.com/shopspring/decimal"
)

const (
	ColumnType   = "type"
	ColumnClient = "client"
	ColumnTx     = "tx"
	ColumnAmount = "amount"
)

// Reader decodes transaction records from comma separated text. The first
// non-comment row is the header; columns are matched by name.
type Reader struct {
	csv     *csv.Reader
	columns map[string]int
	line    int
}

func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	return &Reader{csv: cr}
}

// Next returns the next transaction, io.EOF when the input is exhausted, or
// a *RecordError for a record that cannot be decoded.
func (r *Reader) Next() (payments.Transaction, error) {
	if r.columns == nil {
		if err := r.readHeader(); err != nil {
			return payments.Transaction{}, err
		}
	}

	for {
		record, err := r.read()
		if err != nil {
			return payments.Transaction{}, err
		}
		if isBlank(record) {
			continue
		}
		return r.decode(record)
	}
}

func (r *Reader) read() ([]string, error) {
	record, err := r.csv.Read()
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, &RecordError{Line: parseErr.Line, Err: parseErr.Err}
		}
		return nil, err
	}

	r.line, _ = r.csv.FieldPos(0)
	for i := range record {
		record[i] = strings.TrimSpace(record[i])
	}
	return record, nil
}

func (r *Reader) readHeader() error {
	header, err := r.read()
	if err != nil {
		return err
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(name)] = i
	}

	for _, required := range []string{ColumnType, ColumnClient, ColumnTx} {
		if _, ok := columns[required]; !ok {
			return &RecordError{Line: r.line, Field: required, Err: ErrMissingColumn}
		}
	}

	r.columns = columns
	return nil
}

func (r *Reader) field(record []string, column string) string {
	i, ok := r.columns[column]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}

func (r *Reader) decode(record []string) (payments.Transaction, error) {
	kind, err := payments.ParseKind(r.field(record, ColumnType))
	if err != nil {
		return payments.Transaction{}, r.fail(ColumnType, err)
	}

	client, err := strconv.ParseUint(r.field(record, ColumnClient), 10, 16)
	if err != nil {
		return payments.Transaction{}, r.fail(ColumnClient, unwrapNum(err))
	}

	id, err := strconv.ParseUint(r.field(record, ColumnTx), 10, 32)
	if err != nil {
		return payments.Transaction{}, r.fail(ColumnTx, unwrapNum(err))
	}

	if kind.IsClaim() {
		return payments.NewClaim(kind, uint16(client), uint32(id)), nil
	}

	raw := r.field(record, ColumnAmount)
	if raw == "" {
		return payments.Transaction{}, r.fail(ColumnAmount, ErrMissingAmount)
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return payments.Transaction{}, r.fail(ColumnAmount, fmt.Errorf("invalid amount '%s'", raw))
	}
	if amount.IsNegative() {
		return payments.Transaction{}, r.fail(ColumnAmount, ErrNegativeAmount)
	}

	return payments.NewTransfer(kind, uint16(client), uint32(id), amount), nil
}

func (r *Reader) fail(field string, err error) error {
	return &RecordError{Line: r.line, Field: field, Err: err}
}

// ReadAll feeds every record to fn in input order and stops at the first
// decode error or error returned by fn.
func ReadAll(src io.Reader, fn func(payments.Transaction) error) error {
	r := NewReader(src)
	for {
		tx, err := r.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(tx); err != nil {
			return err
		}
	}
}

func isBlank(record []string) bool {
	for _, f := range record {
		if f != "" {
			return false
		}
	}
	return true
}

func unwrapNum(err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return fmt.Errorf("invalid number '%s': %w", numErr.Num, numErr.Err)
	}
	return err
}
