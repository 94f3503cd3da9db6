package csvio

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/hance08/payments/internal/payments"
	"github.com/shopspring/decimal"
)

var SnapshotHeader = []string{"client", "available", "held", "total", "locked"}

// Writer encodes an account snapshot as comma separated text.
type Writer struct {
	csv         *csv.Writer
	precision   int
	wroteHeader bool
}

// NewWriter returns a Writer that prints amounts exactly when precision is
// negative, or rounded to precision decimal places otherwise.
func NewWriter(w io.Writer, precision int) *Writer {
	return &Writer{csv: csv.NewWriter(w), precision: precision}
}

func (w *Writer) Write(acc payments.Account) error {
	if !w.wroteHeader {
		if err := w.csv.Write(SnapshotHeader); err != nil {
			return err
		}
		w.wroteHeader = true
	}

	return w.csv.Write([]string{
		strconv.FormatUint(uint64(acc.ID), 10),
		FormatAmount(acc.Available, w.precision),
		FormatAmount(acc.Held, w.precision),
		FormatAmount(acc.Total, w.precision),
		strconv.FormatBool(acc.Locked),
	})
}

// WriteAll writes the header, every account and flushes.
func (w *Writer) WriteAll(accounts []payments.Account) error {
	if !w.wroteHeader {
		if err := w.csv.Write(SnapshotHeader); err != nil {
			return err
		}
		w.wroteHeader = true
	}

	for _, acc := range accounts {
		if err := w.Write(acc); err != nil {
			return err
		}
	}

	w.csv.Flush()
	return w.csv.Error()
}

// FormatAmount renders d exactly for a negative precision. Rounded output may
// no longer satisfy total == available + held.
func FormatAmount(d decimal.Decimal, precision int) string {
	if precision < 0 {
		return d.String()
	}
	return d.StringFixed(int32(precision))
}
