package views

import (
	"fmt"
	"io"
	"strconv"

	"github.com/hance08/payments/internal/csvio"
	"github.com/hance08/payments/internal/payments"
	"github.com/hance08/payments/internal/ui"
	"github.com/pterm/pterm"
)

type AccountListView struct {
	Precision int
}

func NewAccountListView(precision int) *AccountListView {
	return &AccountListView{Precision: precision}
}

func (v *AccountListView) Render(w io.Writer, accounts []payments.Account) error {
	headers := []string{"Client", "Available", "Held", "Total", "Locked"}
	tableData := pterm.TableData{headers}

	for _, acc := range accounts {
		row := []string{
			strconv.FormatUint(uint64(acc.ID), 10),
			csvio.FormatAmount(acc.Available, v.Precision),
			csvio.FormatAmount(acc.Held, v.Precision),
			csvio.FormatAmount(acc.Total, v.Precision),
			strconv.FormatBool(acc.Locked),
		}

		switch {
		case acc.Locked: // Charged back - Red
			for i := range row {
				row[i] = pterm.Red(row[i])
			}
		case !acc.Held.IsZero(): // Open disputes - Yellow
			row[2] = pterm.Yellow(row[2])
		}

		tableData = append(tableData, row)
	}

	ui.PrintL1Title(w, "Account Snapshot")
	table, err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, table)

	fmt.Fprintf(w, "Total: %d accounts\n", len(accounts))

	return nil
}
