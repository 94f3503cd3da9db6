package views

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/hance08/payments/internal/store"
	"github.com/hance08/payments/internal/ui"
	"github.com/pterm/pterm"
)

const DateTimeFormat = "2006-01-02 15:04:05"

func RenderRunList(w io.Writer, runs []*store.Run) error {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No exported runs found")
		return nil
	}

	ui.PrintL2Title(w, "Exported Runs")

	tableData := pterm.TableData{{"Run", "Date", "Source", "Processed", "Applied", "Rejected"}}
	for _, run := range runs {
		rejected := strconv.Itoa(run.Rejected)
		if run.Rejected > 0 {
			rejected = pterm.Yellow(rejected)
		}

		tableData = append(tableData, []string{
			run.ID,
			time.Unix(run.CreatedAt, 0).Format(DateTimeFormat),
			run.Source,
			strconv.Itoa(run.Processed),
			strconv.Itoa(run.Applied),
			rejected,
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, table)
	fmt.Fprintf(w, "Total: %d runs\n", len(runs))

	return nil
}
