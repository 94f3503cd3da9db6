package views

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath   string
	ExportDBPath string
	ExportExists bool // true = Found, false = Not Found
	OutputFormat string
	Precision    int
	FreezeLocked bool
	LogLevel     string
	AppDataDir   string
}

func RenderSystemInfo(w io.Writer, data SystemInfoItem) error {
	exportPath := data.ExportDBPath
	exportStatus := pterm.Gray("Disabled")
	if exportPath != "" {
		exportStatus = pterm.Green("Found")
		if !data.ExportExists {
			exportStatus = pterm.Red("Not Found (Will be created)")
		}
	} else {
		exportPath = "(None)"
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Export Database", exportPath},
		{"Export Status", exportStatus},
		{"Output Format", data.OutputFormat},
		{"Output Precision", precisionLabel(data.Precision)},
		{"Freeze Locked Accounts", strconv.FormatBool(data.FreezeLocked)},
		{"Log Level", data.LogLevel},
		{"AppData Directory", data.AppDataDir},
	}

	table, err := pterm.DefaultTable.WithData(tableData).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, table)
	return err
}

func precisionLabel(precision int) string {
	if precision < 0 {
		return "exact"
	}
	return strconv.Itoa(precision) + " decimal places"
}
