package errhandler

import (
	"fmt"
	"io"
	"unicode"

	"github.com/pterm/pterm"
)

func HandleError(w io.Writer, err error) {
	if err == nil {
		return
	}

	fmt.Fprintln(w, pterm.Error.Sprint(capitalize(err.Error())))
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
