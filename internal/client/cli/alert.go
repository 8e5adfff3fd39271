package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/gobarber/internal/client/forms"
)

// alert is the terminal counterpart of a modal dialog.
func (a *App) alert(title, message string) {
	fmt.Fprintf(a.out, "%s\n%s\n", alertTitleStyle.Render("! "+title), message)
}

// showFieldErrors prints one line per invalid field, in field order of the
// form when fieldOrder lists it.
func (a *App) showFieldErrors(err error, fieldOrder ...string) {
	var ve *forms.ValidationError
	if !errors.As(err, &ve) {
		return
	}

	printed := make(map[string]bool, len(ve.Fields))
	for _, name := range fieldOrder {
		if msg, ok := ve.Fields[name]; ok {
			fmt.Fprintln(a.out, fieldErrorStyle.Render(fmt.Sprintf("  %s: %s", name, msg)))
			printed[name] = true
		}
	}

	rest := make([]string, 0, len(ve.Fields))
	for name := range ve.Fields {
		if !printed[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		fmt.Fprintln(a.out, fieldErrorStyle.Render(fmt.Sprintf("  %s: %s", name, ve.Fields[name])))
	}
}
