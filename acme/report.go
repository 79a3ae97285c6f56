package acme

import (
	"fmt"
	"strings"

	"github.com/warp/payroll-engine/payroll"
)

// FormatEntry renders "The amount to pay RENE is: 215 USD".
func FormatEntry(e payroll.PayrollEntry, currency string) string {
	return fmt.Sprintf("The amount to pay %s is: %s %s", e.Employee, e.Amount.String(), currency)
}

// FormatPayroll renders one line per entry, newline-terminated.
func FormatPayroll(entries []payroll.PayrollEntry, currency string) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(FormatEntry(e, currency))
		b.WriteByte('\n')
	}
	return b.String()
}
