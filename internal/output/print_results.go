package output

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/aurceive/fighter-tools/internal/domain"
)

func maxWidth(header string, values []string) int {
	w := utf8.RuneCountInString(header)
	for _, v := range values {
		if n := utf8.RuneCountInString(v); n > w {
			w = n
		}
	}
	return w
}

// PrintValueTable writes the fighter value table: left-aligned text columns,
// right-aligned numbers, two spaces between columns and a dashed rule under the header.
func PrintValueTable(w io.Writer, rows []domain.ValueRow) {
	ids := make([]string, len(rows))
	names := make([]string, len(rows))
	roles := make([]string, len(rows))
	subs := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
		names[i] = r.Fighter.Name
		roles[i] = r.Fighter.Role
		subs[i] = r.Fighter.SubRole
	}
	idW := maxWidth("ID", ids)
	nameW := maxWidth("Name", names)
	roleW := maxWidth("Role", roles)
	subW := maxWidth("SubRole", subs)

	header := fmt.Sprintf("%-*s  %-*s  %-*s  %-*s  %3s  %3s  %3s  %5s  %5s",
		idW, "ID", nameW, "Name", roleW, "Role", subW, "SubRole",
		"Atk", "Def", "Spd", "Bonus", "Value")
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, strings.Repeat("-", utf8.RuneCountInString(header)))

	for _, r := range rows {
		f := r.Fighter
		fmt.Fprintf(w, "%-*s  %-*s  %-*s  %-*s  %3d  %3d  %3d  %5d  %5d\n",
			idW, r.ID, nameW, f.Name, roleW, f.Role, subW, f.SubRole,
			domain.Stat(f.Attack), domain.Stat(f.Defense), domain.Stat(f.Speed), r.Bonus, r.Value)
	}
}

// PrintValidationReport writes errors, then warnings, then a one-line summary.
func PrintValidationReport(w io.Writer, report domain.ValidationReport) {
	for _, e := range report.Errors {
		fmt.Fprintln(w, "ERROR:", e)
	}
	for _, wn := range report.Warnings {
		fmt.Fprintln(w, "WARNING:", wn)
	}
	if report.OK() {
		fmt.Fprintf(w, "All %d subroles passed validation (%d warning(s))\n", report.Checked, len(report.Warnings))
		return
	}
	fmt.Fprintf(w, "Validation failed: %d error(s), %d warning(s)\n", len(report.Errors), len(report.Warnings))
}

// PrintTradeCheck writes the outcome of a trade comparison.
func PrintTradeCheck(w io.Writer, c domain.TradeCheck) {
	fmt.Fprintf(w, "Trade %s (%s, value %d) <-> %s (%s, value %d)\n",
		c.A.ID, c.A.Fighter.Role, c.A.Value, c.B.ID, c.B.Fighter.Role, c.B.Value)
	switch {
	case !c.RoleLocked:
		fmt.Fprintln(w, "Rejected: trade must be role-locked (Tank<->Tank, DPS<->DPS, or Support<->Support).")
	case !c.FairValue:
		fmt.Fprintf(w, "Rejected: unfair value range. Values: %d vs %d.\n", c.A.Value, c.B.Value)
	default:
		fmt.Fprintf(w, "Approved: value ratio %.2f.\n", c.Ratio)
	}
}
