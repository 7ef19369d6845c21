package subroles

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aurceive/fighter-tools/internal/domain"
)

// Expected attack+defense+speed+precision per single role.
var expectedTotals = map[string]int{
	"Tank":    12,
	"DPS":     11,
	"Support": 10,
}

const defaultExpectedTotal = 11

type statRange struct {
	field string
	label string
	min   int
	max   int
	// fatal ranges produce errors, the rest warnings.
	fatal bool
}

var ranges = []statRange{
	{field: "attack", label: "Attack", min: 1, max: 6, fatal: true},
	{field: "defense", label: "Defense", min: 1, max: 6, fatal: true},
	{field: "speed", label: "Speed", min: 2, max: 5},
	{field: "precision", label: "Precision", min: 0, max: 4, fatal: true},
	{field: "hp", label: "HP", min: 5, max: 11},
}

func statOf(s domain.Subrole, field string) *int {
	switch field {
	case "attack":
		return s.Attack
	case "defense":
		return s.Defense
	case "speed":
		return s.Speed
	case "precision":
		return s.Precision
	case "hp":
		return s.HP
	}
	return nil
}

// ExpectedTotal returns the stat total a single role should add up to.
func ExpectedTotal(role string) int {
	if v, ok := expectedTotals[role]; ok {
		return v
	}
	return defaultExpectedTotal
}

// expectedForRoles resolves a multi-role template. ok=false means no known role matched.
func expectedForRoles(roles []string) (int, bool) {
	if slices.Contains(roles, "Tank") {
		return 12, true
	}
	if slices.Contains(roles, "DPS") || slices.Contains(roles, "Support") {
		return 11, true
	}
	return 0, false
}

// Validate checks every template in file order.
func Validate(table *domain.SubroleTable) domain.ValidationReport {
	var report domain.ValidationReport
	for _, name := range table.Names() {
		s, _ := table.Lookup(name)
		errs, warns := ValidateOne(s)
		report.Errors = append(report.Errors, errs...)
		report.Warnings = append(report.Warnings, warns...)
		report.Checked++
	}
	return report
}

// ValidateOne checks a single template and returns its errors and warnings.
func ValidateOne(s domain.Subrole) (errs []string, warns []string) {
	name := s.Name

	for _, r := range ranges {
		switch {
		case s.IsInvalid(r.field):
			errs = append(errs, fmt.Sprintf("%s: Invalid field '%s' (%s)", name, r.field, s.Invalid[r.field]))
		case statOf(s, r.field) == nil:
			errs = append(errs, fmt.Sprintf("%s: Missing field '%s'", name, r.field))
		}
	}
	if s.IsInvalid("roles") {
		errs = append(errs, fmt.Sprintf("%s: Invalid field 'roles' (%s)", name, s.Invalid["roles"]))
	}

	for _, r := range ranges {
		v := statOf(s, r.field)
		if v == nil || (*v >= r.min && *v <= r.max) {
			continue
		}
		if r.fatal {
			errs = append(errs, fmt.Sprintf("%s: %s %d out of range (%d-%d)", name, r.label, *v, r.min, r.max))
		} else {
			warns = append(warns, fmt.Sprintf("%s: %s %d unusual (expected %d-%d)", name, r.label, *v, r.min, r.max))
		}
	}

	if s.Attack == nil || s.Defense == nil || s.Speed == nil || s.Precision == nil || s.IsInvalid("roles") {
		return errs, warns
	}

	var expected int
	switch {
	case s.Roles != nil:
		var ok bool
		expected, ok = expectedForRoles(s.Roles)
		if !ok {
			errs = append(errs, fmt.Sprintf("%s: Unrecognized roles combination [%s]", name, strings.Join(s.Roles, ", ")))
			return errs, warns
		}
	case s.Role != nil:
		expected = ExpectedTotal(*s.Role)
	default:
		errs = append(errs, fmt.Sprintf("%s: No role or roles field", name))
		return errs, warns
	}

	total := *s.Attack + *s.Defense + *s.Speed + *s.Precision
	if total != expected {
		errs = append(errs, fmt.Sprintf("%s: Total %d != expected %d for role(s)", name, total, expected))
	}
	return errs, warns
}
