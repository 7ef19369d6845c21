package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aurceive/fighter-tools/internal/domain"

	"github.com/xuri/excelize/v2"
)

const (
	ValuesSheet     = "Values"
	ValidationSheet = "Validation"
)

var valueHeaders = []any{"ID", "Name", "Role", "SubRole", "Atk", "Def", "Spd", "Bonus", "Value"}

func newWorkbook(sheet string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

func styleHeader(f *excelize.File, sheet string, cols int) error {
	styleID, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(cols, 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, styleID)
}

func save(f *excelize.File, path string) (string, error) {
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save xlsx %q: %w", path, err)
	}
	return path, nil
}

// ExportValueTableXLSX writes the ranked value table to a single-sheet workbook.
func ExportValueTableXLSX(path string, rows []domain.ValueRow) (string, error) {
	f, err := newWorkbook(ValuesSheet)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	headers := valueHeaders
	if err := f.SetSheetRow(ValuesSheet, "A1", &headers); err != nil {
		return "", err
	}
	if err := styleHeader(f, ValuesSheet, len(valueHeaders)); err != nil {
		return "", err
	}

	for i, r := range rows {
		row := i + 2
		fr := r.Fighter
		values := []any{
			r.ID, fr.Name, fr.Role, fr.SubRole,
			domain.Stat(fr.Attack), domain.Stat(fr.Defense), domain.Stat(fr.Speed),
			r.Bonus, r.Value,
		}
		if err := f.SetSheetRow(ValuesSheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return "", err
		}
	}
	if err := f.SetPanes(ValuesSheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return "", err
	}
	return save(f, path)
}

// ExportValidationXLSX writes one row per finding: severity, subrole name and message.
func ExportValidationXLSX(path string, report domain.ValidationReport) (string, error) {
	f, err := newWorkbook(ValidationSheet)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	headers := []any{"Severity", "Subrole", "Message"}
	if err := f.SetSheetRow(ValidationSheet, "A1", &headers); err != nil {
		return "", err
	}
	if err := styleHeader(f, ValidationSheet, len(headers)); err != nil {
		return "", err
	}

	row := 2
	write := func(severity string, findings []string) error {
		for _, msg := range findings {
			values := []any{severity, subjectOf(msg), msg}
			if err := f.SetSheetRow(ValidationSheet, fmt.Sprintf("A%d", row), &values); err != nil {
				return err
			}
			row++
		}
		return nil
	}
	if err := write("ERROR", report.Errors); err != nil {
		return "", err
	}
	if err := write("WARNING", report.Warnings); err != nil {
		return "", err
	}
	return save(f, path)
}

// subjectOf extracts the "<name>" prefix from a "<name>: message" finding.
func subjectOf(msg string) string {
	name, _, ok := strings.Cut(msg, ": ")
	if !ok {
		return ""
	}
	return name
}
