package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"planshop/internal/domain"
)

// DefaultWorkbookName is the deterministic download name for the workbook.
const DefaultWorkbookName = "work-plan.xlsx"

const (
	overviewSheet = "Overview"
	planSheet     = "Work Plan"
)

// planColumns are exactly the columns of the tabular sheet, in order.
var planColumns = []string{"Goal", "Objective", "Task", "Responsibility", "Timeline"}

// WorkbookOptions configures workbook rendering.
type WorkbookOptions struct {
	// RightToLeft marks both sheet views as right-to-left, matching the
	// target locale's script direction.
	RightToLeft bool
}

// WriteWorkbook renders the plan into a two-sheet xlsx workbook: an overview
// sheet (vision, goals, SWOT, constraints) and a tabular work-plan sheet fed
// by the summary table. Childless goals and objectives still get a row.
func WriteWorkbook(w io.Writer, plan *domain.Plan, opts WorkbookOptions) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", overviewSheet); err != nil {
		return fmt.Errorf("renaming overview sheet: %w", err)
	}
	if _, err := f.NewSheet(planSheet); err != nil {
		return fmt.Errorf("creating plan sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	if err := writeOverview(f, plan, headerStyle); err != nil {
		return err
	}
	if err := writePlanTable(f, plan, headerStyle); err != nil {
		return err
	}

	if opts.RightToLeft {
		rtl := true
		for _, sheet := range []string{overviewSheet, planSheet} {
			if err := f.SetSheetView(sheet, 0, &excelize.ViewOptions{RightToLeft: &rtl}); err != nil {
				return fmt.Errorf("setting %s view: %w", sheet, err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeOverview(f *excelize.File, plan *domain.Plan, headerStyle int) error {
	row := 1
	section := func(title string) error {
		cell := fmt.Sprintf("A%d", row)
		if err := f.SetCellValue(overviewSheet, cell, title); err != nil {
			return err
		}
		if err := f.SetCellStyle(overviewSheet, cell, cell, headerStyle); err != nil {
			return err
		}
		row++
		return nil
	}
	line := func(col string, values ...interface{}) error {
		for i, v := range values {
			cell, err := excelize.CoordinatesToCellName(i+colIndex(col), row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(overviewSheet, cell, v); err != nil {
				return err
			}
		}
		row++
		return nil
	}

	if err := section("Vision"); err != nil {
		return err
	}
	if err := line("A", plan.Vision); err != nil {
		return err
	}
	row++

	if err := section("Strategic Goals"); err != nil {
		return err
	}
	for i, g := range plan.Goals {
		if err := line("A", i+1, g.Text); err != nil {
			return err
		}
	}
	row++

	if err := section("SWOT"); err != nil {
		return err
	}
	for _, cat := range domain.SwotCategories {
		label := swotLabel(cat)
		for _, entry := range plan.Swot.Category(cat) {
			if err := line("A", label, entry); err != nil {
				return err
			}
		}
	}
	row++

	if err := section("Constraints"); err != nil {
		return err
	}
	if err := line("A", plan.Constraints); err != nil {
		return err
	}

	return f.SetColWidth(overviewSheet, "A", "B", 40)
}

func writePlanTable(f *excelize.File, plan *domain.Plan, headerStyle int) error {
	if err := f.SetSheetRow(planSheet, "A1", &planColumns); err != nil {
		return fmt.Errorf("writing plan header: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(planColumns), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(planSheet, "A1", last, headerStyle); err != nil {
		return err
	}

	for i, r := range plan.SummaryTable() {
		cells := []interface{}{r.Goal, r.Objective, r.Task, r.Responsibility, r.Timeline}
		anchor := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(planSheet, anchor, &cells); err != nil {
			return fmt.Errorf("writing plan row %d: %w", i+2, err)
		}
	}

	return f.SetColWidth(planSheet, "A", "E", 28)
}

func swotLabel(cat domain.SwotCategory) string {
	switch cat {
	case domain.SwotStrengths:
		return "Strength"
	case domain.SwotWeaknesses:
		return "Weakness"
	case domain.SwotOpportunities:
		return "Opportunity"
	case domain.SwotThreats:
		return "Threat"
	}
	return string(cat)
}

func colIndex(col string) int {
	n, _ := excelize.ColumnNameToNumber(col)
	return n
}
