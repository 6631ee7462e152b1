package tui

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/overtime/internal/models"
	"github.com/akyairhashvil/overtime/internal/util"
	"github.com/go-pdf/fpdf"
)

// GeneratePDFReport writes a one-page summary of snap into dir and returns
// the absolute file path.
func GeneratePDFReport(snap models.Snapshot, dir string) (string, error) {
	now := time.Now()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Overtime Report: %s", now.Format("2006-01-02")))
	pdf.Ln(14)

	rows := [][2]string{
		{"Day", snap.Mode.Label()},
		{"Daily target", Clock(snap.DailyTarget)},
		{"Time worked", Clock(snap.TimeWorked)},
		{"Overtime today", Overtime(snap.OvertimeToday)},
		{"Total overtime", Overtime(snap.OvertimeTotal)},
		{"Increment", fmt.Sprintf("%d min", snap.Increment/60)},
	}
	for _, row := range rows {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(50, 8, row[0])
		pdf.SetFont("Arial", "", 12)
		if row[0] == "Total overtime" {
			switch ColorClass(snap.OvertimeTotal) {
			case ColorPositive:
				pdf.SetTextColor(0, 140, 60)
			case ColorNegative:
				pdf.SetTextColor(200, 30, 30)
			}
		}
		pdf.Cell(0, 8, row[1])
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(8)
	}

	if snap.DailyTarget > 0 {
		pdf.Ln(6)
		pdf.SetFont("Arial", "I", 10)
		pct := float64(snap.TimeWorked) / float64(snap.DailyTarget) * 100
		pdf.Cell(0, 8, fmt.Sprintf("%.0f%% of the daily target worked", pct))
		pdf.Ln(8)
	}

	if dir == "" {
		dir = "."
	}
	if _, err := util.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	filename := filepath.Join(dir, fmt.Sprintf("overtime_report_%s.pdf", now.Format("20060102_150405")))
	if err := pdf.OutputFileAndClose(filename); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	absPath, err := filepath.Abs(filename)
	if err != nil {
		return filename, nil
	}
	return absPath, nil
}
