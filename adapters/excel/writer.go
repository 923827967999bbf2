package excel

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"dataqa/domain/quality"
	"dataqa/internal/errors"
)

// Writer renders a quality report as a multi-sheet xlsx workbook
type Writer struct{}

// NewWriter creates an xlsx report writer
func NewWriter() *Writer {
	return &Writer{}
}

// Write saves the report to path with one sheet per analysis section.
// A sheet that fails to fill is skipped and reported in the first return
// value; only a failure to produce the workbook itself is an error.
func (w *Writer) Write(report *quality.Report, path string) ([]string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sections := []struct {
		sheet string
		fill  func(*excelize.File, string, *quality.Report) error
	}{
		{"Data Types", writeDataTypes},
		{"Basic Statistics", writeBasicStats},
		{"Missing Values", writeMissing},
		{"Duplicates", writeDuplicates},
		{"Distribution Stats", writeDistribution},
		{"Outliers", writeOutliers},
		{"Correlations", writeCorrelations},
	}

	var skipped []string
	for _, s := range sections {
		if _, err := f.NewSheet(s.sheet); err != nil {
			return nil, errors.Render(path, err)
		}
		if err := s.fill(f, s.sheet, report); err != nil {
			skipped = append(skipped, fmt.Sprintf("%s: %v", s.sheet, err))
		}
	}

	// Drop the workbook's default sheet
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, errors.Render(path, err)
	}
	if idx, err := f.GetSheetIndex("Data Types"); err == nil {
		f.SetActiveSheet(idx)
	}

	if err := f.SaveAs(path); err != nil {
		return nil, errors.Render(path, err)
	}
	return skipped, nil
}

// setRow writes one row of cells starting at column A.
func setRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	for i, cell := range cells {
		name, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, name, cell); err != nil {
			return err
		}
	}
	return nil
}

// num converts a float for a cell, mapping NaN and infinities to blank.
func num(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return v
}

func writeDataTypes(f *excelize.File, sheet string, report *quality.Report) error {
	if err := setRow(f, sheet, 1, []interface{}{"Column", "Type", "Non-Null Count", "Unique Values", "Memory (Bytes)"}); err != nil {
		return err
	}
	for i, p := range report.Profiles {
		row := []interface{}{p.Name, string(p.Kind), p.NonNull, p.Unique, p.MemoryBytes}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeBasicStats(f *excelize.File, sheet string, report *quality.Report) error {
	if err := setRow(f, sheet, 1, []interface{}{"Column", "Count", "Unique", "Top", "Freq", "Mean", "Std", "Min", "25%", "50%", "75%", "Max"}); err != nil {
		return err
	}
	for i, b := range report.Basic {
		var freq interface{} = ""
		if b.Top != "" {
			freq = b.Freq
		}
		row := []interface{}{
			b.Column, b.Count, b.Unique, b.Top, freq,
			num(b.Mean), num(b.Std), num(b.Min), num(b.Q1), num(b.Median), num(b.Q3), num(b.Max),
		}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeMissing(f *excelize.File, sheet string, report *quality.Report) error {
	if err := setRow(f, sheet, 1, []interface{}{"Column", "Missing Count", "Missing %"}); err != nil {
		return err
	}
	for i, p := range report.Profiles {
		row := []interface{}{p.Name, p.Missing, num(p.MissingPct)}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeDuplicates(f *excelize.File, sheet string, report *quality.Report) error {
	d := report.Duplicates
	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Total Rows", d.TotalRows},
		{"Duplicate Rows", d.DuplicateRows},
		{"Unique Rows", d.UniqueRows},
		{"Duplicate %", num(d.DuplicatePct)},
	}
	for i, row := range rows {
		if err := setRow(f, sheet, i+1, row); err != nil {
			return err
		}
	}
	return nil
}

func writeDistribution(f *excelize.File, sheet string, report *quality.Report) error {
	if err := setRow(f, sheet, 1, []interface{}{"Column", "Mean", "Median", "Std", "Skewness", "Kurtosis", "IQR", "Lower Fence", "Upper Fence"}); err != nil {
		return err
	}
	for i, d := range report.Distribution {
		row := []interface{}{
			d.Column, num(d.Mean), num(d.Median), num(d.Std),
			num(d.Skewness), num(d.Kurtosis), num(d.IQR), num(d.LowerFence), num(d.UpperFence),
		}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeOutliers(f *excelize.File, sheet string, report *quality.Report) error {
	if err := setRow(f, sheet, 1, []interface{}{"Column", "Outlier Count", "Outlier %", "Lower Fence", "Upper Fence"}); err != nil {
		return err
	}
	for i, d := range report.Distribution {
		row := []interface{}{d.Column, d.OutlierCount, num(d.OutlierPct), num(d.LowerFence), num(d.UpperFence)}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeCorrelations(f *excelize.File, sheet string, report *quality.Report) error {
	m := report.Correlations
	if m == nil {
		return setRow(f, sheet, 1, []interface{}{"Fewer than two numeric columns, no correlations computed"})
	}

	header := make([]interface{}, m.Dim()+1)
	header[0] = ""
	for i, name := range m.Columns {
		header[i+1] = name
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	for i, name := range m.Columns {
		row := make([]interface{}, m.Dim()+1)
		row[0] = name
		for j := 0; j < m.Dim(); j++ {
			row[j+1] = num(m.At(i, j))
		}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}
