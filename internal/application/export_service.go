package application

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Llorsque/500-tool/internal/laptime"

	"github.com/xuri/excelize/v2"
)

type ExportServiceImpl struct {
	ranking RankingService
	layout  laptime.Layout
}

func NewExportServiceImpl(ranking RankingService, layout laptime.Layout) *ExportServiceImpl {
	return &ExportServiceImpl{
		ranking: ranking,
		layout:  layout,
	}
}

// CSV serializes the current leaderboard. Every field is double-quoted
// with embedded quotes doubled, fields are ";"-joined, and only ranked
// rows appear. An absent second lap renders as the placeholder.
func (s *ExportServiceImpl) CSV() string {
	lines := make([]string, 0, 1+len(csvHeader))
	lines = append(lines, strings.Join(csvHeader, csvDelimiter))

	for _, e := range s.ranking.Leaderboard() {
		lines = append(lines, joinCSVRow([]string{
			strconv.Itoa(e.Position),
			e.Record.DisplayName(),
			laptime.Format(e.BestMs, s.layout),
			laptime.FormatOptional(e.Lap1Ms, e.Lap1OK, s.layout),
			laptime.FormatOptional(e.Lap2Ms, e.Lap2OK, s.layout),
		}))
	}
	return strings.Join(lines, "\n")
}

// WriteCSVFile writes the export as UTF-8 text. An empty path falls
// back to the default file name.
func (s *ExportServiceImpl) WriteCSVFile(path string) error {
	if path == "" {
		path = csvFileName
	}
	if err := os.WriteFile(path, []byte(s.CSV()), 0644); err != nil {
		return fmt.Errorf("failed to write csv export: %w", err)
	}
	return nil
}

// Excel builds an xlsx workbook with the same columns as the CSV
// export.
func (s *ExportServiceImpl) Excel() ([]byte, error) {
	f := excelize.NewFile()
	f.NewSheet(excelSheetName)
	f.DeleteSheet("Sheet1")

	for i, h := range csvHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(excelSheetName, cell, h)
	}

	row := 2
	for _, e := range s.ranking.Leaderboard() {
		f.SetCellValue(excelSheetName, fmt.Sprintf("A%d", row), e.Position)
		f.SetCellValue(excelSheetName, fmt.Sprintf("B%d", row), e.Record.DisplayName())
		f.SetCellValue(excelSheetName, fmt.Sprintf("C%d", row), laptime.Format(e.BestMs, s.layout))
		f.SetCellValue(excelSheetName, fmt.Sprintf("D%d", row), laptime.FormatOptional(e.Lap1Ms, e.Lap1OK, s.layout))
		f.SetCellValue(excelSheetName, fmt.Sprintf("E%d", row), laptime.FormatOptional(e.Lap2Ms, e.Lap2OK, s.layout))
		row++
	}

	f.SetColWidth(excelSheetName, "A", "A", 6)
	f.SetColWidth(excelSheetName, "B", "B", 24)
	f.SetColWidth(excelSheetName, "C", "E", 12)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
