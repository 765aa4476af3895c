// Package export writes the README question index to an Excel workbook with
// one row per question and a per-topic summary sheet.
package export

import (
	"fmt"

	"github.com/dsatrack/dsatrack/internal/readme"
	"github.com/xuri/excelize/v2"
)

const (
	QuestionsSheet = "Questions"
	TopicsSheet    = "Topics"
)

var (
	questionHeader = []interface{}{"Topic", "Number", "Title", "Difficulty", "Completed", "Solution"}
	topicHeader    = []interface{}{"Topic", "Folder", "Questions", "Completed"}
)

// Build assembles the workbook for idx. The caller owns the returned file
// and must Close it.
func Build(idx *readme.Index) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := build(f, idx); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func build(f *excelize.File, idx *readme.Index) error {
	if err := f.SetSheetName("Sheet1", QuestionsSheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}
	if _, err := f.NewSheet(TopicsSheet); err != nil {
		return fmt.Errorf("creating %s sheet: %w", TopicsSheet, err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	titles := make(map[int]string, len(idx.Topics))
	for _, tp := range idx.Topics {
		titles[tp.Number] = tp.Title
	}

	rows := make([][]interface{}, 0, len(idx.Questions))
	for _, q := range idx.Questions {
		topic := titles[q.Topic]
		if topic == "" {
			topic = "Unsorted"
		}
		rows = append(rows, []interface{}{topic, q.Number, q.Title, q.Difficulty, yesNo(q.Completed), q.SolutionPath})
	}
	if err := writeSheet(f, QuestionsSheet, questionHeader, rows, headerStyle); err != nil {
		return err
	}

	rows = rows[:0]
	for _, tp := range idx.Topics {
		rows = append(rows, []interface{}{tp.Title, tp.Folder, len(idx.ByTopic(tp.Number)), idx.Completed(tp.Number)})
	}
	if err := writeSheet(f, TopicsSheet, topicHeader, rows, headerStyle); err != nil {
		return err
	}

	if err := f.SetColWidth(QuestionsSheet, "C", "C", 40); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}
	if err := f.SetColWidth(QuestionsSheet, "F", "F", 60); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}
	f.SetActiveSheet(0)
	return nil
}

func writeSheet(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}, headerStyle int) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing %s header: %w", sheet, err)
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("styling %s header: %w", sheet, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}

// WriteFile builds the workbook for idx and saves it to path.
func WriteFile(path string, idx *readme.Index) error {
	f, err := Build(idx)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
