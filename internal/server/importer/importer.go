// Package importer loads question content from spreadsheets.
//
// The first row is a header. The column named "id" holds the question id,
// every other non-empty column becomes a field of the question payload.
// Cells containing a JSON object or array are embedded as is, the rest as strings.
package importer

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/iudanet/sm2sync/internal/models"
	"github.com/iudanet/sm2sync/internal/validation"
)

//go:generate moq -out saver_mock.go . Saver

// IDColumn is the header of the column with question ids
const IDColumn = "id"

// ErrNoIDColumn is returned when the header has no IDColumn
var ErrNoIDColumn = errors.New("header has no \"" + IDColumn + "\" column")

// Saver stores imported questions
type Saver interface {
	SaveQuestions(ctx context.Context, questions []*models.Question) error
}

// Config задает параметры импорта
type Config struct {
	SheetName string // SheetName лист Excel; пусто - первый лист
}

// Result содержит итоги импорта
type Result struct {
	Errors   []string
	Total    int // Total строк с данными
	Imported int // Imported сохранённых вопросов
	Skipped  int // Skipped пустых или ошибочных строк
}

// ImportFile imports questions from an .xlsx or .csv file
func ImportFile(ctx context.Context, path string, saver Saver, cfg Config) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return ImportCSV(ctx, f, saver)
	}
	return ImportExcel(ctx, f, saver, cfg)
}

// ImportExcel imports questions from an Excel workbook
func ImportExcel(ctx context.Context, r io.Reader, saver Saver, cfg Config) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := cfg.SheetName
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows of sheet %q: %w", sheet, err)
	}

	return importRows(ctx, rows, saver)
}

// ImportCSV imports questions from CSV with the same layout as the Excel sheet
func ImportCSV(ctx context.Context, r io.Reader, saver Saver) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // строки разной длины допустимы

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV: %w", err)
	}

	return importRows(ctx, rows, saver)
}

func importRows(ctx context.Context, rows [][]string, saver Saver) (*Result, error) {
	if len(rows) == 0 {
		return nil, ErrNoIDColumn
	}

	header := make([]string, len(rows[0]))
	idCol := -1
	for i, name := range rows[0] {
		header[i] = strings.TrimSpace(name)
		if strings.EqualFold(header[i], IDColumn) && idCol < 0 {
			idCol = i
		}
	}
	if idCol < 0 {
		return nil, ErrNoIDColumn
	}

	result := &Result{Errors: make([]string, 0)}

	// Повтор id в файле: остаётся последняя строка
	byID := make(map[string]int)
	questions := make([]*models.Question, 0, len(rows)-1)

	for i, row := range rows[1:] {
		rowNum := i + 2
		if isEmptyRow(row) {
			continue
		}
		result.Total++

		q, err := parseRow(header, idCol, row)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}

		if idx, ok := byID[q.ID]; ok {
			questions[idx] = q
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: duplicate id %q replaces an earlier row", rowNum, q.ID))
			continue
		}
		byID[q.ID] = len(questions)
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		return result, nil
	}

	if err := saver.SaveQuestions(ctx, questions); err != nil {
		return nil, fmt.Errorf("failed to save questions: %w", err)
	}
	result.Imported = len(questions)

	return result, nil
}

func parseRow(header []string, idCol int, row []string) (*models.Question, error) {
	id := ""
	if idCol < len(row) {
		id = strings.TrimSpace(row[idCol])
	}
	if err := validation.ValidateID("question id", id); err != nil {
		return nil, err
	}

	payload := make(map[string]json.RawMessage)
	for i, cell := range row {
		if i == idCol || i >= len(header) || header[i] == "" {
			continue
		}
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		payload[header[i]] = cellValue(cell)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	return &models.Question{ID: id, Payload: data}, nil
}

func cellValue(cell string) json.RawMessage {
	if (strings.HasPrefix(cell, "{") || strings.HasPrefix(cell, "[")) && json.Valid([]byte(cell)) {
		return json.RawMessage(cell)
	}
	// json.Marshal строки не возвращает ошибку
	data, _ := json.Marshal(cell)
	return data
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
