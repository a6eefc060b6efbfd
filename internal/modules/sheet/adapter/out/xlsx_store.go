package out

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"sync"

	"github.com/xuri/excelize/v2"

	"healthlog/internal/modules/sheet/domain"
	sheetout "healthlog/internal/modules/sheet/port/out"
)

const sheetName = "Records"

// XLSXRowStore keeps rows in a workbook: row 1 holds column names, each later
// row one appended object. Unknown keys add columns on the right.
type XLSXRowStore struct {
	mu   sync.Mutex
	path string
}

func NewXLSXRowStore(path string) (sheetout.RowStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create workbook dir: %w", err)
	}
	return &XLSXRowStore{path: path}, nil
}

func (s *XLSXRowStore) open() (*excelize.File, error) {
	f, err := excelize.OpenFile(s.path)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	f = excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("name sheet: %w", err)
	}
	return f, nil
}

func (s *XLSXRowStore) Append(_ context.Context, row domain.Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.open()
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return fmt.Errorf("read rows: %w", err)
	}
	var header []string
	if len(rows) > 0 {
		header = rows[0]
	}
	for _, col := range row.Columns() {
		if slices.Contains(header, col) {
			continue
		}
		header = append(header, col)
		cell, err := excelize.CoordinatesToCellName(len(header), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheetName, cell, col); err != nil {
			return fmt.Errorf("write header %s: %w", col, err)
		}
	}

	next := len(rows) + 1
	if next < 2 {
		next = 2
	}
	for i, col := range header {
		v, ok := row[col]
		if !ok {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(i+1, next)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, domain.Cell(v)); err != nil {
			return fmt.Errorf("write cell %s: %w", cell, err)
		}
	}
	if err := f.SaveAs(s.path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func (s *XLSXRowStore) List(_ context.Context) ([]domain.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		return []domain.Row{}, nil
	}
	f, err := s.open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	out := []domain.Row{}
	if len(rows) < 2 {
		return out, nil
	}
	header := rows[0]
	for r, cells := range rows[1:] {
		row := domain.Row{}
		for c, col := range header {
			value := ""
			if c < len(cells) {
				value = cells[c]
			}
			v, err := s.typed(f, c+1, r+2, value)
			if err != nil {
				return nil, err
			}
			row[col] = v
		}
		out = append(out, row)
	}
	return out, nil
}

// typed restores numbers and booleans that were written as such.
func (s *XLSXRowStore) typed(f *excelize.File, col, row int, value string) (any, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return nil, err
	}
	kind, err := f.GetCellType(sheetName, cell)
	if err != nil {
		return nil, fmt.Errorf("cell type %s: %w", cell, err)
	}
	switch kind {
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		if n, err := strconv.ParseFloat(value, 64); err == nil {
			return n, nil
		}
	case excelize.CellTypeBool:
		return value == "TRUE" || value == "1", nil
	}
	return value, nil
}

func (s *XLSXRowStore) Close() error {
	return nil
}
