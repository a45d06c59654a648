// Package loadfile reads optimization requests from files.
//
// Three formats are accepted, chosen by file extension:
//
//   - .json: the body of POST /api/optimize
//   - .toml: an optional [truck] table and [[boxes]] entries
//   - .xlsx: one box type per row on the first sheet
//
// TOML boxes and spreadsheet rows share the columns
// id, name, width, length, stackable, non_stackable. A row without
// dimensions refers to a built-in box type.
package loadfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/guttosm/truckload-service/internal/domain/dto"
	"github.com/xuri/excelize/v2"
)

var (
	// ErrUnsupportedFormat is returned for extensions other than json, toml and xlsx.
	ErrUnsupportedFormat = errors.New("unsupported request file format")
	// ErrNoBoxes is returned when a spreadsheet has a header but no rows.
	ErrNoBoxes = errors.New("request file lists no boxes")
)

// Columns is the spreadsheet header, in order.
var Columns = []string{"id", "name", "width", "length", "stackable", "non_stackable"}

// tomlRequest is the layout of a TOML request file.
type tomlRequest struct {
	Truck *dto.TruckRequest      `toml:"truck"`
	Boxes []dto.CustomBoxRequest `toml:"boxes"`
}

// Read opens path and decodes it according to its extension.
func Read(path string) (*dto.OptimizeRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return ReadJSON(f)
	case ".toml":
		return ReadTOML(f)
	case ".xlsx":
		return ReadExcel(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// ReadJSON decodes an API request body. Unknown fields are an error.
func ReadJSON(r io.Reader) (*dto.OptimizeRequest, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var req dto.OptimizeRequest
	if err := dec.Decode(&req); err != nil {
		return nil, fmt.Errorf("decode json request: %w", err)
	}
	return &req, nil
}

// ReadTOML decodes a TOML request. Unknown keys are an error.
func ReadTOML(r io.Reader) (*dto.OptimizeRequest, error) {
	var file tomlRequest
	md, err := toml.NewDecoder(r).Decode(&file)
	if err != nil {
		return nil, fmt.Errorf("decode toml request: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("decode toml request: unknown keys %v", undecoded)
	}
	return &dto.OptimizeRequest{Truck: file.Truck, CustomBoxes: file.Boxes}, nil
}

// ReadExcel reads box rows from the first sheet of a workbook. The first row
// must be a header naming at least the id column; columns may appear in any
// order and header matching ignores case.
func ReadExcel(r io.Reader) (*dto.OptimizeRequest, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	index, err := headerIndex(rows[0])
	if err != nil {
		return nil, err
	}

	boxes := make([]dto.CustomBoxRequest, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if blank(row) {
			continue
		}
		box, err := parseRow(row, index)
		if err != nil {
			// +2: one for the header, one for 1-based row numbers
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		boxes = append(boxes, box)
	}
	if len(boxes) == 0 {
		return nil, ErrNoBoxes
	}
	return &dto.OptimizeRequest{CustomBoxes: boxes}, nil
}

// headerIndex maps column names to cell positions.
func headerIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(Columns))
	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		for _, col := range Columns {
			if name == col {
				if _, dup := index[col]; dup {
					return nil, fmt.Errorf("header: duplicate column %q", col)
				}
				index[col] = i
			}
		}
	}
	if _, ok := index["id"]; !ok {
		return nil, fmt.Errorf("header: missing column \"id\", want %s", strings.Join(Columns, ","))
	}
	return index, nil
}

func parseRow(row []string, index map[string]int) (dto.CustomBoxRequest, error) {
	cell := func(col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	box := dto.CustomBoxRequest{ID: cell("id"), Name: cell("name")}
	if box.ID == "" {
		return box, errors.New("id is empty")
	}

	var err error
	if box.Width, err = parseFloat("width", cell("width")); err != nil {
		return box, err
	}
	if box.Length, err = parseFloat("length", cell("length")); err != nil {
		return box, err
	}
	if box.Stackable, err = parseInt("stackable", cell("stackable")); err != nil {
		return box, err
	}
	if box.NonStackable, err = parseInt("non_stackable", cell("non_stackable")); err != nil {
		return box, err
	}
	return box, nil
}

func parseFloat(col, s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	// Spreadsheets in many locales write a decimal comma.
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid number %q", col, s)
	}
	return v, nil
}

func parseInt(col, s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		// Numeric cells may come back as "4.0".
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || f != float64(int(f)) {
			return 0, fmt.Errorf("%s: invalid count %q", col, s)
		}
		v = int(f)
	}
	return v, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
