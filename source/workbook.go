package source

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vdobler/kpichart"
	"github.com/vdobler/kpichart/data"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// Sheet names of a payload workbook. The config sheet is optional and holds
// key/value pairs in its first two columns.
const (
	GroupsSheet = "groups"
	RowsSheet   = "rows"
	ConfigSheet = "config"
)

var (
	// ErrMissingSheet is returned if a workbook lacks the groups or rows
	// sheet.
	ErrMissingSheet = errors.New("missing sheet")

	// ErrMissingColumn is returned if a required header is absent.
	ErrMissingColumn = errors.New("missing column")
)

// CellError reports a cell which could not be converted.
type CellError struct {
	Sheet string
	Cell  string
	Err   error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("sheet %q cell %s: %v", e.Sheet, e.Cell, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}

// ReadWorkbook reads a payload from the XLSX file path.
//
// The first row of each sheet is a header naming the columns like the JSON
// fields: groupId, groupName, groupType, groupOrder, useSecondaryYAxis,
// stackedGroupId, shift, showYValues on the groups sheet and groupId,
// xNumberValue, xDateValue, yValue, zValue, color, textLabel on the rows
// sheet. Date cells may be Excel dates or ISO 8601 strings.
func ReadWorkbook(path string) (*Payload, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p := &Payload{}
	if p.Groups, err = readGroups(f); err != nil {
		return nil, err
	}
	if p.Rows, err = readRows(f); err != nil {
		return nil, err
	}
	if p.Config, err = readConfigSheet(f); err != nil {
		return nil, err
	}
	return p, nil
}

// table is a sheet read with raw cell values, split into header and body.
type table struct {
	sheet  string
	column map[string]int
	rows   [][]string
}

func readTable(f *excelize.File, sheet string, required ...string) (*table, error) {
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w %q", ErrMissingSheet, sheet)
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	t := &table{sheet: sheet, column: make(map[string]int)}
	if len(rows) > 0 {
		for i, h := range rows[0] {
			t.column[strings.TrimSpace(h)] = i
		}
		t.rows = rows[1:]
	}
	for _, name := range required {
		if _, ok := t.column[name]; !ok {
			return nil, fmt.Errorf("sheet %q: %w %q", sheet, ErrMissingColumn, name)
		}
	}
	return t, nil
}

// value returns the raw cell of column name in body row r, "" if absent.
func (t *table) value(r int, name string) string {
	c, ok := t.column[name]
	if !ok || c >= len(t.rows[r]) {
		return ""
	}
	return strings.TrimSpace(t.rows[r][c])
}

func (t *table) cellError(r int, name string, err error) error {
	cell, _ := excelize.CoordinatesToCellName(t.column[name]+1, r+2)
	return &CellError{Sheet: t.sheet, Cell: cell, Err: err}
}

func (t *table) number(r int, name string) (*float64, error) {
	s := t.value(r, name)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, t.cellError(r, name, err)
	}
	return &v, nil
}

func (t *table) integer(r int, name string) (*int, error) {
	v, err := t.number(r, name)
	if v == nil || err != nil {
		return nil, err
	}
	i := int(*v)
	if float64(i) != *v {
		return nil, t.cellError(r, name, fmt.Errorf("%v is not an integer", *v))
	}
	return &i, nil
}

func (t *table) flag(r int, name string) (bool, error) {
	switch strings.ToLower(t.value(r, name)) {
	case "", "0", "false", "no":
		return false, nil
	case "1", "true", "yes":
		return true, nil
	}
	return false, t.cellError(r, name, fmt.Errorf("%q is not a boolean", t.value(r, name)))
}

// date accepts Excel serial dates and ISO 8601 dates or timestamps.
func (t *table) date(r int, name string) (*time.Time, error) {
	s := t.value(r, name)
	if s == "" {
		return nil, nil
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		d, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return nil, t.cellError(r, name, err)
		}
		return &d, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if d, err := time.Parse(layout, s); err == nil {
			return &d, nil
		}
	}
	return nil, t.cellError(r, name, fmt.Errorf("%q is not a date", s))
}

func (t *table) empty(r int) bool {
	for _, v := range t.rows[r] {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func readGroups(f *excelize.File) ([]kpichart.GroupInfo, error) {
	t, err := readTable(f, GroupsSheet, "groupId", "groupType")
	if err != nil {
		return nil, err
	}
	var infos []kpichart.GroupInfo
	for r := range t.rows {
		if t.empty(r) {
			continue
		}
		var g kpichart.GroupInfo
		id, err := t.integer(r, "groupId")
		if err != nil {
			return nil, err
		}
		if id == nil {
			return nil, t.cellError(r, "groupId", errors.New("empty group id"))
		}
		g.ID = *id
		g.Name = t.value(r, "groupName")
		if g.Type, err = kpichart.ParseGroupType(t.value(r, "groupType")); err != nil {
			return nil, t.cellError(r, "groupType", err)
		}
		if order, err := t.integer(r, "groupOrder"); err != nil {
			return nil, err
		} else if order != nil {
			g.Order = *order
		}
		if g.UseSecondaryYAxis, err = t.flag(r, "useSecondaryYAxis"); err != nil {
			return nil, err
		}
		if g.StackedGroupID, err = t.integer(r, "stackedGroupId"); err != nil {
			return nil, err
		}
		if shift, err := t.number(r, "shift"); err != nil {
			return nil, err
		} else if shift != nil {
			g.Shift = *shift
		}
		if g.ShowYValues, err = t.flag(r, "showYValues"); err != nil {
			return nil, err
		}
		g.LabelType = t.value(r, "labelType")
		g.Currency = t.value(r, "currency")
		infos = append(infos, g)
	}
	return infos, nil
}

func readRows(f *excelize.File) ([]data.Row, error) {
	t, err := readTable(f, RowsSheet, "groupId", "yValue")
	if err != nil {
		return nil, err
	}
	var rows []data.Row
	for r := range t.rows {
		if t.empty(r) {
			continue
		}
		var row data.Row
		id, err := t.integer(r, "groupId")
		if err != nil {
			return nil, err
		}
		if id == nil {
			return nil, t.cellError(r, "groupId", errors.New("empty group id"))
		}
		row.GroupID = *id
		y, err := t.number(r, "yValue")
		if err != nil {
			return nil, err
		}
		if y != nil {
			row.Y = *y
		}
		if row.XNumber, err = t.number(r, "xNumberValue"); err != nil {
			return nil, err
		}
		if row.XDate, err = t.date(r, "xDateValue"); err != nil {
			return nil, err
		}
		if row.Z, err = t.number(r, "zValue"); err != nil {
			return nil, err
		}
		if row.NumericLabel, err = t.number(r, "numericLabel"); err != nil {
			return nil, err
		}
		row.Color = t.value(r, "color")
		row.TextLabel = t.value(r, "textLabel")
		rows = append(rows, row)
	}
	return rows, nil
}

// readConfigSheet turns the key/value pairs of the config sheet into a
// YAML mapping and decodes it, so cells are typed like a config file.
func readConfigSheet(f *excelize.File) (*kpichart.PartialConfig, error) {
	if idx, err := f.GetSheetIndex(ConfigSheet); err != nil || idx < 0 {
		return nil, nil
	}
	rows, err := f.GetRows(ConfigSheet)
	if err != nil {
		return nil, err
	}
	doc := make(map[string]string)
	for _, r := range rows {
		if len(r) < 2 || strings.TrimSpace(r[0]) == "" {
			continue
		}
		doc[strings.TrimSpace(r[0])] = strings.TrimSpace(r[1])
	}
	if len(doc) == 0 {
		return nil, nil
	}

	var sb strings.Builder
	for k, v := range doc {
		fmt.Fprintf(&sb, "%s: %s\n", k, v)
	}
	var p kpichart.PartialConfig
	dec := yaml.NewDecoder(strings.NewReader(sb.String()))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("sheet %q: %w", ConfigSheet, err)
	}
	return &p, nil
}
