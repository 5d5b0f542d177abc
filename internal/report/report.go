// Package report renders records pages, scorecards and reference lists as
// plain-text tables for the command line.
package report

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/maxviazov/cricket-records-service/internal/engine"
	"github.com/maxviazov/cricket-records-service/internal/model"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// column is one printable field of a records row.
type column struct {
	header    string
	index     []int
	omitEmpty bool
}

var (
	timeType      = reflect.TypeOf(time.Time{})
	dimensionType = reflect.TypeOf(model.DimensionValue{})
)

// columnsOf walks a row struct in declaration order. Ids and the raw
// dimension key are left out; the resolved names carry the same information.
func columnsOf(t reflect.Type, prefix []int) []column {
	var cols []column
	for i := range t.NumField() {
		f := t.Field(i)
		idx := append(append([]int(nil), prefix...), i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			cols = append(cols, columnsOf(f.Type, idx)...)
			continue
		}
		if !f.IsExported() || f.Type == dimensionType {
			continue
		}
		name, opts, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" || strings.HasSuffix(name, "_id") || name == "match_type" {
			continue
		}
		cols = append(cols, column{
			header:    strings.ToUpper(strings.ReplaceAll(name, "_", " ")),
			index:     idx,
			omitEmpty: strings.Contains(opts, "omitempty"),
		})
	}
	return cols
}

func cell(v reflect.Value) string {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return "-"
		}
		v = v.Elem()
	}
	if v.Type() == timeType {
		t := v.Interface().(time.Time)
		if t.IsZero() {
			return ""
		}
		return t.Format(time.DateOnly)
	}
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			return "*"
		}
		return ""
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', 2, 64)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.String:
		return v.String()
	default:
		return fmt.Sprint(v.Interface())
	}
}

// Records prints one page of any category. Optional columns that are empty
// on every row of the page, like the dimension name of a career query, are
// dropped.
func Records(w io.Writer, res engine.Paged, offset int) error {
	v := reflect.Indirect(reflect.ValueOf(res))
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("report: unsupported result %T", res)
	}
	rows := v.FieldByName("Rows")
	if !rows.IsValid() || rows.Kind() != reflect.Slice || rows.Type().Elem().Kind() != reflect.Struct {
		return fmt.Errorf("report: unsupported result %T", res)
	}

	cols := columnsOf(rows.Type().Elem(), nil)
	cells := make([][]string, rows.Len())
	used := make([]bool, len(cols))
	for r := range rows.Len() {
		row := rows.Index(r)
		cells[r] = make([]string, len(cols))
		for c, col := range cols {
			s := cell(row.FieldByIndex(col.index))
			cells[r][c] = s
			if s != "" {
				used[c] = true
			}
		}
	}

	keep := make([]int, 0, len(cols))
	for c, col := range cols {
		if !col.omitEmpty || used[c] {
			keep = append(keep, c)
		}
	}

	table := newTable(w)
	header := []any{"#"}
	for _, c := range keep {
		header = append(header, cols[c].header)
	}
	table.Header(header...)
	for r, line := range cells {
		out := []any{strconv.Itoa(offset + r + 1)}
		for _, c := range keep {
			out = append(out, line[c])
		}
		table.Append(out...)
	}
	table.Render()

	fmt.Fprintf(w, "%s\n", pageLine(offset, res.Len(), res.Total()))
	return nil
}

func pageLine(offset, n, total int) string {
	if n == 0 {
		return fmt.Sprintf("no rows (total %d)", total)
	}
	return fmt.Sprintf("rows %d-%d of %d", offset+1, offset+n, total)
}

// RefItems prints an id/name listing.
func RefItems(w io.Writer, items []model.RefItem, offset, total int) {
	table := newTable(w)
	table.Header("ID", "NAME")
	for _, it := range items {
		table.Append(strconv.FormatInt(it.ID, 10), it.Name)
	}
	table.Render()
	fmt.Fprintf(w, "%s\n", pageLine(offset, len(items), total))
}
