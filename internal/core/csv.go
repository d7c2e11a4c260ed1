// AngelaMos | 2026
// csv.go

package core

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

const csvTimeLayout = "2006-01-02T15:04:05.000Z"

// EncodeCSV renders a header row of columns followed by one line per row.
// Strings are always quoted, times are ISO-8601 in UTC and nil values are
// left empty.
func EncodeCSV(columns []string, rows [][]any) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(columns, ","))

	for _, row := range rows {
		fields := make([]string, len(columns))
		for i := range columns {
			if i < len(row) {
				fields[i] = FormatCSVValue(row[i])
			}
		}
		lines = append(lines, strings.Join(fields, ","))
	}

	return strings.Join(lines, "\n")
}

func FormatCSVValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case time.Time:
		return v.UTC().Format(csvTimeLayout)
	case *time.Time:
		if v == nil {
			return ""
		}
		return v.UTC().Format(csvTimeLayout)
	case string:
		return quoteCSV(v)
	case *string:
		if v == nil {
			return ""
		}
		return quoteCSV(*v)
	case fmt.Stringer:
		if isNilPointer(value) {
			return ""
		}
		return v.String()
	}

	if isNilPointer(value) {
		return ""
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		return FormatCSVValue(rv.Elem().Interface())
	}

	return fmt.Sprint(value)
}

func quoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func isNilPointer(value any) bool {
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
