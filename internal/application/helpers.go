package application

import "strings"

// quoteCSVField wraps a field in double quotes with internal quotes
// doubled. Every exported field is quoted, numeric ones included.
func quoteCSVField(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

func joinCSVRow(fields []string) string {
	quoted := make([]string, 0, len(fields))
	for _, f := range fields {
		quoted = append(quoted, quoteCSVField(f))
	}
	return strings.Join(quoted, csvDelimiter)
}
