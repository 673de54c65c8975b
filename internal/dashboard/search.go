package dashboard

import (
	"strings"

	"github.com/otifyhq/console/internal/record"
)

// MatchesSearch reports whether a record matches the search term,
// case-insensitively. A record matches when any string field contains
// the term as a substring, or any element of any list field does.
// Boolean and numeric values are not matched directly, and the record
// id is an attribute rather than a field, so neither participates.
// An empty term matches every record.
func MatchesSearch(rec record.Record, term string) bool {
	q := strings.ToLower(strings.TrimSpace(term))
	if q == "" {
		return true
	}
	for _, v := range rec.Fields {
		switch val := v.(type) {
		case string:
			if strings.Contains(strings.ToLower(val), q) {
				return true
			}
		default:
			for _, el := range record.StringList(v) {
				if strings.Contains(strings.ToLower(el), q) {
					return true
				}
			}
		}
	}
	return false
}
