package commute

import (
	"strconv"
	"strings"
)

var csvHeader = []string{"travel_date", "travel_time", "route_name", "duration_minutes", "notes", "created_at"}

// BuildCSV serializes entries with a fixed 6-column header. Newlines and
// commas inside field values are each replaced with a single space instead
// of being quoted, so the encoding is lossy and not RFC 4180. Downstream
// consumers of the export depend on this exact shape.
func BuildCSV(entries []Entry) string {
	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, strings.Join(csvHeader, ","))
	for _, e := range entries {
		row := []string{
			e.TravelDate,
			e.TravelTime,
			e.RouteName,
			strconv.Itoa(e.DurationMinutes),
			e.Notes,
			e.CreatedAt,
		}
		for i, v := range row {
			v = strings.ReplaceAll(v, "\n", " ")
			v = strings.ReplaceAll(v, ",", " ")
			row[i] = v
		}
		lines = append(lines, strings.Join(row, ","))
	}
	return strings.Join(lines, "\n")
}
