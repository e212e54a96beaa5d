package compensation

import (
	"sort"
	"time"
)

type SortField string

const (
	SortByDate        SortField = "date"
	SortByWorkHours   SortField = "work_hours"
	SortByDailySalary SortField = "daily_salary"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// FilterRecords returns the records belonging to userID whose calendar date
// falls in the given year and month, preserving input order. Dates are
// compared as calendar dates, not instants, so no time-zone shift can move a
// record across a month boundary. Records with unparsable dates never match.
func FilterRecords(records []Record, userID string, year int, month time.Month) []Record {
	var out []Record
	for _, rec := range records {
		if rec.UserID != userID {
			continue
		}
		d, err := time.Parse(dateLayout, rec.Date)
		if err != nil {
			continue
		}
		if d.Year() == year && d.Month() == month {
			out = append(out, rec)
		}
	}
	return out
}

// SortIndices returns the permutation that orders records by field and
// order. Sorting by work hours or daily salary derives each record against
// cfg first. Ties keep input order. An unrecognized field or order falls
// back to the default: date descending. Callers holding richer rows than
// Record can apply the permutation to their own slice.
func SortIndices(records []Record, cfg *PayConfig, field SortField, order SortOrder) []int {
	idx := make([]int, len(records))
	for i := range idx {
		idx[i] = i
	}

	switch field {
	case SortByDate, SortByWorkHours, SortByDailySalary:
	default:
		field = SortByDate
		order = SortDesc
	}
	if order != SortAsc && order != SortDesc {
		order = SortDesc
	}

	var less func(i, j int) bool
	switch field {
	case SortByWorkHours:
		keys := make([]float64, len(records))
		for i, rec := range records {
			keys[i] = CalculateDailyInfo(rec, cfg).WorkHours
		}
		less = func(i, j int) bool { return keys[idx[i]] < keys[idx[j]] }
	case SortByDailySalary:
		keys := make([]float64, len(records))
		for i, rec := range records {
			keys[i], _ = CalculateDailyInfo(rec, cfg).DailySalary.Float64()
		}
		less = func(i, j int) bool { return keys[idx[i]] < keys[idx[j]] }
	default:
		// ISO dates order lexicographically.
		less = func(i, j int) bool { return records[idx[i]].Date < records[idx[j]].Date }
	}

	if order == SortDesc {
		asc := less
		less = func(i, j int) bool { return asc(j, i) }
	}
	sort.SliceStable(idx, less)
	return idx
}

// SortRecords returns a sorted copy of records under the same rules as
// SortIndices.
func SortRecords(records []Record, cfg *PayConfig, field SortField, order SortOrder) []Record {
	idx := SortIndices(records, cfg, field, order)
	out := make([]Record, len(records))
	for i, j := range idx {
		out[i] = records[j]
	}
	return out
}
