package compensation

import (
	"testing"
	"time"
)

func TestFilterRecords(t *testing.T) {
	records := []Record{
		{UserID: "u1", Date: "2025-03-01"},
		{UserID: "u2", Date: "2025-03-02"},
		{UserID: "u1", Date: "2025-04-01"},
		{UserID: "u1", Date: "2025-03-31"},
		{UserID: "u1", Date: "2024-03-15"},
		{UserID: "u1", Date: "garbage"},
	}

	got := FilterRecords(records, "u1", 2025, time.March)
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	// Original relative order is preserved.
	if got[0].Date != "2025-03-01" || got[1].Date != "2025-03-31" {
		t.Errorf("filtered order = %s, %s", got[0].Date, got[1].Date)
	}
}

func TestSortRecords_DefaultDateDescending(t *testing.T) {
	records := []Record{
		{Date: "2025-03-02"},
		{Date: "2025-03-10"},
		{Date: "2025-03-05"},
	}

	got := SortRecords(records, nil, "", "")
	want := []string{"2025-03-10", "2025-03-05", "2025-03-02"}
	for i, w := range want {
		if got[i].Date != w {
			t.Errorf("position %d: got %s, want %s", i, got[i].Date, w)
		}
	}

	// Input untouched.
	if records[0].Date != "2025-03-02" {
		t.Error("SortRecords mutated its input")
	}
}

func TestSortRecords_ByWorkHours(t *testing.T) {
	cfg := &PayConfig{PayType: PayTypeHourly}
	records := []Record{
		{Date: "2025-03-01", StartTime: "09:00", EndTime: "17:00"}, // 8h
		{Date: "2025-03-02", StartTime: "09:00", EndTime: "12:00"}, // 3h
		{Date: "2025-03-03", StartTime: "09:00", EndTime: "14:00"}, // 5h
	}

	got := SortRecords(records, cfg, SortByWorkHours, SortAsc)
	want := []string{"2025-03-02", "2025-03-03", "2025-03-01"}
	for i, w := range want {
		if got[i].Date != w {
			t.Errorf("position %d: got %s, want %s", i, got[i].Date, w)
		}
	}
}

func TestSortRecords_StableTies(t *testing.T) {
	cfg := &PayConfig{PayType: PayTypeHourly}
	records := []Record{
		{UserID: "a", Date: "2025-03-01", StartTime: "09:00", EndTime: "17:00"},
		{UserID: "b", Date: "2025-03-02", StartTime: "10:00", EndTime: "18:00"},
		{UserID: "c", Date: "2025-03-03", StartTime: "08:00", EndTime: "16:00"},
	}

	// All three work 8 hours; input order must survive in both directions.
	for _, order := range []SortOrder{SortAsc, SortDesc} {
		got := SortRecords(records, cfg, SortByWorkHours, order)
		for i, want := range []string{"a", "b", "c"} {
			if got[i].UserID != want {
				t.Errorf("order %s position %d: got %s, want %s", order, i, got[i].UserID, want)
			}
		}
	}
}

func TestSortIndices_Permutation(t *testing.T) {
	records := []Record{
		{Date: "2025-03-02"},
		{Date: "2025-03-10"},
		{Date: "2025-03-05"},
	}

	got := SortIndices(records, nil, SortByDate, SortDesc)
	want := []int{1, 2, 0}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("position %d: got %d, want %d", i, got[i], w)
		}
	}
}
