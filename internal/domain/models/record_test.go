package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestRecordMarshalKeepsColumnOrder(t *testing.T) {
	r := NewRecord([]string{"zeta", "alpha", "mid"}, []any{int64(1), nil, "x"})
	b, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got, want := string(b), `{"zeta":1,"alpha":null,"mid":"x"}`; got != want {
		t.Fatalf("got %s want %s", got, want)
	}
}

func TestRecordNormalize(t *testing.T) {
	r := NewRecord([]string{"REG_ID", "full_name", "FullName", "IS_PRESENT"}, []any{int64(1), "a", "b", "YES"})
	n := r.Normalize()

	if diff := cmp.Diff([]string{"regId", "fullName", "isPresent"}, n.Keys()); diff != "" {
		t.Fatalf("keys (-want +got):\n%s", diff)
	}
	if n.Text("fullName") != "b" {
		t.Fatalf("later duplicate should win, got %q", n.Text("fullName"))
	}
	// source untouched
	if _, ok := r.Get("REG_ID"); !ok {
		t.Fatalf("Normalize modified its receiver")
	}
	if diff := cmp.Diff(n.Keys(), n.Normalize().Keys()); diff != "" {
		t.Fatalf("Normalize not idempotent:\n%s", diff)
	}
}

func TestRecordAccessors(t *testing.T) {
	dob := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)
	r := NewRecord([]string{"Total", "dob", "joined"}, []any{"42", dob, "2020-01-02"})

	if r.Int64("total") != 42 {
		t.Fatalf("case-insensitive Int64 lookup failed")
	}
	if got, ok := r.Time("dob"); !ok || !got.Equal(dob) {
		t.Fatalf("Time(dob) = %v, %v", got, ok)
	}
	if got, ok := r.Time("joined"); !ok || got.Year() != 2020 {
		t.Fatalf("Time(joined) = %v, %v", got, ok)
	}
	if _, ok := r.Time("missing"); ok {
		t.Fatalf("missing key reported as time")
	}
	keys := r.Keys()
	keys[0] = "mutated"
	if r.Keys()[0] != "Total" {
		t.Fatalf("Keys must return a copy")
	}
}

func TestNewPagination(t *testing.T) {
	cases := []struct {
		page, limit, count, total int64
		want                      int64
	}{
		{2, 10, 10, 25, 3},
		{1, 10, 10, 10, 1},
		{1, 10, 0, 0, 0},
		{3, 7, 1, 15, 3},
	}
	for _, tc := range cases {
		p := NewPagination(tc.page, tc.limit, tc.count, tc.total)
		if p.TotalPages != tc.want || p.CurrentPage != tc.page || p.PageRecordCount != tc.count || p.TotalRecordCount != tc.total {
			t.Errorf("NewPagination(%d,%d,%d,%d) = %+v", tc.page, tc.limit, tc.count, tc.total, p)
		}
	}
	b, _ := json.Marshal(NewPagination(2, 10, 10, 25))
	if string(b) != `{"current":2,"total":3,"count":10,"totalRecords":25}` {
		t.Fatalf("pagination json: %s", b)
	}
}
