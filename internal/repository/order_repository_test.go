package repository

import (
	"strings"
	"testing"
	"time"
)

func TestBuildOrdersInsert(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	menuIDs := []int{7, 9, 11}
	cookTimes := map[int]int{7: 300, 9: 600, 11: 90}

	query, values := buildOrdersInsert(4, 2, menuIDs, cookTimes, now)

	if got := strings.Count(query, "(?, ?, ?, ?, false)"); got != len(menuIDs) {
		t.Errorf("parameter groups = %d, want %d", got, len(menuIDs))
	}
	if strings.HasSuffix(strings.TrimSpace(query), ",") {
		t.Error("query has a trailing comma")
	}

	if len(values) != 4*len(menuIDs) {
		t.Fatalf("values = %d, want %d", len(values), 4*len(menuIDs))
	}

	for i, menuID := range menuIDs {
		base := i * 4
		if values[base] != 4 {
			t.Errorf("row %d table id = %v, want 4", i, values[base])
		}
		if values[base+1] != menuID {
			t.Errorf("row %d menu id = %v, want %d", i, values[base+1], menuID)
		}
		if values[base+2] != 2 {
			t.Errorf("row %d user id = %v, want 2", i, values[base+2])
		}
		wantFinish := now.Add(time.Duration(cookTimes[menuID]) * time.Second)
		if finish, ok := values[base+3].(time.Time); !ok || !finish.Equal(wantFinish) {
			t.Errorf("row %d finish time = %v, want %v", i, values[base+3], wantFinish)
		}
	}
}

func TestBuildOrdersInsertSingleRow(t *testing.T) {
	now := time.Now()
	query, values := buildOrdersInsert(1, 1, []int{5}, map[int]int{5: 120}, now)

	if got := strings.Count(query, "?"); got != 4 {
		t.Errorf("placeholders = %d, want 4", got)
	}
	if len(values) != 4 {
		t.Errorf("values = %d, want 4", len(values))
	}
}
