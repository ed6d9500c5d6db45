package repository_test

import (
	"errors"
	"testing"
	"time"

	"github.com/hostelsuite/dashboard-service/internal/core/domain"
)

func seedStudents(t *testing.T) []domain.User {
	t.Helper()
	return []domain.User{
		{ID: 1, Username: "john.doe", Name: "John Doe", Role: domain.RoleStudent, RoomNumber: "A-101"},
		{ID: 2, Username: "jane.smith", Name: "Jane Smith", Role: domain.RoleStudent, RoomNumber: "B-205"},
	}
}

func TestMarkAttendance_CreatesTodaysRecord(t *testing.T) {
	store, _ := newTestStore(t)
	store.Seed(seedStudents(t), nil, nil, nil, nil)

	record, err := store.MarkAttendance(1, domain.AttendancePresent)
	if err != nil {
		t.Fatal(err)
	}
	if record.Name != "John Doe" || record.Room != "A-101" {
		t.Fatalf("record not filled from user: %+v", record)
	}
	if record.Date != time.Now().Format("2006-01-02") {
		t.Fatalf("got date %q, want today", record.Date)
	}
}

func TestMarkAttendance_UpsertsSameDay(t *testing.T) {
	store, _ := newTestStore(t)
	store.Seed(seedStudents(t), nil, nil, nil, nil)

	if _, err := store.MarkAttendance(1, domain.AttendanceAbsent); err != nil {
		t.Fatal(err)
	}
	record, err := store.MarkAttendance(1, domain.AttendancePresent)
	if err != nil {
		t.Fatal(err)
	}
	if record.Status != domain.AttendancePresent {
		t.Fatalf("got status %q", record.Status)
	}

	list := store.ListAttendance("", 0)
	if len(list) != 1 {
		t.Fatalf("got %d records, want 1 after re-marking the same day", len(list))
	}
}

func TestMarkAttendance_UnknownStudent(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.MarkAttendance(42, domain.AttendancePresent)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestListAttendance_StudentFilter(t *testing.T) {
	store, _ := newTestStore(t)
	store.Seed(seedStudents(t), nil, nil, nil, []domain.AttendanceRecord{
		{ID: 1, StudentID: 1, Name: "John Doe", Room: "A-101", Status: domain.AttendancePresent, Date: "2025-08-08", Time: "08:30 AM"},
		{ID: 2, StudentID: 2, Name: "Jane Smith", Room: "B-205", Status: domain.AttendanceAbsent, Date: "2025-08-08", Time: "08:30 AM"},
	})

	own := store.ListAttendance(domain.RoleStudent, 2)
	if len(own) != 1 || own[0].Name != "Jane Smith" {
		t.Fatalf("student filter wrong: %+v", own)
	}
	if len(store.ListAttendance(domain.RoleWarden, 0)) != 2 {
		t.Fatal("warden must see the full sheet")
	}
}

func TestWeeklySummary_AggregatesByDay(t *testing.T) {
	store, _ := newTestStore(t)
	store.Seed(nil, nil, nil, nil, []domain.AttendanceRecord{
		{ID: 1, StudentID: 1, Name: "John Doe", Status: domain.AttendancePresent, Date: "2025-08-07", Time: "08:30 AM"},
		{ID: 2, StudentID: 2, Name: "Jane Smith", Status: domain.AttendanceAbsent, Date: "2025-08-07", Time: "08:30 AM"},
		{ID: 3, StudentID: 1, Name: "John Doe", Status: domain.AttendancePresent, Date: "2025-08-08", Time: "08:30 AM"},
		{ID: 4, StudentID: 2, Name: "Jane Smith", Status: domain.AttendancePresent, Date: "2025-08-08", Time: "08:31 AM"},
	})

	summary := store.WeeklySummary()
	if len(summary) != 2 {
		t.Fatalf("got %d days, want 2", len(summary))
	}
	// 2025-08-07 is a Thursday, 2025-08-08 a Friday; oldest day first.
	if summary[0].Day != "Thursday" || summary[0].Present != 1 || summary[0].Absent != 1 {
		t.Fatalf("first day wrong: %+v", summary[0])
	}
	if summary[1].Day != "Friday" || summary[1].Present != 2 || summary[1].Absent != 0 {
		t.Fatalf("second day wrong: %+v", summary[1])
	}
}
