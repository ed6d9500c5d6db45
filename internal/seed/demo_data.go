// Package seed holds the demo dataset the dashboard ships with. Record ids
// here are fixed; the store continues numbering above them.
package seed

import (
	"time"

	"github.com/hostelsuite/dashboard-service/internal/core/domain"
)

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("seed: bad timestamp " + value)
	}
	return t
}

func Users() []domain.User {
	return []domain.User{
		{ID: 1, Username: "admin", Password: "admin123", Name: "Admin User", Role: domain.RoleAdministrator, Email: "admin@university.edu"},
		{ID: 2, Username: "warden", Password: "warden123", Name: "James Wilson", Role: domain.RoleWarden, Email: "warden@university.edu"},
		{ID: 3, Username: "staff", Password: "staff123", Name: "Sarah Johnson", Role: domain.RoleStaff, Email: "staff@university.edu"},
		{ID: 4, Username: "john.doe", Password: "student123", Name: "John Doe", Role: domain.RoleStudent, Email: "john.doe@university.edu", RoomNumber: "A-101"},
		{ID: 5, Username: "jane.smith", Password: "student123", Name: "Jane Smith", Role: domain.RoleStudent, Email: "jane.smith@university.edu", RoomNumber: "B-205"},
		{ID: 6, Username: "robert.johnson", Password: "student123", Name: "Robert Johnson", Role: domain.RoleStudent, Email: "robert.johnson@university.edu", RoomNumber: "C-103"},
		{ID: 7, Username: "mary.williams", Password: "student123", Name: "Mary Williams", Role: domain.RoleStudent, Email: "mary.williams@university.edu", RoomNumber: "A-302"},
		{ID: 8, Username: "mike.brown", Password: "student123", Name: "Mike Brown", Role: domain.RoleStudent, Email: "mike.brown@university.edu", RoomNumber: "D-105"},
		{ID: 9, Username: "sarah.davis", Password: "student123", Name: "Sarah Davis", Role: domain.RoleStudent, Email: "sarah.davis@university.edu", RoomNumber: "B-110"},
		{ID: 10, Username: "david.miller", Password: "student123", Name: "David Miller", Role: domain.RoleStudent, Email: "david.miller@university.edu", RoomNumber: "C-205"},
		{ID: 11, Username: "laura.wilson", Password: "student123", Name: "Laura Wilson", Role: domain.RoleStudent, Email: "laura.wilson@university.edu", RoomNumber: "A-105"},
		{ID: 12, Username: "james.taylor", Password: "student123", Name: "James Taylor", Role: domain.RoleStudent, Email: "james.taylor@university.edu", RoomNumber: "D-201"},
		{ID: 13, Username: "emily.clark", Password: "student123", Name: "Emily Clark", Role: domain.RoleStudent, Email: "emily.clark@university.edu", RoomNumber: "B-301"},
	}
}

func LeaveRequests() []domain.LeaveRequest {
	return []domain.LeaveRequest{
		{ID: 1, StudentID: 4, Student: "John Doe", Room: "A-101", StartDate: "2025-08-10", EndDate: "2025-08-12", Reason: "Family function", Status: domain.StatusApproved, CreatedAt: mustTime("2025-08-05T10:30:00Z")},
		{ID: 2, StudentID: 5, Student: "Jane Smith", Room: "B-205", StartDate: "2025-08-15", EndDate: "2025-08-18", Reason: "Medical appointment", Status: domain.StatusPending, CreatedAt: mustTime("2025-08-07T09:15:00Z")},
		{ID: 3, StudentID: 6, Student: "Robert Johnson", Room: "C-103", StartDate: "2025-08-20", EndDate: "2025-08-22", Reason: "Academic conference", Status: domain.StatusPending, CreatedAt: mustTime("2025-08-08T14:45:00Z")},
		{ID: 4, StudentID: 7, Student: "Mary Williams", Room: "A-302", StartDate: "2025-08-12", EndDate: "2025-08-14", Reason: "Family emergency", Status: domain.StatusApproved, CreatedAt: mustTime("2025-08-06T16:20:00Z")},
		{ID: 5, StudentID: 8, Student: "Mike Brown", Room: "D-105", StartDate: "2025-08-09", EndDate: "2025-08-11", Reason: "Personal work", Status: domain.StatusRejected, CreatedAt: mustTime("2025-08-04T11:05:00Z")},
	}
}

func OutingPasses() []domain.OutingPass {
	return []domain.OutingPass{
		{ID: 1, StudentID: 5, Student: "Jane Smith", Room: "B-205", OutDate: "2025-08-09", OutTime: "10:00 AM", ExpectedReturn: "06:00 PM", Destination: "City Mall", Purpose: "Shopping for essentials", Status: domain.StatusApproved, CreatedAt: mustTime("2025-08-07T15:30:00Z")},
		{ID: 2, StudentID: 4, Student: "John Doe", Room: "A-101", OutDate: "2025-08-09", OutTime: "02:00 PM", ExpectedReturn: "08:00 PM", Destination: "Railway Station", Purpose: "Picking up relatives", Status: domain.StatusPending, CreatedAt: mustTime("2025-08-08T09:10:00Z")},
		{ID: 3, StudentID: 9, Student: "Sarah Davis", Room: "B-110", OutDate: "2025-08-10", OutTime: "09:00 AM", ExpectedReturn: "01:00 PM", Destination: "City Hospital", Purpose: "Dental checkup", Status: domain.StatusPending, CreatedAt: mustTime("2025-08-08T11:25:00Z")},
		{ID: 4, StudentID: 10, Student: "David Miller", Room: "C-205", OutDate: "2025-08-08", OutTime: "04:00 PM", ExpectedReturn: "07:00 PM", Destination: "Sports Complex", Purpose: "Inter-college match", Status: domain.StatusRejected, CreatedAt: mustTime("2025-08-06T13:40:00Z")},
	}
}

func MissingItems() []domain.MissingItemReport {
	return []domain.MissingItemReport{
		{ID: 1, StudentID: 4, Student: "John Doe", Room: "A-101", Item: "Laptop Charger", Description: "Dell charger with blue tag", Location: "Library", Category: "Electronics", ContactInfo: "john.doe@university.edu", Status: domain.ItemMissing, ReportedAt: mustTime("2025-08-06T10:30:00Z")},
		{ID: 2, StudentID: 5, Student: "Jane Smith", Room: "B-205", Item: "Water Bottle", Description: "Blue hydro flask with stickers", Location: "Sports Field", Category: "Others", ContactInfo: "jane.smith@university.edu", Status: domain.ItemFound, ReportedAt: mustTime("2025-08-05T09:15:00Z")},
		{ID: 3, StudentID: 6, Student: "Robert Johnson", Room: "C-103", Item: "Textbook", Description: "Engineering Mathematics Vol. 2", Location: "Cafeteria", Category: "Books", ContactInfo: "robert.johnson@university.edu", Status: domain.ItemMissing, ReportedAt: mustTime("2025-08-07T14:45:00Z")},
		{ID: 4, StudentID: 7, Student: "Mary Williams", Room: "A-302", Item: "ID Card", Description: "University ID with meal plan", Location: "Lecture Hall", Category: "ID Cards", ContactInfo: "mary.williams@university.edu", Status: domain.ItemFound, ReportedAt: mustTime("2025-08-04T16:20:00Z")},
		{ID: 5, StudentID: 8, Student: "Mike Brown", Room: "D-105", Item: "Wireless Earbuds", Description: "White earbuds in black case", Location: "Gym", Category: "Electronics", ContactInfo: "mike.brown@university.edu", Status: domain.ItemMissing, ReportedAt: mustTime("2025-08-08T11:05:00Z")},
	}
}

// attendanceSheet lists, per day, which students were absent; everyone else
// on the roll was present.
var attendanceSheet = []struct {
	date   string
	absent map[string]bool
	times  map[string]string
}{
	{date: "2025-08-06", absent: map[string]bool{"Mike Brown": true}, times: map[string]string{"Mike Brown": "08:30 AM"}},
	{date: "2025-08-07", absent: map[string]bool{"Laura Wilson": true, "Emily Clark": true}, times: nil},
	{date: "2025-08-08", absent: map[string]bool{"Jane Smith": true, "David Miller": true}, times: map[string]string{
		"John Doe": "08:30 AM", "Jane Smith": "08:30 AM", "Robert Johnson": "08:32 AM",
		"Mary Williams": "08:28 AM", "Mike Brown": "08:35 AM", "Sarah Davis": "08:31 AM",
		"David Miller": "08:30 AM", "Laura Wilson": "08:29 AM", "James Taylor": "08:33 AM",
		"Emily Clark": "08:30 AM",
	}},
}

func Attendance() []domain.AttendanceRecord {
	var students []domain.User
	for _, u := range Users() {
		if u.Role == domain.RoleStudent {
			students = append(students, u)
		}
	}

	var records []domain.AttendanceRecord
	id := 1
	for _, day := range attendanceSheet {
		for _, student := range students {
			status := domain.AttendancePresent
			if day.absent[student.Name] {
				status = domain.AttendanceAbsent
			}
			clock := "08:30 AM"
			if t, ok := day.times[student.Name]; ok {
				clock = t
			}
			records = append(records, domain.AttendanceRecord{
				ID:        id,
				StudentID: student.ID,
				Name:      student.Name,
				Room:      student.RoomNumber,
				Status:    status,
				Date:      day.date,
				Time:      clock,
			})
			id++
		}
	}
	return records
}
