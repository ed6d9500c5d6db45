package ports

import (
	"github.com/hostelsuite/dashboard-service/internal/core/domain"
)

// The store interfaces are segregated per collection so a view can depend on
// just the slice of the store it renders.

type LeaveRequestStore interface {
	// ListLeaveRequests returns a copy of the collection, newest first.
	// When role is Student and userID is non-zero, only records owned by
	// that student are returned.
	ListLeaveRequests(role domain.Role, userID int) []domain.LeaveRequest
	CreateLeaveRequest(input domain.NewLeaveRequest) (*domain.LeaveRequest, error)
	UpdateLeaveRequest(id int, update domain.LeaveRequestUpdate) (*domain.LeaveRequest, error)
}

type OutingPassStore interface {
	ListOutingPasses(role domain.Role, userID int) []domain.OutingPass
	CreateOutingPass(input domain.NewOutingPass) (*domain.OutingPass, error)
	UpdateOutingPass(id int, update domain.OutingPassUpdate) (*domain.OutingPass, error)
}

type MissingItemStore interface {
	ListMissingItems(role domain.Role, userID int) []domain.MissingItemReport
	CreateMissingItemReport(input domain.NewMissingItem) (*domain.MissingItemReport, error)
	UpdateMissingItem(id int, update domain.MissingItemUpdate) (*domain.MissingItemReport, error)
}

type UserStore interface {
	Users() []domain.User
	UserByID(id int) (*domain.User, bool)
	// UserByName resolves a user by display name. Duplicate names resolve
	// to the first match, in insertion order.
	UserByName(name string) (*domain.User, bool)
	CreateUser(input domain.NewUser) (*domain.User, error)
}

type AttendanceStore interface {
	ListAttendance(role domain.Role, userID int) []domain.AttendanceRecord
	// MarkAttendance upserts today's record for the given student.
	MarkAttendance(studentID int, status domain.AttendanceStatus) (*domain.AttendanceRecord, error)
	WeeklySummary() []domain.DailyAttendance
}

// RecordStore is the full in-process surface the dashboard views consume.
type RecordStore interface {
	LeaveRequestStore
	OutingPassStore
	MissingItemStore
	UserStore
	AttendanceStore

	// AllRequests merges leave requests and outing passes into a single
	// feed, newest first.
	AllRequests() []domain.Request
	Statistics() domain.Statistics

	Subscribe(c Collection, fn func()) Subscription
	Unsubscribe(s Subscription)
}
