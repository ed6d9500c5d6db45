package domain

import "time"

type RequestStatus string

const (
	StatusPending  RequestStatus = "Pending"
	StatusApproved RequestStatus = "Approved"
	StatusRejected RequestStatus = "Rejected"
)

// LeaveRequest is a student's request to be away from the hostel overnight.
// StudentID is resolved from the student name once, at creation time; a zero
// StudentID means the name matched no registered user.
type LeaveRequest struct {
	ID          int           `json:"id"`
	StudentID   int           `json:"student_id"`
	Student     string        `json:"student"`
	Room        string        `json:"room"`
	StartDate   string        `json:"start_date"`
	EndDate     string        `json:"end_date"`
	Reason      string        `json:"reason"`
	Status      RequestStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	ProcessedAt *time.Time    `json:"processed_at,omitempty"`
	ProcessedBy string        `json:"processed_by,omitempty"`
}

// OutingPass is a same-day permission to leave the hostel grounds.
type OutingPass struct {
	ID             int           `json:"id"`
	StudentID      int           `json:"student_id"`
	Student        string        `json:"student"`
	Room           string        `json:"room"`
	OutDate        string        `json:"out_date"`
	OutTime        string        `json:"out_time"`
	ExpectedReturn string        `json:"expected_return"`
	Destination    string        `json:"destination"`
	Purpose        string        `json:"purpose"`
	Status         RequestStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	ProcessedAt    *time.Time    `json:"processed_at,omitempty"`
	ProcessedBy    string        `json:"processed_by,omitempty"`
}

type NewLeaveRequest struct {
	Student   string `validate:"required"`
	Room      string
	StartDate string `validate:"required,datetime=2006-01-02"`
	EndDate   string `validate:"required,datetime=2006-01-02"`
	Reason    string `validate:"required"`
}

type NewOutingPass struct {
	Student        string `validate:"required"`
	Room           string
	OutDate        string `validate:"required,datetime=2006-01-02"`
	OutTime        string `validate:"required"`
	ExpectedReturn string `validate:"required"`
	Destination    string `validate:"required"`
	Purpose        string `validate:"required"`
}

// LeaveRequestUpdate is a partial update; nil fields are left untouched.
type LeaveRequestUpdate struct {
	Room        *string
	StartDate   *string
	EndDate     *string
	Reason      *string
	Status      *RequestStatus
	ProcessedBy *string
}

type OutingPassUpdate struct {
	Room           *string
	OutDate        *string
	OutTime        *string
	ExpectedReturn *string
	Destination    *string
	Purpose        *string
	Status         *RequestStatus
	ProcessedBy    *string
}

// RequestKind discriminates the entries of the combined request feed.
type RequestKind string

const (
	KindLeave  RequestKind = "leave"
	KindOuting RequestKind = "outing"
)

// Request is the tagged union served to staff views that show leave requests
// and outing passes in a single list. Exactly one of Leave/Outing is set,
// according to Kind.
type Request struct {
	Kind   RequestKind   `json:"kind"`
	Leave  *LeaveRequest `json:"leave,omitempty"`
	Outing *OutingPass   `json:"outing,omitempty"`
}

// CreatedAt returns the creation time of the wrapped record.
func (r Request) CreatedAt() time.Time {
	switch r.Kind {
	case KindLeave:
		return r.Leave.CreatedAt
	case KindOuting:
		return r.Outing.CreatedAt
	}
	return time.Time{}
}

// Status returns the status of the wrapped record.
func (r Request) Status() RequestStatus {
	switch r.Kind {
	case KindLeave:
		return r.Leave.Status
	case KindOuting:
		return r.Outing.Status
	}
	return ""
}
