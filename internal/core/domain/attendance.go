package domain

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
)

// AttendanceRecord is a single student's roll-call entry for one day.
// Date uses the 2006-01-02 layout, Time the wall-clock reading shown in the
// attendance sheet (e.g. "08:30 AM").
type AttendanceRecord struct {
	ID        int              `json:"id"`
	StudentID int              `json:"student_id"`
	Name      string           `json:"name"`
	Room      string           `json:"room"`
	Status    AttendanceStatus `json:"status"`
	Date      string           `json:"date"`
	Time      string           `json:"time"`
}

// DailyAttendance is one bar of the weekly attendance chart.
type DailyAttendance struct {
	Day     string `json:"day"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
}
