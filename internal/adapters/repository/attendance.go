package repository

import (
	"sort"

	"github.com/hostelsuite/dashboard-service/internal/core/domain"
	"github.com/hostelsuite/dashboard-service/internal/core/ports"
)

const (
	attendanceDateLayout = "2006-01-02"
	attendanceTimeLayout = "03:04 PM"
)

func (s *MemoryStore) ListAttendance(role domain.Role, userID int) []domain.AttendanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.AttendanceRecord, 0, len(s.attendance))
	for i := range s.attendance {
		if role == domain.RoleStudent && userID != 0 && s.attendance[i].StudentID != userID {
			continue
		}
		out = append(out, s.attendance[i])
	}
	return out
}

// MarkAttendance records today's roll call for one student. Marking the
// same student twice in a day overwrites the earlier entry rather than
// producing a duplicate.
func (s *MemoryStore) MarkAttendance(studentID int, status domain.AttendanceStatus) (*domain.AttendanceRecord, error) {
	s.mu.Lock()

	var student *domain.User
	for i := range s.users {
		if s.users[i].ID == studentID {
			student = &s.users[i]
			break
		}
	}
	if student == nil {
		s.mu.Unlock()
		s.metrics.UpdateMisses.WithLabelValues(string(ports.CollectionAttendance)).Inc()
		return nil, domain.ErrNotFound
	}

	now := s.now()
	today := now.Format(attendanceDateLayout)

	for i := range s.attendance {
		if s.attendance[i].StudentID == studentID && s.attendance[i].Date == today {
			s.attendance[i].Status = status
			s.attendance[i].Time = now.Format(attendanceTimeLayout)
			record := s.attendance[i]
			s.mu.Unlock()

			s.metrics.RecordsUpdated.WithLabelValues(string(ports.CollectionAttendance)).Inc()
			s.notifier.Notify(ports.CollectionAttendance)
			return &record, nil
		}
	}

	record := domain.AttendanceRecord{
		ID:        nextID(s.attendance, func(r domain.AttendanceRecord) int { return r.ID }),
		StudentID: studentID,
		Name:      student.Name,
		Room:      student.RoomNumber,
		Status:    status,
		Date:      today,
		Time:      now.Format(attendanceTimeLayout),
	}
	s.attendance = append(s.attendance, record)
	s.mu.Unlock()

	s.metrics.RecordsCreated.WithLabelValues(string(ports.CollectionAttendance)).Inc()
	s.notifier.Notify(ports.CollectionAttendance)
	return &record, nil
}

// WeeklySummary aggregates the attendance sheet into the per-day
// present/absent counts the dashboard bar chart renders, oldest day first.
func (s *MemoryStore) WeeklySummary() []domain.DailyAttendance {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type dayCount struct {
		present int
		absent  int
	}
	byDate := make(map[string]*dayCount)
	for i := range s.attendance {
		counts, ok := byDate[s.attendance[i].Date]
		if !ok {
			counts = &dayCount{}
			byDate[s.attendance[i].Date] = counts
		}
		switch s.attendance[i].Status {
		case domain.AttendancePresent:
			counts.present++
		case domain.AttendanceAbsent:
			counts.absent++
		}
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	summary := make([]domain.DailyAttendance, 0, len(dates))
	for _, date := range dates {
		day := date
		if parsed, err := parseDate(date); err == nil {
			day = parsed.Weekday().String()
		}
		summary = append(summary, domain.DailyAttendance{
			Day:     day,
			Present: byDate[date].present,
			Absent:  byDate[date].absent,
		})
	}
	return summary
}
