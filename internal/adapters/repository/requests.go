package repository

import (
	"sort"

	"github.com/hostelsuite/dashboard-service/internal/core/domain"
	"github.com/hostelsuite/dashboard-service/internal/core/ports"
)

func (s *MemoryStore) ListLeaveRequests(role domain.Role, userID int) []domain.LeaveRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.LeaveRequest, 0, len(s.leaveRequests))
	for i := range s.leaveRequests {
		if role == domain.RoleStudent && userID != 0 && s.leaveRequests[i].StudentID != userID {
			continue
		}
		out = append(out, copyLeave(s.leaveRequests[i]))
	}
	return out
}

func (s *MemoryStore) CreateLeaveRequest(input domain.NewLeaveRequest) (*domain.LeaveRequest, error) {
	if msgs := s.validator.ValidateLeaveRequest(input); len(msgs) > 0 {
		s.metrics.RejectedCreates.WithLabelValues(string(ports.CollectionLeaveRequests)).Inc()
		return nil, &domain.ValidationError{Messages: msgs}
	}

	s.mu.Lock()
	req := domain.LeaveRequest{
		ID:        nextID(s.leaveRequests, func(r domain.LeaveRequest) int { return r.ID }),
		StudentID: s.resolveStudent(input.Student),
		Student:   input.Student,
		Room:      input.Room,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Reason:    input.Reason,
		Status:    domain.StatusPending,
		CreatedAt: s.now(),
	}
	s.leaveRequests = append([]domain.LeaveRequest{req}, s.leaveRequests...)
	s.mu.Unlock()

	s.metrics.RecordsCreated.WithLabelValues(string(ports.CollectionLeaveRequests)).Inc()
	s.notifier.Notify(ports.CollectionLeaveRequests)

	created := copyLeave(req)
	return &created, nil
}

func (s *MemoryStore) UpdateLeaveRequest(id int, update domain.LeaveRequestUpdate) (*domain.LeaveRequest, error) {
	s.mu.Lock()
	idx := -1
	for i := range s.leaveRequests {
		if s.leaveRequests[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		s.metrics.UpdateMisses.WithLabelValues(string(ports.CollectionLeaveRequests)).Inc()
		return nil, domain.ErrNotFound
	}

	req := &s.leaveRequests[idx]
	if update.Room != nil {
		req.Room = *update.Room
	}
	if update.StartDate != nil {
		req.StartDate = *update.StartDate
	}
	if update.EndDate != nil {
		req.EndDate = *update.EndDate
	}
	if update.Reason != nil {
		req.Reason = *update.Reason
	}
	if update.Status != nil {
		req.Status = *update.Status
		// Moving off Pending records who processed the request and when.
		if *update.Status != domain.StatusPending {
			processed := s.now()
			req.ProcessedAt = &processed
			if update.ProcessedBy != nil {
				req.ProcessedBy = *update.ProcessedBy
			}
		}
	}
	updated := copyLeave(*req)
	s.mu.Unlock()

	s.metrics.RecordsUpdated.WithLabelValues(string(ports.CollectionLeaveRequests)).Inc()
	s.notifier.Notify(ports.CollectionLeaveRequests)
	return &updated, nil
}

func (s *MemoryStore) ListOutingPasses(role domain.Role, userID int) []domain.OutingPass {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.OutingPass, 0, len(s.outingPasses))
	for i := range s.outingPasses {
		if role == domain.RoleStudent && userID != 0 && s.outingPasses[i].StudentID != userID {
			continue
		}
		out = append(out, copyOuting(s.outingPasses[i]))
	}
	return out
}

func (s *MemoryStore) CreateOutingPass(input domain.NewOutingPass) (*domain.OutingPass, error) {
	if msgs := s.validator.ValidateOutingPass(input); len(msgs) > 0 {
		s.metrics.RejectedCreates.WithLabelValues(string(ports.CollectionOutingPasses)).Inc()
		return nil, &domain.ValidationError{Messages: msgs}
	}

	s.mu.Lock()
	pass := domain.OutingPass{
		ID:             nextID(s.outingPasses, func(p domain.OutingPass) int { return p.ID }),
		StudentID:      s.resolveStudent(input.Student),
		Student:        input.Student,
		Room:           input.Room,
		OutDate:        input.OutDate,
		OutTime:        input.OutTime,
		ExpectedReturn: input.ExpectedReturn,
		Destination:    input.Destination,
		Purpose:        input.Purpose,
		Status:         domain.StatusPending,
		CreatedAt:      s.now(),
	}
	s.outingPasses = append([]domain.OutingPass{pass}, s.outingPasses...)
	s.mu.Unlock()

	s.metrics.RecordsCreated.WithLabelValues(string(ports.CollectionOutingPasses)).Inc()
	s.notifier.Notify(ports.CollectionOutingPasses)

	created := copyOuting(pass)
	return &created, nil
}

func (s *MemoryStore) UpdateOutingPass(id int, update domain.OutingPassUpdate) (*domain.OutingPass, error) {
	s.mu.Lock()
	idx := -1
	for i := range s.outingPasses {
		if s.outingPasses[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		s.metrics.UpdateMisses.WithLabelValues(string(ports.CollectionOutingPasses)).Inc()
		return nil, domain.ErrNotFound
	}

	pass := &s.outingPasses[idx]
	if update.Room != nil {
		pass.Room = *update.Room
	}
	if update.OutDate != nil {
		pass.OutDate = *update.OutDate
	}
	if update.OutTime != nil {
		pass.OutTime = *update.OutTime
	}
	if update.ExpectedReturn != nil {
		pass.ExpectedReturn = *update.ExpectedReturn
	}
	if update.Destination != nil {
		pass.Destination = *update.Destination
	}
	if update.Purpose != nil {
		pass.Purpose = *update.Purpose
	}
	if update.Status != nil {
		pass.Status = *update.Status
		if *update.Status != domain.StatusPending {
			processed := s.now()
			pass.ProcessedAt = &processed
			if update.ProcessedBy != nil {
				pass.ProcessedBy = *update.ProcessedBy
			}
		}
	}
	updated := copyOuting(*pass)
	s.mu.Unlock()

	s.metrics.RecordsUpdated.WithLabelValues(string(ports.CollectionOutingPasses)).Inc()
	s.notifier.Notify(ports.CollectionOutingPasses)
	return &updated, nil
}

// AllRequests merges both request collections into the staff feed. Each
// entry is tagged with its kind so views switch on the discriminant rather
// than probing fields.
func (s *MemoryStore) AllRequests() []domain.Request {
	s.mu.RLock()
	merged := make([]domain.Request, 0, len(s.leaveRequests)+len(s.outingPasses))
	for i := range s.leaveRequests {
		leave := copyLeave(s.leaveRequests[i])
		merged = append(merged, domain.Request{Kind: domain.KindLeave, Leave: &leave})
	}
	for i := range s.outingPasses {
		outing := copyOuting(s.outingPasses[i])
		merged = append(merged, domain.Request{Kind: domain.KindOuting, Outing: &outing})
	}
	s.mu.RUnlock()

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt().After(merged[j].CreatedAt())
	})
	return merged
}

func copyLeave(r domain.LeaveRequest) domain.LeaveRequest {
	if r.ProcessedAt != nil {
		processed := *r.ProcessedAt
		r.ProcessedAt = &processed
	}
	return r
}

func copyOuting(p domain.OutingPass) domain.OutingPass {
	if p.ProcessedAt != nil {
		processed := *p.ProcessedAt
		p.ProcessedAt = &processed
	}
	return p
}
