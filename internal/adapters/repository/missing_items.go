package repository

import (
	"github.com/hostelsuite/dashboard-service/internal/core/domain"
	"github.com/hostelsuite/dashboard-service/internal/core/ports"
)

func (s *MemoryStore) ListMissingItems(role domain.Role, userID int) []domain.MissingItemReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.MissingItemReport, 0, len(s.missingItems))
	for i := range s.missingItems {
		if role == domain.RoleStudent && userID != 0 && s.missingItems[i].StudentID != userID {
			continue
		}
		out = append(out, copyItem(s.missingItems[i]))
	}
	return out
}

func (s *MemoryStore) CreateMissingItemReport(input domain.NewMissingItem) (*domain.MissingItemReport, error) {
	if msgs := s.validator.ValidateMissingItem(input); len(msgs) > 0 {
		s.metrics.RejectedCreates.WithLabelValues(string(ports.CollectionMissingItems)).Inc()
		return nil, &domain.ValidationError{Messages: msgs}
	}

	s.mu.Lock()
	report := domain.MissingItemReport{
		ID:          nextID(s.missingItems, func(r domain.MissingItemReport) int { return r.ID }),
		StudentID:   s.resolveStudent(input.Student),
		Student:     input.Student,
		Room:        input.Room,
		Item:        input.Item,
		Description: input.Description,
		Location:    input.Location,
		Category:    input.Category,
		ContactInfo: input.ContactInfo,
		Images:      append([]string(nil), input.Images...),
		Status:      domain.ItemMissing,
		ReportedAt:  s.now(),
	}
	s.missingItems = append([]domain.MissingItemReport{report}, s.missingItems...)
	s.mu.Unlock()

	s.metrics.RecordsCreated.WithLabelValues(string(ports.CollectionMissingItems)).Inc()
	s.notifier.Notify(ports.CollectionMissingItems)

	created := copyItem(report)
	return &created, nil
}

func (s *MemoryStore) UpdateMissingItem(id int, update domain.MissingItemUpdate) (*domain.MissingItemReport, error) {
	s.mu.Lock()
	idx := -1
	for i := range s.missingItems {
		if s.missingItems[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		s.metrics.UpdateMisses.WithLabelValues(string(ports.CollectionMissingItems)).Inc()
		return nil, domain.ErrNotFound
	}

	report := &s.missingItems[idx]
	if update.Room != nil {
		report.Room = *update.Room
	}
	if update.Item != nil {
		report.Item = *update.Item
	}
	if update.Description != nil {
		report.Description = *update.Description
	}
	if update.Location != nil {
		report.Location = *update.Location
	}
	if update.Category != nil {
		report.Category = *update.Category
	}
	if update.ContactInfo != nil {
		report.ContactInfo = *update.ContactInfo
	}
	if update.Images != nil {
		report.Images = append([]string(nil), (*update.Images)...)
	}
	if update.Status != nil {
		report.Status = *update.Status
		// A recovered item records when and by whom it was found.
		if *update.Status == domain.ItemFound {
			found := s.now()
			report.FoundAt = &found
			if update.FoundBy != nil {
				report.FoundBy = *update.FoundBy
			}
		}
	}
	updated := copyItem(*report)
	s.mu.Unlock()

	s.metrics.RecordsUpdated.WithLabelValues(string(ports.CollectionMissingItems)).Inc()
	s.notifier.Notify(ports.CollectionMissingItems)
	return &updated, nil
}

func copyItem(r domain.MissingItemReport) domain.MissingItemReport {
	r.Images = append([]string(nil), r.Images...)
	if r.FoundAt != nil {
		found := *r.FoundAt
		r.FoundAt = &found
	}
	return r
}
