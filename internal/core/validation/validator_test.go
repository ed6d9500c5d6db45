package validation_test

import (
	"reflect"
	"testing"

	"github.com/hostelsuite/dashboard-service/internal/core/domain"
	"github.com/hostelsuite/dashboard-service/internal/core/validation"
)

func TestValidateLeaveRequest(t *testing.T) {
	va := validation.New()

	tests := []struct {
		name  string
		input domain.NewLeaveRequest
		want  []string
	}{
		{
			name: "valid",
			input: domain.NewLeaveRequest{
				Student:   "John Doe",
				StartDate: "2025-08-10",
				EndDate:   "2025-08-12",
				Reason:    "Family function",
			},
			want: nil,
		},
		{
			name:  "all_fields_missing",
			input: domain.NewLeaveRequest{},
			want: []string{
				"Student name is required",
				"Start date is required",
				"End date is required",
				"Reason is required",
			},
		},
		{
			name: "end_before_start",
			input: domain.NewLeaveRequest{
				Student:   "A",
				StartDate: "2025-08-10",
				EndDate:   "2025-08-05",
				Reason:    "x",
			},
			want: []string{"End date must be after start date"},
		},
		{
			name: "equal_dates_rejected",
			input: domain.NewLeaveRequest{
				Student:   "A",
				StartDate: "2025-08-10",
				EndDate:   "2025-08-10",
				Reason:    "x",
			},
			want: []string{"End date must be after start date"},
		},
		{
			name: "missing_reason_and_bad_order",
			input: domain.NewLeaveRequest{
				Student:   "A",
				StartDate: "2025-08-10",
				EndDate:   "2025-08-05",
			},
			want: []string{
				"Reason is required",
				"End date must be after start date",
			},
		},
		{
			name: "malformed_date",
			input: domain.NewLeaveRequest{
				Student:   "A",
				StartDate: "not-a-date",
				EndDate:   "2025-08-05",
				Reason:    "x",
			},
			want: []string{"Start date is not a valid date"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := va.ValidateLeaveRequest(tt.input)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateOutingPass(t *testing.T) {
	va := validation.New()

	got := va.ValidateOutingPass(domain.NewOutingPass{Student: "Jane Smith"})
	want := []string{
		"Outing date is required",
		"Out time is required",
		"Expected return time is required",
		"Destination is required",
		"Purpose is required",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	if errs := va.ValidateOutingPass(domain.NewOutingPass{
		Student:        "Jane Smith",
		OutDate:        "2025-08-09",
		OutTime:        "10:00 AM",
		ExpectedReturn: "06:00 PM",
		Destination:    "City Mall",
		Purpose:        "Shopping",
	}); len(errs) != 0 {
		t.Fatalf("valid pass rejected: %v", errs)
	}
}

func TestValidateMissingItem(t *testing.T) {
	va := validation.New()

	got := va.ValidateMissingItem(domain.NewMissingItem{})
	want := []string{
		"Student name is required",
		"Item name is required",
		"Item description is required",
		"Last known location is required",
		"Item category is required",
		"Contact information is required",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
