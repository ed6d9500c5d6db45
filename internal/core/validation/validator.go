// Package validation turns candidate create inputs into the human-readable
// error lists the dashboard forms display. Validators are advisory for
// callers (check before submitting) and also enforced by the store inside
// its create operations.
package validation

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/hostelsuite/dashboard-service/internal/core/domain"
)

const dateLayout = "2006-01-02"

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(leaveDateOrder, domain.NewLeaveRequest{})
	return &Validator{v: v}
}

// leaveDateOrder reports the cross-field rule: a leave must end strictly
// after it starts. Unparseable or missing dates are left to the field
// checks.
func leaveDateOrder(sl validator.StructLevel) {
	req := sl.Current().Interface().(domain.NewLeaveRequest)
	if req.StartDate == "" || req.EndDate == "" {
		return
	}
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return
	}
	if !start.Before(end) {
		sl.ReportError(req.EndDate, "EndDate", "EndDate", "afterstart", "")
	}
}

var leaveMessages = map[string]string{
	"Student.required":   "Student name is required",
	"StartDate.required": "Start date is required",
	"StartDate.datetime": "Start date is not a valid date",
	"EndDate.required":   "End date is required",
	"EndDate.datetime":   "End date is not a valid date",
	"EndDate.afterstart": "End date must be after start date",
	"Reason.required":    "Reason is required",
}

var outingMessages = map[string]string{
	"Student.required":        "Student name is required",
	"OutDate.required":        "Outing date is required",
	"OutDate.datetime":        "Outing date is not a valid date",
	"OutTime.required":        "Out time is required",
	"ExpectedReturn.required": "Expected return time is required",
	"Destination.required":    "Destination is required",
	"Purpose.required":        "Purpose is required",
}

var missingItemMessages = map[string]string{
	"Student.required":     "Student name is required",
	"Item.required":        "Item name is required",
	"Description.required": "Item description is required",
	"Location.required":    "Last known location is required",
	"Category.required":    "Item category is required",
	"ContactInfo.required": "Contact information is required",
}

var userMessages = map[string]string{
	"Username.required": "Username is required",
	"Password.required": "Password is required",
	"Name.required":     "Full name is required",
	"Role.required":     "Role is required",
	"Email.required":    "Email is required",
}

// ValidateLeaveRequest returns the form errors for a candidate leave
// request, in field order. An empty slice means the input is valid.
func (va *Validator) ValidateLeaveRequest(input domain.NewLeaveRequest) []string {
	return va.messages(va.v.Struct(input), leaveMessages)
}

func (va *Validator) ValidateOutingPass(input domain.NewOutingPass) []string {
	return va.messages(va.v.Struct(input), outingMessages)
}

func (va *Validator) ValidateMissingItem(input domain.NewMissingItem) []string {
	return va.messages(va.v.Struct(input), missingItemMessages)
}

func (va *Validator) ValidateUser(input domain.NewUser) []string {
	return va.messages(va.v.Struct(input), userMessages)
}

func (va *Validator) messages(err error, table map[string]string) []string {
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if msg, ok := table[fe.StructField()+"."+fe.Tag()]; ok {
			msgs = append(msgs, msg)
			continue
		}
		msgs = append(msgs, fe.StructField()+" is invalid")
	}
	return msgs
}
