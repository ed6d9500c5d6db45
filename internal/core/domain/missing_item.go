package domain

import "time"

type ItemStatus string

const (
	ItemMissing ItemStatus = "Missing"
	ItemFound   ItemStatus = "Found"
)

// MissingItemReport tracks a student's lost belonging from report to recovery.
type MissingItemReport struct {
	ID          int        `json:"id"`
	StudentID   int        `json:"student_id"`
	Student     string     `json:"student"`
	Room        string     `json:"room"`
	Item        string     `json:"item"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	Category    string     `json:"category"`
	ContactInfo string     `json:"contact_info"`
	Images      []string   `json:"images,omitempty"`
	Status      ItemStatus `json:"status"`
	ReportedAt  time.Time  `json:"reported_at"`
	FoundAt     *time.Time `json:"found_at,omitempty"`
	FoundBy     string     `json:"found_by,omitempty"`
}

type NewMissingItem struct {
	Student     string `validate:"required"`
	Room        string
	Item        string `validate:"required"`
	Description string `validate:"required"`
	Location    string `validate:"required"`
	Category    string `validate:"required"`
	ContactInfo string `validate:"required"`
	Images      []string
}

type MissingItemUpdate struct {
	Room        *string
	Item        *string
	Description *string
	Location    *string
	Category    *string
	ContactInfo *string
	Images      *[]string
	Status      *ItemStatus
	FoundBy     *string
}
