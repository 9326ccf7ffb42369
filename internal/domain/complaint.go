package domain

import "time"

// Complaint is a single filed complaint. Complaints are append-only: there
// is no edit or delete path, and the list preserves insertion order.
type Complaint struct {
	ID               string    `json:"id"`
	FullName         string    `json:"fullName"`
	CollegeName      string    `json:"collegeName"`
	Year             string    `json:"year"`
	ComplaintType    string    `json:"complaintType"`
	Subject          string    `json:"subject"`
	Description      string    `json:"description"`
	AttachedFileName string    `json:"attachedFileName,omitempty"`
	DateSubmitted    time.Time `json:"dateSubmitted"`
	Status           string    `json:"status"`
}

const (
	ComplaintStatusPending  = "Pending"
	ComplaintStatusResolved = "Resolved"
)
