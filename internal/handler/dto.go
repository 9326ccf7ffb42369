package handler

import (
	"time"

	"github.com/msomdec/complaint-tracker/internal/domain"
)

// UserDTO is the JSON representation of a user. The password hash never
// leaves the server.
type UserDTO struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FullName  string `json:"fullName,omitempty"`
	CreatedAt string `json:"createdAt"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

// ComplaintDTO is the JSON representation of a complaint.
type ComplaintDTO struct {
	ID               string `json:"id"`
	FullName         string `json:"fullName"`
	CollegeName      string `json:"collegeName"`
	Year             string `json:"year"`
	ComplaintType    string `json:"complaintType"`
	Subject          string `json:"subject"`
	Description      string `json:"description"`
	AttachedFileName string `json:"attachedFileName,omitempty"`
	DateSubmitted    string `json:"dateSubmitted"`
	Status           string `json:"status"`
}

func toComplaintDTO(c *domain.Complaint) ComplaintDTO {
	return ComplaintDTO{
		ID:               c.ID,
		FullName:         c.FullName,
		CollegeName:      c.CollegeName,
		Year:             c.Year,
		ComplaintType:    c.ComplaintType,
		Subject:          c.Subject,
		Description:      c.Description,
		AttachedFileName: c.AttachedFileName,
		DateSubmitted:    c.DateSubmitted.Format(time.RFC3339),
		Status:           c.Status,
	}
}

func toComplaintDTOs(complaints []domain.Complaint) []ComplaintDTO {
	dtos := make([]ComplaintDTO, len(complaints))
	for i := range complaints {
		dtos[i] = toComplaintDTO(&complaints[i])
	}
	return dtos
}
