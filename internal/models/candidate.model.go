package models

import "github.com/google/uuid"

type CandidateStatus string

const (
	StatusNew                CandidateStatus = "NEW"
	StatusReachOut           CandidateStatus = "REACH_OUT"
	StatusReachOutEmailSent  CandidateStatus = "REACH_OUT_EMAIL_SENT"
	StatusToInterview        CandidateStatus = "TO_INTERVIEW"
	StatusInterviewScheduled CandidateStatus = "INTERVIEW_SCHEDULED"
	StatusInterviewCompleted CandidateStatus = "INTERVIEW_COMPLETED"
	StatusHired              CandidateStatus = "HIRED"
	StatusRejected           CandidateStatus = "REJECTED"
)

// CandidateStatuses is the full enumerated set. Order follows the pipeline.
var CandidateStatuses = []CandidateStatus{
	StatusNew,
	StatusReachOut,
	StatusReachOutEmailSent,
	StatusToInterview,
	StatusInterviewScheduled,
	StatusInterviewCompleted,
	StatusHired,
	StatusRejected,
}

func (s CandidateStatus) Valid() bool {
	for _, known := range CandidateStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Candidate is one RBT applicant moving through the hiring pipeline.
// Status is only ever mutated through the lifecycle controller; the
// contact/address fields have their own plain CRUD path.
type Candidate struct {
	BaseUUIDModel
	FirstName    string          `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName     string          `gorm:"type:varchar(100);not null" json:"lastName"`
	Email        string          `gorm:"type:varchar(255);not null;index" json:"email"`
	Phone        string          `gorm:"type:varchar(30)"           json:"phone"`
	AddressLine1 string          `gorm:"type:varchar(255)"          json:"addressLine1"`
	AddressLine2 string          `gorm:"type:varchar(255)"          json:"addressLine2"`
	City         string          `gorm:"type:varchar(100)"          json:"city"`
	State        string          `gorm:"type:varchar(50)"           json:"state"`
	ZipCode      string          `gorm:"type:varchar(20)"           json:"zipCode"`
	Status       CandidateStatus `gorm:"type:varchar(30);not null;index" json:"status"`
	Latitude     *float64        `gorm:"type:real"                  json:"latitude,omitempty"`
	Longitude    *float64        `gorm:"type:real"                  json:"longitude,omitempty"`

	// Optional linked portal account, downgraded on rejection.
	UserID *uuid.UUID `gorm:"type:varchar(64);index" json:"userId,omitempty"`

	Interviews []Interview `gorm:"foreignKey:CandidateID" json:"interviews,omitempty"`
}

type CreateCandidateRequest struct {
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	AddressLine1 string   `json:"addressLine1"`
	AddressLine2 string   `json:"addressLine2"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	ZipCode      string   `json:"zipCode"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

// UpdateCandidateRequest covers the contact/address CRUD path only.
// Status changes go through UpdateStatusRequest and the lifecycle routes.
type UpdateCandidateRequest struct {
	FirstName    *string  `json:"firstName"`
	LastName     *string  `json:"lastName"`
	Email        *string  `json:"email"`
	Phone        *string  `json:"phone"`
	AddressLine1 *string  `json:"addressLine1"`
	AddressLine2 *string  `json:"addressLine2"`
	City         *string  `json:"city"`
	State        *string  `json:"state"`
	ZipCode      *string  `json:"zipCode"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

type UpdateStatusRequest struct {
	Status CandidateStatus `json:"status"`
}
