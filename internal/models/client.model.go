package models

// Client is a family/client location used by the scheduling beta to rank
// nearby hired RBTs.
type Client struct {
	BaseUUIDModel
	Name         string  `gorm:"type:varchar(200);not null" json:"name"`
	AddressLine1 string  `gorm:"type:varchar(255)"          json:"addressLine1"`
	City         string  `gorm:"type:varchar(100)"          json:"city"`
	State        string  `gorm:"type:varchar(50)"           json:"state"`
	ZipCode      string  `gorm:"type:varchar(20)"           json:"zipCode"`
	Latitude     float64 `gorm:"type:real;not null"         json:"latitude"`
	Longitude    float64 `gorm:"type:real;not null"         json:"longitude"`
}

type CreateClientRequest struct {
	Name         string  `json:"name"`
	AddressLine1 string  `json:"addressLine1"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	ZipCode      string  `json:"zipCode"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

type MatchRequest struct {
	ClientID string `json:"clientId"`
	Limit    int    `json:"limit"`
}

// RankedCandidate is one scheduling-beta match result. DistanceKm is the
// great-circle distance from the client's coordinates.
type RankedCandidate struct {
	Candidate  Candidate `json:"candidate"`
	DistanceKm float64   `json:"distanceKm"`
}
