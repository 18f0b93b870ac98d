package seed

import (
	"time"

	"hrm/config"
	userController "hrm/internal/controllers/users"
	"hrm/internal/logger"
	. "hrm/internal/models"

	"gorm.io/gorm"
)

func floatPtr(f float64) *float64 {
	return &f
}

// Seed loads development fixtures: two portal accounts, candidates spread
// across the pipeline, and one client for the scheduling beta.
func Seed(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("Seed")
	log.Info("Seeding development data")

	adminHash, err := userController.HashPassword("password")
	if err != nil {
		return log.Err("failed to hash seed password", err)
	}

	users := []User{
		{
			FirstName: "Dana",
			LastName:  "Whitfield",
			Email:     "dana.whitfield@example.com",
			Password:  adminHash,
			Role:      RoleAdmin,
			Active:    true,
		}, {
			FirstName: "Marcus",
			LastName:  "Reyes",
			Email:     "marcus.reyes@example.com",
			Password:  adminHash,
			Role:      RoleRBT,
			Active:    true,
		},
	}

	for _, user := range users {
		var existing User
		if err := db.First(&existing, "email = ?", user.Email).Error; err == nil {
			log.Info("User already exists", "email", user.Email)
			continue
		}
		if err := db.Create(&user).Error; err != nil {
			log.Er("failed to create user", err, "email", user.Email)
		}
	}

	candidates := []Candidate{
		{
			FirstName: "Alicia",
			LastName:  "Tran",
			Email:     "alicia.tran@example.com",
			Phone:     "555-0101",
			City:      "Austin",
			State:     "TX",
			Status:    StatusNew,
			Latitude:  floatPtr(30.2672),
			Longitude: floatPtr(-97.7431),
		}, {
			FirstName: "Jerome",
			LastName:  "Baker",
			Email:     "jerome.baker@example.com",
			Phone:     "555-0102",
			City:      "Round Rock",
			State:     "TX",
			Status:    StatusInterviewScheduled,
			Latitude:  floatPtr(30.5083),
			Longitude: floatPtr(-97.6789),
		}, {
			FirstName: "Priya",
			LastName:  "Natarajan",
			Email:     "priya.natarajan@example.com",
			Phone:     "555-0103",
			City:      "Pflugerville",
			State:     "TX",
			Status:    StatusHired,
			Latitude:  floatPtr(30.4394),
			Longitude: floatPtr(-97.6200),
		},
	}

	for i := range candidates {
		candidate := &candidates[i]
		var existing Candidate
		if err := db.First(&existing, "email = ?", candidate.Email).Error; err == nil {
			log.Info("Candidate already exists", "email", candidate.Email)
			continue
		}
		if err := db.Create(candidate).Error; err != nil {
			log.Er("failed to create candidate", err, "email", candidate.Email)
			continue
		}

		if candidate.Status == StatusInterviewScheduled {
			interview := Interview{
				CandidateID: candidate.ID,
				ScheduledAt: time.Now().Add(48 * time.Hour),
				Interviewer: "Dana Whitfield",
				Status:      InterviewScheduled,
			}
			if err := db.Create(&interview).Error; err != nil {
				log.Er("failed to create interview", err, "candidate", candidate.Email)
			}
		}
	}

	client := Client{
		Name:      "Harper Family",
		City:      "Austin",
		State:     "TX",
		Latitude:  30.3005,
		Longitude: -97.7522,
	}
	var existingClient Client
	if err := db.First(&existingClient, "name = ?", client.Name).Error; err != nil {
		if err := db.Create(&client).Error; err != nil {
			log.Er("failed to create client", err, "name", client.Name)
		}
	}

	return nil
}
