package state

import "github.com/garnizeh/skillswap/internal/models"

// Fixtures returns the demo dataset seeded when the container runs in
// offline mode. Credentials are plaintext on purpose; the offline login
// path compares them with the plaintext verifier.
func Fixtures() ([]models.User, []models.Skill, []models.Session) {
	skills := []models.Skill{
		{ID: "s1", Name: "React Development", Category: models.CategoryProgramming},
		{ID: "s2", Name: "Python Basics", Category: models.CategoryProgramming},
		{ID: "s3", Name: "UI Design", Category: models.CategoryDesign},
		{ID: "s4", Name: "Acoustic Guitar", Category: models.CategoryMusic},
		{ID: "s5", Name: "Digital Marketing", Category: models.CategoryMarketing},
		{ID: "s6", Name: "French Level B2", Category: models.CategoryLanguages},
		{ID: "s7", Name: "Sushi Making", Category: models.CategoryCooking},
		{ID: "s8", Name: "Project Management", Category: models.CategoryBusiness},
		{ID: "s9", Name: "TypeScript", Category: models.CategoryProgramming},
		{ID: "s10", Name: "Logo Design", Category: models.CategoryDesign},
	}

	users := []models.User{
		{
			ID:              "u1",
			Name:            "Alex Johnson",
			Email:           "alex@example.com",
			Password:        "password123",
			Location:        "San Francisco, CA",
			Bio:             "Full-stack developer looking to pick up some acoustic guitar skills and improve my conversational French for my next trip to Paris.",
			Role:            models.RoleUser,
			Avatar:          "https://api.dicebear.com/7.x/avataaars/svg?seed=Alex",
			SkillsOffered:   []models.Skill{skills[0], skills[1], skills[8]},
			SkillsRequested: []models.Skill{skills[3], skills[5]},
			Rating:          4.8,
			ReviewCount:     12,
		},
		{
			ID:              "u2",
			Name:            "Sarah Chen",
			Email:           "sarah@example.com",
			Password:        "password123",
			Location:        "Vancouver, BC",
			Bio:             "Passionate UI designer and hobbyist sushi chef. I want to learn React to bring my design visions to life independently.",
			Role:            models.RoleUser,
			Avatar:          "https://api.dicebear.com/7.x/avataaars/svg?seed=Sarah",
			SkillsOffered:   []models.Skill{skills[2], skills[6], skills[9]},
			SkillsRequested: []models.Skill{skills[0]},
			Rating:          4.9,
			ReviewCount:     8,
		},
		{
			ID:              "u3",
			Name:            "Marc Dubois",
			Email:           "marc@example.com",
			Password:        "password123",
			Location:        "Paris, FR",
			Bio:             "Native French speaker and digital marketing expert. Looking to pick up some sushi making tips and basic coding skills.",
			Role:            models.RoleUser,
			Avatar:          "https://api.dicebear.com/7.x/avataaars/svg?seed=Marc",
			SkillsOffered:   []models.Skill{skills[5], skills[4]},
			SkillsRequested: []models.Skill{skills[6], skills[1]},
			Rating:          4.5,
			ReviewCount:     5,
		},
		{
			ID:              "admin1",
			Name:            "Platform Admin",
			Email:           "admin@skillswap.com",
			Password:        "admin",
			Location:        "Remote",
			Bio:             "Official SkillSwap Pro Administrator. Monitoring the platform for quality and safety.",
			Role:            models.RoleAdmin,
			Avatar:          "https://api.dicebear.com/7.x/avataaars/svg?seed=Admin",
			SkillsOffered:   []models.Skill{},
			SkillsRequested: []models.Skill{},
			Rating:          5.0,
			ReviewCount:     0,
		},
	}

	sessions := []models.Session{
		{
			ID:          "sess1",
			RequesterID: "u2",
			ProviderID:  "u1",
			SkillID:     "s1",
			Date:        "2023-12-01",
			Time:        "14:00",
			EndTime:     "15:20",
			Status:      models.StatusCompleted,
			Notes:       "Great introduction to React functional components and hooks.",
		},
		{
			ID:          "sess2",
			RequesterID: "u1",
			ProviderID:  "u3",
			SkillID:     "s5",
			Date:        "2023-12-15",
			Time:        "10:00",
			EndTime:     "11:20",
			Status:      models.StatusApproved,
		},
	}

	return users, skills, sessions
}
