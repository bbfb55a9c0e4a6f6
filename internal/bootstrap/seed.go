package bootstrap

import (
	"log"

	"anoa.com/plusgems/internal/model"
	"gorm.io/gorm"
)

// SeedDemo populates an empty development database with a starter set of
// pillars, missions and heroes so the dashboard has something to show.
func SeedDemo(db *gorm.DB) error {
	var pillarCount int64
	if err := db.Model(&model.Pillar{}).Count(&pillarCount).Error; err != nil {
		return err
	}
	if pillarCount > 0 {
		log.Println("seed data already present, skipping")
		return nil
	}

	pillars := []model.Pillar{
		{Name: "Teamwork"},
		{Name: "Innovation"},
		{Name: "Customer Focus"},
	}
	for i := range pillars {
		if err := db.Create(&pillars[i]).Error; err != nil {
			return err
		}
	}

	missions := []model.Mission{
		{Name: "Helped a teammate", Description: "Unblocked a colleague on a task outside your own scope", CrystalReward: 10, PillarID: pillars[0].ID},
		{Name: "Shared knowledge", Description: "Ran a session teaching something new to the team", CrystalReward: 15, PillarID: pillars[0].ID},
		{Name: "Improved a process", Description: "Proposed and shipped a measurable process improvement", CrystalReward: 20, PillarID: pillars[1].ID},
		{Name: "Delighted a customer", Description: "Went beyond the request to solve the real problem", CrystalReward: 25, PillarID: pillars[2].ID},
	}
	for i := range missions {
		if err := db.Create(&missions[i]).Error; err != nil {
			return err
		}
	}

	heroes := []model.Hero{
		{Name: "Ana Souza", Team: "Marketing"},
		{Name: "Bruno Lima", Team: "Engineering"},
	}
	for i := range heroes {
		if err := db.Create(&heroes[i]).Error; err != nil {
			return err
		}
	}

	log.Println("✅ Demo data seeded successfully")
	return nil
}
