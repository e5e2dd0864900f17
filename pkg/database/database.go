package database

import (
	"fmt"
	"log"
	"promptmaster_backend/internal/config"
	"promptmaster_backend/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig, migrate bool) (*gorm.DB, error) {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.DBName,
		sslMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if migrate {
		err = db.AutoMigrate(
			&model.User{},
			&model.Scenario{},
			&model.Attempt{},
			&model.UserProgress{},
			&model.Achievement{},
			&model.Checkin{},
			&model.Certificate{},
		)

		if err != nil {
			return nil, err
		}

		log.Println("Database migration completed")

		seedScenarios(db)
	}

	return db, nil
}

// seedScenarios inserts a starter catalog when the table is empty.
func seedScenarios(db *gorm.DB) {
	var count int64
	db.Model(&model.Scenario{}).Count(&count)
	if count > 0 {
		return
	}

	defaults := []model.Scenario{
		{
			Title:         "Summarize a quarterly report",
			ModuleCode:    "foundations",
			Description:   "Write a prompt that turns a 20-page quarterly report into a one-page executive summary.",
			TaskBrief:     "The summary must keep revenue figures, flag risks, and stay under 400 words.",
			Difficulty:    "beginner",
			SuggestedTime: 10,
			Criteria:      `["clarity","context","specificity","business_value"]`,
			Active:        true,
		},
		{
			Title:         "Draft a customer apology email",
			ModuleCode:    "foundations",
			Description:   "Write a prompt that produces an apology email for a shipping delay without admitting legal liability.",
			TaskBrief:     "Tone matters: empathetic, concrete next steps, no boilerplate.",
			Difficulty:    "beginner",
			SuggestedTime: 8,
			Criteria:      `["clarity","context","format","business_value"]`,
			Active:        true,
		},
		{
			Title:         "Design a chain-of-thought analysis",
			ModuleCode:    "advanced",
			Description:   "Write a prompt that walks a model through a step-by-step pricing analysis for a new product line.",
			TaskBrief:     "The prompt must ask for explicit intermediate reasoning before the recommendation.",
			Difficulty:    "advanced",
			SuggestedTime: 15,
			Criteria:      `["clarity","context","reasoning","innovation"]`,
			Active:        true,
		},
		{
			Title:         "Capstone: full campaign brief",
			ModuleCode:    "capstone",
			Description:   "Combine everything: produce a prompt that generates a complete product launch campaign brief.",
			TaskBrief:     "Audience analysis, channel plan, three message variants, and a measurement section.",
			Difficulty:    "expert",
			SuggestedTime: 25,
			Criteria:      `["clarity","context","specificity","business_value","innovation","reasoning"]`,
			IsCapstone:    true,
			Active:        true,
		},
	}

	for _, s := range defaults {
		db.Create(&s)
	}
}
