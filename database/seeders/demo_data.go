package seeders

import (
	"log"
	"os"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"catering-ops/services/auth"

	parttimerModel "catering-ops/models/parttimer"
	userModel "catering-ops/models/user"
	vendorModel "catering-ops/models/vendor"
)

// SeedAdminUser creates the initial admin account from ADMIN_EMAIL /
// ADMIN_PASSWORD if no internal account exists yet.
func SeedAdminUser(db *gorm.DB) {
	var count int64
	db.Model(&userModel.User{}).Count(&count)
	if count > 0 {
		return
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Printf("⚠️ ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Printf("⚠️ Failed to hash admin password: %v", err)
		return
	}

	admin := userModel.User{
		Email:        email,
		DisplayName:  "系統管理員",
		Role:         userModel.RoleAdmin,
		Title:        "系統管理員",
		PasswordHash: hash,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("⚠️ Failed to seed admin user: %v", err)
		return
	}
	log.Printf("✅ Seeded admin account %s", email)
}

// SeedDemoRoster inserts sample collaborators when both rosters are empty.
// Intended for local development; controlled by SEED_DEMO_DATA=true.
func SeedDemoRoster(db *gorm.DB) {
	if os.Getenv("SEED_DEMO_DATA") != "true" {
		return
	}

	var vendorCount, ptCount int64
	db.Model(&vendorModel.Vendor{}).Count(&vendorCount)
	db.Model(&parttimerModel.PartTimer{}).Count(&ptCount)
	if vendorCount > 0 || ptCount > 0 {
		return
	}

	desc := "專業外燴餐飲服務"
	cost := "Cost $800/head"
	price := "Price $1000/head"
	mode := "長期配合"
	vendors := []vendorModel.Vendor{
		{
			ID: uuid.NewString(), Name: "好味餐飲", Role: "CHEF",
			Phone: "0912345678", Email: "chef@example.com",
			ReliabilityScore: 92, CollaborationMode: &mode,
			PricingTerms: &cost, ClientPricingTerms: &price, Description: &desc,
			ServiceImages: vendorModel.StringSlice{}, LastModifiedFields: vendorModel.StringSlice{},
		},
		{
			ID: uuid.NewString(), Name: "星光佈置", Role: "DECOR",
			Phone: "0922333444", Email: "decor@example.com",
			ReliabilityScore: 85,
			ServiceImages:    vendorModel.StringSlice{}, LastModifiedFields: vendorModel.StringSlice{},
		},
	}
	for i := range vendors {
		if err := db.Create(&vendors[i]).Error; err != nil {
			log.Printf("⚠️ Failed to seed vendor %s: %v", vendors[i].Name, err)
		}
	}

	skills := "Basic English, Heavy Lifting"
	pts := []parttimerModel.PartTimer{
		{
			ID: uuid.NewString(), Name: "小李", Role: parttimerModel.PartTimeRoleControl,
			Phone: "0933111222", Email: "control@example.com",
			SalaryType: parttimerModel.SalaryTypeHourly, Rate: 250, Skills: &skills,
		},
		{
			ID: uuid.NewString(), Name: "阿美", Role: parttimerModel.PartTimeRoleOperations,
			Phone: "0955666777", Email: "ops-pt@example.com",
			SalaryType: parttimerModel.SalaryTypeSession, Rate: 1800,
		},
	}
	for i := range pts {
		if err := db.Create(&pts[i]).Error; err != nil {
			log.Printf("⚠️ Failed to seed part-timer %s: %v", pts[i].Name, err)
		}
	}

	log.Printf("✅ Seeded demo roster (%d vendors, %d part-timers)", len(vendors), len(pts))
}
