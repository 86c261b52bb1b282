package main

import (
	"flag"
	"log"
	"os"
	"time"

	"compliancebot-be/internal/model"
	"compliancebot-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// Seeds a demo workspace: company profile, the starter compliance checklist
// and the recurring fiscal deadlines for the current year.
func main() {
	userIdFlag := flag.String("user", "", "user id to seed data for (required)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	userId, err := uuid.Parse(*userIdFlag)
	if err != nil {
		color.Red("Error: -user must be a valid uuid")
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(
		&model.CompanyProfile{},
		&model.ComplianceItem{},
		&model.Deadline{},
		&model.SavedDocument{},
		&model.ChatSession{},
		&model.ChatMessage{},
	); err != nil {
		color.Red("Error: Failed to migrate: %v", err)
		os.Exit(1)
	}

	color.Cyan("🚀 Seeding ComplianceBot demo data for %s\n", userId)

	seedCompanyProfile(db, userId)
	seedComplianceChecklist(db, userId)
	seedFiscalDeadlines(db, userId)

	color.Cyan("\nDone.")
}

func seedCompanyProfile(db *gorm.DB, userId uuid.UUID) {
	color.Yellow("\n[1/3] Company profile")

	var count int64
	db.Model(&model.CompanyProfile{}).Where("user_id = ?", userId).Count(&count)
	if count > 0 {
		color.Green("Skipped: profile already exists")
		return
	}

	profile := model.CompanyProfile{
		Id:                 uuid.New(),
		UserId:             userId,
		CompanyName:        "Demo Digital SRL",
		CUI:                "RO12345678",
		RegistrationNumber: "J40/1234/2020",
		Address:            "Str. Exemplu nr. 10, București, Sector 1",
		Employees:          "1-5",
		Representative:     "Ion Popescu",
		Email:              "contact@demodigital.ro",
		Phone:              "+40 721 234 567",
	}
	if err := db.Create(&profile).Error; err != nil {
		color.Red("Failed: %v", err)
		return
	}
	color.Green("Created: %s", profile.CompanyName)
}

func seedComplianceChecklist(db *gorm.DB, userId uuid.UUID) {
	color.Yellow("\n[2/3] Compliance checklist")

	items := []model.ComplianceItem{
		{Title: "Politică de confidențialitate publicată", Category: "gdpr"},
		{Title: "Registru de evidență a prelucrărilor de date", Category: "gdpr"},
		{Title: "Acorduri de prelucrare date (DPA) cu furnizorii", Category: "gdpr"},
		{Title: "Politică cookies și banner de consimțământ", Category: "gdpr"},
		{Title: "Declarația 112 depusă la zi", Category: "fiscal"},
		{Title: "Verificare prag TVA (300.000 RON)", Category: "fiscal"},
		{Title: "Registru de casă actualizat", Category: "fiscal"},
		{Title: "Contracte individuale de muncă semnate", Category: "labor"},
		{Title: "REVISAL actualizat cu toți angajații", Category: "labor"},
		{Title: "Regulament intern comunicat angajaților", Category: "labor"},
	}

	created := 0
	for _, item := range items {
		var count int64
		db.Model(&model.ComplianceItem{}).
			Where("user_id = ? AND title = ?", userId, item.Title).
			Count(&count)
		if count > 0 {
			continue
		}

		item.Id = uuid.New()
		item.UserId = userId
		item.Status = "pending"
		if err := db.Create(&item).Error; err != nil {
			color.Red("Failed on %q: %v", item.Title, err)
			continue
		}
		created++
	}
	color.Green("Created %d of %d checklist items", created, len(items))
}

func seedFiscalDeadlines(db *gorm.DB, userId uuid.UUID) {
	color.Yellow("\n[3/3] Fiscal deadlines")

	year := time.Now().Year()
	deadlines := []model.Deadline{
		{Title: "Depunere Declarația 112 (T4 anterior)", Type: "fiscal", DueDate: time.Date(year, time.January, 25, 0, 0, 0, 0, time.Local)},
		{Title: "Depunere Declarația unică", Type: "fiscal", DueDate: time.Date(year, time.May, 25, 0, 0, 0, 0, time.Local)},
		{Title: "Depunere situații financiare anuale", Type: "fiscal", DueDate: time.Date(year, time.May, 30, 0, 0, 0, 0, time.Local)},
		{Title: "Revizuire anuală politici GDPR", Type: "gdpr", DueDate: time.Date(year, time.September, 30, 0, 0, 0, 0, time.Local)},
	}

	created := 0
	for _, d := range deadlines {
		var count int64
		db.Model(&model.Deadline{}).
			Where("user_id = ? AND title = ? AND due_date = ?", userId, d.Title, d.DueDate).
			Count(&count)
		if count > 0 {
			continue
		}

		d.Id = uuid.New()
		d.UserId = userId
		if err := db.Create(&d).Error; err != nil {
			color.Red("Failed on %q: %v", d.Title, err)
			continue
		}
		created++
	}
	color.Green("Created %d of %d deadlines", created, len(deadlines))
}
