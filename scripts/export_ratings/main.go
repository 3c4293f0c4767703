package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/xuri/excelize/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/servired/backend/internal/repositories"
)

// Exports technician rating stats to an xlsx file for offline review.
// Usage: go run ./scripts/export_ratings [output.xlsx]
func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	output := "technician_ratings.xlsx"
	if len(os.Args) > 1 {
		output = os.Args[1]
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"), os.Getenv("DB_PORT"), os.Getenv("DB_SSLMODE"))

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database:", err)
	}

	technicians, err := repositories.NewUserRepository(db).GetTechnicians()
	if err != nil {
		log.Fatal("failed to load technicians:", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Technicians"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"ID", "Username", "Full Name", "Specialties", "Rating", "Total Reviews", "Jobs Completed"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for i, tech := range technicians {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), tech.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), tech.Username)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), tech.FullName)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), tech.Specialties)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), tech.Rating)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), tech.TotalReviews)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), tech.JobsCompleted)
	}

	if err := f.SaveAs(output); err != nil {
		log.Fatal("failed to save file:", err)
	}

	fmt.Printf("Exported %d technicians to %s\n", len(technicians), output)
}
