package main

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"log"
	"os"

	"title-assist-be/internal/mapper"
	"title-assist-be/internal/model"
	"title-assist-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
)

// Imports client records from a partner CSV export. Expected columns:
// name,email,phone,vehicle_year,vehicle_make,vehicle_model,state,title_status,title_remedy,source
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	if len(os.Args) < 2 {
		log.Fatal("Usage: seed <records.csv>")
	}
	csvPath := os.Args[1]

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	file, err := os.Open(csvPath)
	if err != nil {
		log.Fatalf("Error: Failed to open %s: %v", csvPath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		log.Fatalf("Error: Failed to read CSV header: %v", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, required := range []string{"name", "email"} {
		if _, ok := col[required]; !ok {
			log.Fatalf("Error: CSV is missing required column %q", required)
		}
	}

	field := func(row []string, name string) string {
		if i, ok := col[name]; ok && i < len(row) {
			return row[i]
		}
		return ""
	}

	created, skipped, failed := 0, 0, 0

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			color.Red("Bad row: %v", err)
			failed++
			continue
		}

		email := field(row, "email")
		var existing model.ClientRecord
		if err := db.Where("LOWER(email) = LOWER(?)", email).First(&existing).Error; err == nil {
			color.Yellow("Skipping %s (already imported)", email)
			skipped++
			continue
		}

		meta, _ := json.Marshal(map[string]string{"imported_from": csvPath})
		record := model.ClientRecord{
			Name:         field(row, "name"),
			Email:        email,
			Phone:        field(row, "phone"),
			PhoneDigits:  mapper.DigitsOnly(field(row, "phone")),
			VehicleYear:  field(row, "vehicle_year"),
			VehicleMake:  field(row, "vehicle_make"),
			VehicleModel: field(row, "vehicle_model"),
			State:        field(row, "state"),
			TitleStatus:  field(row, "title_status"),
			TitleRemedy:  field(row, "title_remedy"),
			Source:       field(row, "source"),
			Metadata:     datatypes.JSON(meta),
		}

		if err := db.Create(&record).Error; err != nil {
			color.Red("Failed to import %s: %v", email, err)
			failed++
			continue
		}
		created++
	}

	color.Green("Import finished: %d created, %d skipped, %d failed", created, skipped, failed)
}
