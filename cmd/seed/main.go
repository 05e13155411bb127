package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/peaceseal/peaceseal-backend/config"
	"github.com/peaceseal/peaceseal-backend/internal/app/model"
	"github.com/peaceseal/peaceseal-backend/internal/app/repository"
	"github.com/peaceseal/peaceseal-backend/internal/db"
	"github.com/peaceseal/peaceseal-backend/pkg/logger"
	"github.com/xuri/excelize/v2"
)

// Imports a company roster from an XLSX export. Expected columns:
// Name | Website | Contact Email | Employee Count
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger.Initialize(logger.Config{Level: "warn", Format: "console"})

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	companyRepo := repository.NewCompanyRepository(db.GetDB(), logger.Get())

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	companies, err := readCompaniesFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total companies to import: %d\n", len(companies))

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	batchSize := 500
	fmt.Printf("Starting bulk import with batch size: %d\n", batchSize)
	if err := companyRepo.BulkCreate(companies, batchSize); err != nil {
		log.Fatal("Failed to bulk create companies:", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total companies imported: %d\n", len(companies))
}

func readCompaniesFromXLSX(filePath string) ([]model.Company, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	fmt.Printf("Reading sheet: %s\n", sheetName)

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in XLSX file")
	}

	var companies []model.Company
	seen := make(map[string]bool)
	skippedCount := 0

	for i, row := range rows {
		// First row is the header
		if i == 0 {
			fmt.Printf("Headers: %v\n", row)
			continue
		}

		if len(row) < 3 {
			skippedCount++
			continue
		}

		name := strings.TrimSpace(row[0])
		website := strings.TrimSpace(row[1])
		contactEmail := strings.TrimSpace(row[2])

		if name == "" || contactEmail == "" {
			skippedCount++
			continue
		}
		if !strings.Contains(contactEmail, "@") {
			skippedCount++
			continue
		}

		employeeCount := 0
		if len(row) > 3 {
			if n, err := strconv.Atoi(strings.TrimSpace(row[3])); err == nil && n >= 0 {
				employeeCount = n
			}
		}

		// Dedup on name + contact email
		key := fmt.Sprintf("%s|%s", strings.ToLower(name), strings.ToLower(contactEmail))
		if seen[key] {
			skippedCount++
			continue
		}
		seen[key] = true

		companies = append(companies, model.Company{
			Name:          name,
			Website:       website,
			ContactEmail:  contactEmail,
			EmployeeCount: employeeCount,
			Status:        model.StatusDraft,
		})

		if len(companies)%500 == 0 {
			fmt.Printf("Processed %d companies...\n", len(companies))
		}
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("  Total rows: %d\n", len(rows)-1)
	fmt.Printf("  Valid companies: %d\n", len(companies))
	fmt.Printf("  Skipped rows: %d\n", skippedCount)

	return companies, nil
}
