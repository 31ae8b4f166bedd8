package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"caseops/internal/config"
	"caseops/internal/database"
	"caseops/internal/services"
	"caseops/internal/utils"
)

// healthcheck opens the configured store directly and reports collection
// counts. When SERVICE_URL is set it also probes the running data service.
// Intended for container liveness probes and cron monitoring.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer database.Close(db)

	result := services.HealthCheck(cfg, db)

	if serviceURL := os.Getenv("SERVICE_URL"); serviceURL != "" {
		if err := utils.PingService(serviceURL, 1500*time.Millisecond); err != nil {
			result.Status = "unhealthy"
			result.Details["service"] = "unreachable"
			if result.ErrorMessage == "" {
				result.ErrorMessage = fmt.Sprintf("service ping failed: %v", err)
			}
		} else {
			result.Details["service"] = "ok"
		}
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal health check result: %v", err)
	}

	fmt.Println(string(output))

	if result.Status != "healthy" {
		os.Exit(1)
	}
	os.Exit(0)
}
