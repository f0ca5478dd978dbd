package models

import (
	"fmt"
	"os"
	"strconv"
)

type EnvConfig struct {
	DatabaseURL      string
	Port             string
	UploadDir        string
	ReportsDir       string
	ReportsPerMinute int
	Debug            bool
}

func ReadEnvConfig() EnvConfig {
	debug := os.Getenv("LLAQTA_DEBUG") == "true"
	port := os.Getenv("LLAQTA_PORT")
	if port == "" {
		port = "5000"
	}
	uploadDir := os.Getenv("LLAQTA_UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "data/evidencias"
	}
	reportsDir := os.Getenv("LLAQTA_REPORTS_DIR")
	if reportsDir == "" {
		reportsDir = "data/reportes_generados"
	}
	reportsPerMinute, err := strconv.Atoi(os.Getenv("LLAQTA_REPORTS_PER_MINUTE"))
	if err != nil {
		fmt.Println("Using default value for LLAQTA_REPORTS_PER_MINUTE")
		reportsPerMinute = 60
	}
	return EnvConfig{
		DatabaseURL:      os.Getenv("LLAQTA_DATABASE_URL"),
		Port:             port,
		UploadDir:        uploadDir,
		ReportsDir:       reportsDir,
		ReportsPerMinute: reportsPerMinute,
		Debug:            debug,
	}
}
