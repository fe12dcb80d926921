package main

import (
	"log"
	"net/http"
	"os"

	"github.com/magrebiali/FixMySheet-Backend/api"
	"github.com/magrebiali/FixMySheet-Backend/common"
	"github.com/magrebiali/FixMySheet-Backend/config"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	addr := ":" + config.DefaultPort
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	if err := common.EnsureTmpDir(config.TmpDir); err != nil {
		log.Fatalf("failed to create tmp dir: %v", err)
	}

	r := api.NewRouter()
	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /")
	log.Println("  POST /process")
	log.Println("  POST /dedupe")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
