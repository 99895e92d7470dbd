package main

import (
	"log"

	"pathway-backend/internal/shared/config"
	"pathway-backend/internal/shared/server"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	r := server.NewRouter(cfg)

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
