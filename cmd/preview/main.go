package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"journey-route-service/internal/adapters/content"
	"journey-route-service/internal/api"
	"journey-route-service/internal/config"
)

// main serves the content tree and the generated route documents to a local
// map frontend while entries are being written.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	configPath := flag.String("config", "site.yml", "site configuration file")
	flag.Parse()

	cfg, err := config.LoadSite(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	port := config.Get("PORT", "8080")

	loader := content.NewLoader(cfg.Content)
	router := api.NewRouter(loader, cfg.Output)

	log.Printf("Preview listening addr=:%s content=%s routes=%s", port, cfg.Content, cfg.Output)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
