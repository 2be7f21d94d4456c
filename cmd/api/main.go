package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	jsoniter "github.com/json-iterator/go"

	"github.com/bnchealth/benefits-backend/internal/banner"
	"github.com/bnchealth/benefits-backend/internal/config"
	"github.com/bnchealth/benefits-backend/internal/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// main runs the dependency-light demo server: banners come from a JSON file
// (or the built-in sample payload) and nothing needs a database.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	service := banner.NewService()
	payload, err := banner.NewFileSource(cfg.BannerFile).Latest(context.Background())
	if err != nil {
		log.Printf("no banner file at %s, using the sample payload", cfg.BannerFile)
		payload = banner.SamplePayload()
	}
	if err := service.LoadJSON(payload); err != nil {
		log.Fatalf("banner payload: %v", err)
	}

	display := banner.DisplayConfig{}

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/banners", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, service.All())
		})
		r.Get("/banners/display", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, display.Group(service.All()))
		})
		r.Get("/banner/{id}", func(w http.ResponseWriter, r *http.Request) {
			item, ok := service.Get(chi.URLParam(r, "id"))
			if !ok {
				http.Error(w, "banner not found", http.StatusNotFound)
				return
			}
			writeJSON(w, item)
		})
	})

	log.Printf("starting demo server on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}
