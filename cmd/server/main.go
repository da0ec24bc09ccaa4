package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"mosaic-media/internal/config"
	"mosaic-media/internal/db"
	"mosaic-media/internal/handlers"

	"github.com/fsnotify/fsnotify"
	"github.com/gorilla/sessions"
)

func main() {
	cfgFile := flag.String("config", "", "config file (default is ./config.yaml)")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	database, err := db.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	handlers.JWTSecret = []byte(cfg.JWTSecret)

	store := sessions.NewCookieStore([]byte(cfg.SessionKey))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}

	h := handlers.New(database, store, cfg)

	if cfg.DevReload {
		go watchTemplates(cfg.TemplatesDir, h)
	}

	r := routes(h, cfg)

	log.Printf("Server starting on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// watchTemplates re-parses templates on change, debounced so an editor
// save burst triggers a single reload.
func watchTemplates(dir string, h *handlers.Handler) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("Failed to create template watcher: %v", err)
		return
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		log.Printf("Failed to watch %s: %v", dir, err)
		return
	}

	var reloadTimer *time.Timer
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				if reloadTimer != nil {
					reloadTimer.Stop()
				}
				reloadTimer = time.AfterFunc(500*time.Millisecond, func() {
					if err := h.ReloadTemplates(); err != nil {
						log.Printf("Template reload failed: %v", err)
					} else {
						log.Println("Templates reloaded")
					}
				})
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}
