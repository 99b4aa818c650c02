// filepath: internal/api/handlers/main.go
package handlers

import (
	"time"

	"apodapi/internal/config"
	"apodapi/internal/services"
)

// Handlers provides a struct to hold shared dependencies for API handlers.
type Handlers struct {
	// --- Depend on interfaces, not concrete structs ---
	Info     services.InfoService
	Pictures services.PictureService

	Cfg       *config.Config
	Version   string
	StartTime time.Time
}

// NewHandlers creates a new instance of Handlers with its dependencies.
func NewHandlers(info services.InfoService, pictures services.PictureService, cfg *config.Config) *Handlers {
	return &Handlers{
		Info:      info,
		Pictures:  pictures,
		Cfg:       cfg,
		Version:   info.GetInfo().Version,
		StartTime: info.GetInfo().UptimeSince,
	}
}
