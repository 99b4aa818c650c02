package main

import (
	"apodapi/internal/cli"

	// Import docs for Swagger
	_ "apodapi/docs"
)

// @title APOD API
// @version 1.0.0
// @description Archive and search of NASA's Astronomy Picture of the Day.
// @BasePath /
// @schemes http
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key
// @description Ingest credential, checked on POST /apod.

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
