// @title Study-tracker API
// @description API for study-tracker app "FocusFlow"
// @BasePath /api/v1
// @schemes http
package main

import (
	"os"

	"github.com/limbo/studytrack/internal/service"
)

func init() {
	service.InitValidator()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
