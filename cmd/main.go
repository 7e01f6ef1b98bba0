package main

import (
	"os"

	"feedback_app/internal/cli"
)

// @title           Feedback App
// @version         1.0
// @description     Server-rendered feedback pages behind a cookie session.
// @BasePath        /
func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
