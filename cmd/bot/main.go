package main

import (
	"log"

	corecmd "github.com/m3rciful/collegebot/core/cmd"
	"github.com/m3rciful/collegebot/internal/app"
)

func main() {
	err := corecmd.Run(corecmd.Options{
		DefaultConfigPath: "config.yaml",
		LoadConfig: func(path string) (corecmd.ConfigCarrier, error) {
			return app.Load(path)
		},
		Bootstrap: app.Bootstrap,
	})
	if err != nil {
		log.Fatalf("bot exited: %v", err)
	}
}
