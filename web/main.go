package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-voxel-raytracer/pkg/config"
	"github.com/df07/go-voxel-raytracer/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	configPath := flag.String("config", "", "Optional TOML settings file")
	flag.Parse()

	settings := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Printf("Error loading config: %v", err)
			os.Exit(1)
		}
		settings = loaded
	}

	webServer := server.NewServer(*port, settings)

	log.Printf("Voxel Raytracer Web Viewer")
	log.Printf("Visit http://localhost:%d to connect", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
