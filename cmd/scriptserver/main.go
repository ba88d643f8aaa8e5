package main

import (
	"flag"
	"log"

	"podscript/pkg/api"
	"podscript/pkg/config"
)

func main() {
	var (
		configPath = flag.String("config", "", "Optional JSON config file layered over the environment")
		port       = flag.String("port", "", "Port to listen on (overrides PORT)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	errs, warnings := cfg.Validate()
	for _, w := range warnings {
		log.Printf("Config warning: %s", w)
	}
	if len(errs) > 0 {
		for _, e := range errs {
			log.Printf("Config error: %s", e)
		}
		log.Fatal("Invalid configuration")
	}

	if *port != "" {
		cfg.Port = *port
	}

	srv := api.NewServer(cfg.Port, cfg.Show, cfg.Enhancer())
	if err := srv.Start(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
