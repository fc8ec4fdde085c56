package main

import (
	"context"
	"flag"
	"log"
	"newsagent/internal/app"
	"newsagent/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	configPath := flag.String("config", "feeds.yaml", "path to YAML file with feed configuration")
	outputPath := flag.String("output", "public/index.html", "where to write the HTML report")
	jsonPath := flag.String("json", "", "path to the merged JSON article store (optional)")
	sendEmail := flag.Bool("send-email", false, "email the digest using SMTP settings from the environment")
	serveAddr := flag.String("serve", "", "address to serve the report and articles API on (optional)")
	interval := flag.Duration("interval", 0, "re-run the pipeline at this interval, 0 means a single run")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("FATAL: could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("FATAL: invalid config: %v", err)
	}

	application, err := app.New(cfg, app.Options{
		HTMLPath:  *outputPath,
		JSONPath:  *jsonPath,
		SendEmail: *sendEmail,
		ServeAddr: *serveAddr,
		Interval:  *interval,
	})
	if err != nil {
		log.Fatalf("FATAL: could not init app: %v", err)
	}
	if err := application.Run(context.Background()); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}
