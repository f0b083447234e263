package main

import (
	"bloom_daily_backend/internal/cli"
	"bloom_daily_backend/internal/config"
	"bloom_daily_backend/pkg/database"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config directory." type:"path" default:"configs"`
	Email   string `help:"User email, defaults to app.default_user_email."`

	Seed   cli.SeedCmd   `cmd:"" help:"Migrate and insert demo data."`
	Report cli.ReportCmd `cmd:"" help:"Print bucketed completion series."`
	Status cli.StatusCmd `cmd:"" help:"Print goal status distribution."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("bloomctl"),
		kong.Description("Bloom Daily analytics companion"),
		kong.UsageOnError(),
		kong.Vars{"version": "v1.0.0"},
	)

	cfg, err := config.LoadConfig(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: load config: %v\n", err)
		os.Exit(1)
	}
	loc, err := cfg.App.Location()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	db, err := database.InitDB(&cfg.Database, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: open database: %v\n", err)
		os.Exit(1)
	}

	email := CLI.Email
	if email == "" {
		email = cfg.App.DefaultUserEmail
	}

	err = ctx.Run(&cli.Context{
		DB:       db,
		Email:    email,
		Location: loc,
		Out:      os.Stdout,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
