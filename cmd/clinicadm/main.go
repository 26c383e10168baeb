package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fertivia/clinic/internal/cli"
	"github.com/fertivia/clinic/internal/config"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("skipping .env: %v", err)
	}

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "create":
		flags := flag.NewFlagSet("create", flag.ExitOnError)
		email := flags.String("email", "", "admin email (required)")
		firstName := flags.String("first-name", "", "admin first name")
		lastName := flags.String("last-name", "", "admin last name")
		phone := flags.String("phone", "", "admin phone")
		_ = flags.Parse(os.Args[2:])

		if err := cli.RunCreateAdminCommand(cfg.Database.Driver, cfg.DSN(), *email, *firstName, *lastName, *phone); err != nil {
			log.Fatalf("create admin failed: %v", err)
		}
	case "reset-password":
		flags := flag.NewFlagSet("reset-password", flag.ExitOnError)
		email := flags.String("email", "", "admin email (required)")
		_ = flags.Parse(os.Args[2:])

		if err := cli.RunResetAdminPasswordCommand(cfg.Database.Driver, cfg.DSN(), *email); err != nil {
			log.Fatalf("reset admin password failed: %v", err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: clinicadm <create|reset-password> [flags]")
	fmt.Fprintln(os.Stderr, "  create          -email addr [-first-name name] [-last-name name] [-phone number]")
	fmt.Fprintln(os.Stderr, "  reset-password  -email addr")
}
