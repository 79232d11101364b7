package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/8adiq/basic-user/app/routes"
	"github.com/8adiq/basic-user/app/services"
	"github.com/8adiq/basic-user/smoke"

	"github.com/dgraph-io/badger/v4"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("basic-user version %s\n", cliVersion)
	case "serve":
		serve(os.Args[2:])
	case "smoke":
		runSmoke(os.Args[2:])
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: basic-user <command> [options]
Commands:
  help                           Display this help message.
  version                        Show version information.
  serve [--addr :8000] [--db data/badger]
                                 Run the API server.
  smoke [--base-url http://localhost:8000]
                                 Run the end-to-end smoke suite against a
                                 running server.
`
	fmt.Println(helpText)
}

// serve opens the Badger DB and runs the API server.
func serve(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", ":8000", "listen address")
	dbPath := fs.String("db", "data/badger", "path to the Badger database directory")
	fs.Parse(args)

	opts := badger.DefaultOptions(*dbPath).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open Badger DB: %v", err)
	}
	defer db.Close()

	router := routes.SetupAPIRoutes(db, &services.LogMailer{})
	if err := routes.StartServer(*addr, router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// runSmoke exercises a running server with the ordered smoke suite.
func runSmoke(args []string) {
	fs := flag.NewFlagSet("smoke", flag.ExitOnError)
	baseURL := fs.String("base-url", envOr("BASE_URL", "http://localhost:8000"), "base URL of the server under test")
	fs.Parse(args)

	runner := smoke.New(*baseURL)
	report, err := runner.Run(context.Background())
	runner.Print(report)

	if err != nil {
		log.Printf("smoke run aborted: %v", err)
		os.Exit(1)
	}
	if report.Failed > 0 {
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
