package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	Question     string
	Options      []string
}

// ParseFlags validates flags and sets defaults
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var optionList string

	// Load .env if present; real env vars win over file values.
	_ = godotenv.Load()

	fs := flag.NewFlagSet("pollwidget", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (empty = in-memory store)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Seed poll served until someone edits the database by hand
	fs.StringVar(&cfg.Question, "question", "", "Poll question")
	fs.StringVar(&optionList, "options", "", "Comma-separated option texts")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3880 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.Question == "" {
		cfg.Question = os.Getenv("POLL_QUESTION")
	}
	if cfg.Question == "" {
		cfg.Question = "Tabs or spaces?"
	}

	if optionList == "" {
		optionList = os.Getenv("POLL_OPTIONS")
	}
	if optionList == "" {
		optionList = "Tabs,Spaces"
	}
	for _, text := range strings.Split(optionList, ",") {
		text = strings.TrimSpace(text)
		if text != "" {
			cfg.Options = append(cfg.Options, text)
		}
	}
	if len(cfg.Options) < 2 {
		return Config{}, errors.New("poll needs at least two options")
	}

	return cfg, nil
}
