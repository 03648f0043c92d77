// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3880 {
		t.Errorf("expected default port 3880, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "" {
		t.Errorf("expected in-memory default, got %q", cfg.DatabaseURL)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected sqlite default, got %q", cfg.DatabaseType)
	}
	if cfg.Question != "Tabs or spaces?" {
		t.Errorf("unexpected default question %q", cfg.Question)
	}
	if len(cfg.Options) != 2 {
		t.Errorf("unexpected default options %v", cfg.Options)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("POLL_QUESTION", "Coffee or tea?")
	os.Setenv("POLL_OPTIONS", "Coffee, Tea , Water")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.Question != "Coffee or tea?" {
		t.Errorf("expected env question, got %q", cfg.Question)
	}
	if len(cfg.Options) != 3 || cfg.Options[1] != "Tea" {
		t.Errorf("options must be split and trimmed, got %v", cfg.Options)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "file:test.db" {
		t.Errorf("expected file:test.db, got %q", cfg.DatabaseURL)
	}
}

func TestParseFlags_RejectsBadValues(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{"-t", "oracle"}); err == nil {
		t.Error("expected error for unsupported database type")
	}
	if _, err := ParseFlags([]string{"-options", "OnlyOne"}); err == nil {
		t.Error("expected error for a single-option poll")
	}

	os.Setenv("PORT", "not-a-number")
	defer os.Clearenv()
	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("expected error for invalid PORT")
	}
}
