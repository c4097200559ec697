package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"nutrisec/internal/config"
)

func lookup(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	c, err := config.FromEnv(lookup(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Addr != ":8080" || c.LogLevel != "info" || c.Storage != config.StorageSQLite || c.SQLitePath != "nutrisec.db" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if len(c.CORSOrigins) != 1 || c.CORSOrigins[0] != "*" {
		t.Fatalf("unexpected origins: %v", c.CORSOrigins)
	}
	if c.MaxCalorie != 2700 || c.CoefP != 3.0 || c.PlausibleFloor != 0.85 || c.CalPerGram != 7.5 {
		t.Fatalf("unexpected rule defaults: %+v", c)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	c, err := config.FromEnv(lookup(map[string]string{
		"DATABASE_URL":          "postgres://localhost/nutrisec",
		"NUTRISEC_CORS_ORIGINS": "http://a.test, http://b.test,",
		"NUTRISEC_MAX_CALORIE":  "2200",
		"NUTRISEC_COEF_P":       "6",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Storage != config.StoragePostgres {
		t.Fatalf("DATABASE_URL should select postgres, got %s", c.Storage)
	}
	if len(c.CORSOrigins) != 2 || c.CORSOrigins[1] != "http://b.test" {
		t.Fatalf("unexpected origins: %v", c.CORSOrigins)
	}
	if c.MaxCalorie != 2200 || c.CoefP != 6 {
		t.Fatalf("unexpected rules: %+v", c)
	}
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{"unknown storage", map[string]string{"NUTRISEC_STORAGE": "redis"}},
		{"postgres without url", map[string]string{"NUTRISEC_STORAGE": "postgres"}},
		{"max calorie not a number", map[string]string{"NUTRISEC_MAX_CALORIE": "lots"}},
		{"max calorie zero", map[string]string{"NUTRISEC_MAX_CALORIE": "0"}},
		{"coefP negative", map[string]string{"NUTRISEC_COEF_P": "-1"}},
		{"floor not a number", map[string]string{"NUTRISEC_PLAUSIBLE_FLOOR": "x"}},
		{"cal per gram zero", map[string]string{"NUTRISEC_CAL_PER_GRAM": "0"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := config.FromEnv(lookup(tc.vars)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "NUTRISEC_ADDR=:9999\nNUTRISEC_STORAGE=memory\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	// Registers cleanup so the variables loaded from the file are removed.
	t.Setenv("NUTRISEC_ADDR", "")
	t.Setenv("NUTRISEC_STORAGE", "")
	os.Unsetenv("NUTRISEC_ADDR")
	os.Unsetenv("NUTRISEC_STORAGE")
	t.Setenv("NUTRISEC_LOG_LEVEL", "debug")

	c, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Addr != ":9999" || c.Storage != config.StorageMemory || c.LogLevel != "debug" {
		t.Fatalf("unexpected config: %+v", c)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("missing .env must be ignored, got %v", err)
	}
}
