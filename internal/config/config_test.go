package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("MONGO_URI", "mongodb://localhost:27017")
	os.Setenv("MONGO_DBNAME", "corkboard_test")
	os.Setenv("REDIS_HOST", "localhost")
	os.Setenv("SESSION_SECRET", "testsecret123456789012345678901234")
	defer func() {
		os.Unsetenv("MONGO_URI")
		os.Unsetenv("MONGO_DBNAME")
		os.Unsetenv("REDIS_HOST")
		os.Unsetenv("SESSION_SECRET")
	}()

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.MongoDB.URI == "" || cfg.MongoDB.Database != "corkboard_test" {
		t.Fatalf("unexpected MongoDB config: %+v", cfg.MongoDB)
	}
	if cfg.Redis.Host != "localhost" || cfg.Redis.Port != "6379" {
		t.Fatalf("unexpected Redis config: %+v", cfg.Redis)
	}
	if cfg.Session.Secret == "" {
		t.Fatalf("expected session secret to be read from the environment")
	}
	if cfg.Session.TTL != 168*time.Hour {
		t.Fatalf("unexpected default session TTL: %v", cfg.Session.TTL)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("unexpected default port: %s", cfg.Server.Port)
	}
}
