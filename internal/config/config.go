package config

import (
	env_utils "fieldlog/internal/util/env"
	"fieldlog/internal/util/logger"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

var log = logger.GetLogger()

type EnvVariables struct {
	IsTesting       bool
	DatabaseDsn     string            `env:"DATABASE_DSN"    required:"true"`
	EnvMode         env_utils.EnvMode `env:"ENV_MODE"        required:"true"`
	BackendRootPath string            `env:"BACKEND_ROOT_PATH"`
	// cache
	ValkeyHost     string `env:"VALKEY_HOST"     required:"true"`
	ValkeyPort     string `env:"VALKEY_PORT"     required:"true"`
	ValkeyUsername string `env:"VALKEY_USERNAME" required:"false"`
	ValkeyPassword string `env:"VALKEY_PASSWORD" required:"false"`
	ValkeyIsSsl    bool   `env:"VALKEY_IS_SSL"   required:"true"`
	// comma-separated user IDs with admin capability in every workspace
	SuperAdminIDsRaw string `env:"SUPERADMIN_IDS" required:"false"`

	superAdminIDs map[uuid.UUID]bool
}

// IsSuperAdmin reports whether the identity is on the configured
// cross-workspace allowlist.
func (e *EnvVariables) IsSuperAdmin(userID uuid.UUID) bool {
	return e.superAdminIDs[userID]
}

var (
	env  EnvVariables
	once sync.Once
)

func GetEnv() *EnvVariables {
	once.Do(loadEnvVariables)
	return &env
}

func loadEnvVariables() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Warn("could not get current working directory", "error", err)
		cwd = "."
	}

	backendRoot := cwd
	for {
		if _, err := os.Stat(filepath.Join(backendRoot, "go.mod")); err == nil {
			break
		}

		parent := filepath.Dir(backendRoot)
		if parent == backendRoot {
			break
		}

		backendRoot = parent
	}

	env.BackendRootPath = backendRoot

	envPaths := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(backendRoot, ".env"),
	}

	var loaded bool
	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			log.Info("Successfully loaded .env", "path", path)
			loaded = true
			break
		}
	}

	if !loaded {
		log.Error("Error loading .env file: could not find .env in any location")
		os.Exit(1)
	}

	err = cleanenv.ReadEnv(&env)
	if err != nil {
		log.Error("Configuration could not be loaded", "error", err)
		os.Exit(1)
	}

	for _, arg := range os.Args {
		if strings.Contains(arg, "test") {
			env.IsTesting = true
			break
		}
	}

	if env.DatabaseDsn == "" {
		log.Error("DATABASE_DSN is empty")
		os.Exit(1)
	}

	if env.EnvMode != env_utils.EnvModeDevelopment && env.EnvMode != env_utils.EnvModeProduction {
		log.Error("ENV_MODE is invalid", "mode", env.EnvMode)
		os.Exit(1)
	}

	if env.ValkeyHost == "" {
		log.Error("VALKEY_HOST is empty")
		os.Exit(1)
	}
	if env.ValkeyPort == "" {
		log.Error("VALKEY_PORT is empty")
		os.Exit(1)
	}

	env.superAdminIDs = make(map[uuid.UUID]bool)
	for _, raw := range strings.Split(env.SuperAdminIDsRaw, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			log.Error("SUPERADMIN_IDS contains an invalid user ID", "value", raw)
			os.Exit(1)
		}

		env.superAdminIDs[id] = true
	}

	log.Info("Environment variables loaded successfully!")
}
