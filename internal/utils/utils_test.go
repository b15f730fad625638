package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"recipe-box/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("APP_PORT: \"9000\"\nDB_DRIVER: sqlite\nAUTH_ENABLED: false\n"), 0o644))

	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("REDIS_DB", "3")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.AppPort)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.True(t, cfg.AuthEnabled)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 120, cfg.JWTTTLMinutes, "defaults survive")
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.AppPort)
}

func TestLoadConfigBadEnv(t *testing.T) {
	t.Setenv("REDIS_DB", "zero")
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidateStructMessages(t *testing.T) {
	v := InitValidator()

	err := ValidateStruct(v, domain.DigestRequest{
		Title:    "Soup",
		Servings: new(int),
		Preptime: new(int),
		Ingredients: []domain.DigestIngredient{
			{Amount: new(float64), Unit: "cup"},
		},
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Contains(t, err.Error(), "servings must be at least 1")
	assert.Contains(t, err.Error(), "cooktime is required")
	assert.Contains(t, err.Error(), "ingredients[0].name is required")
	assert.Contains(t, err.Error(), "instructions is required")
}

func TestDatabaseErrorClassification(t *testing.T) {
	assert.True(t, IsDuplicateKey(gorm.ErrDuplicatedKey))
	assert.True(t, IsDuplicateKey(errors.New("UNIQUE constraint failed: recipe.title")))
	assert.False(t, IsDuplicateKey(errors.New("disk full")))

	assert.True(t, IsForeignKeyViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, IsForeignKeyViolation(errors.New("FOREIGN KEY constraint failed")))
	assert.False(t, IsForeignKeyViolation(nil))
}
