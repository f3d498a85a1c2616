package envloader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	type Config struct {
		TableName string `env:"TEST_TABLE_NAME" envDefault:"InventoryDB"`
		HashKey   string `env:"TEST_HASH_KEY" envDefault:"id"`
	}

	cfg := &Config{}
	require.NoError(t, Load(cfg))
	assert.Equal(t, "InventoryDB", cfg.TableName)
	assert.Equal(t, "id", cfg.HashKey)

	t.Setenv("TEST_TABLE_NAME", "dev-inventory")
	cfg2 := &Config{}
	require.NoError(t, Load(cfg2))
	assert.Equal(t, "dev-inventory", cfg2.TableName)
	assert.Equal(t, "id", cfg2.HashKey)
}

func TestLoad_TypedFields(t *testing.T) {
	type Config struct {
		Port    int     `env:"TEST_PORT" envDefault:"8080"`
		Enabled bool    `env:"TEST_ENABLED" envDefault:"true"`
		Ratio   float64 `env:"TEST_RATIO" envDefault:"0.5"`
	}

	cfg := &Config{}
	require.NoError(t, Load(cfg))
	assert.Equal(t, 8080, cfg.Port)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 0.5, cfg.Ratio)
}

func TestLoad_NestedStruct(t *testing.T) {
	type Inner struct {
		Level string `env:"TEST_LOG_LEVEL" envDefault:"info"`
	}
	type Outer struct {
		Logging Inner
	}

	cfg := &Outer{}
	require.NoError(t, Load(cfg))
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_UntaggedFieldUntouched(t *testing.T) {
	type Config struct {
		Keep string
	}

	cfg := &Config{Keep: "as-is"}
	require.NoError(t, Load(cfg))
	assert.Equal(t, "as-is", cfg.Keep)
}

func TestLoad_InvalidInput(t *testing.T) {
	var err error

	err = Load("not a struct")
	assert.Error(t, err)
	assert.IsType(t, &InvalidConfigError{}, err)

	type Config struct {
		Port int `env:"TEST_BAD_PORT"`
	}
	t.Setenv("TEST_BAD_PORT", "abc")
	err = Load(&Config{})
	require.Error(t, err)
	fieldErr, ok := err.(*FieldError)
	require.True(t, ok)
	assert.Equal(t, "Port", fieldErr.FieldName)
	assert.Equal(t, "TEST_BAD_PORT", fieldErr.EnvVar)
}

func TestLoad_UnsupportedType(t *testing.T) {
	type Config struct {
		Tags map[string]string `env:"TEST_TAGS"`
	}
	t.Setenv("TEST_TAGS", "a=b")

	err := Load(&Config{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported type")
}
