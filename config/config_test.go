package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("AWS_REGION", "us-east-1")
	t.Setenv("NUTRITIONIX_APP_ID", "app-id")
	t.Setenv("NUTRITIONIX_API_KEY", "api-key")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, ":8000", cfg.Server.Addr())
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, int64(10<<20), cfg.Server.MaxUploadBytes)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, "us-east-1", cfg.AWS.Region)
	assert.Empty(t, cfg.AWS.AccessKeyID)

	assert.Equal(t, "app-id", cfg.Nutritionix.AppID)
	assert.Equal(t, "api-key", cfg.Nutritionix.APIKey)
	assert.Equal(t, "https://trackapi.nutritionix.com/v2/natural/nutrients", cfg.Nutritionix.Endpoint)
	assert.Equal(t, "US/Eastern", cfg.Nutritionix.Timezone)
	assert.Equal(t, 10*time.Second, cfg.Nutritionix.Timeout)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("NUTRITIONIX_ENDPOINT", "http://localhost:1234/nutrients")
	t.Setenv("NUTRITIONIX_TIMEOUT", "3s")
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIA")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	t.Setenv("LOGGING_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "http://localhost:1234/nutrients", cfg.Nutritionix.Endpoint)
	assert.Equal(t, 3*time.Second, cfg.Nutritionix.Timeout)
	assert.Equal(t, "AKIA", cfg.AWS.AccessKeyID)
	assert.Equal(t, "secret", cfg.AWS.SecretAccessKey)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("AWS_REGION", "")
	t.Setenv("NUTRITIONIX_APP_ID", "")
	t.Setenv("NUTRITIONIX_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AWS_REGION")
	assert.Contains(t, err.Error(), "NUTRITIONIX_APP_ID")
	assert.Contains(t, err.Error(), "NUTRITIONIX_API_KEY")
}

func TestValidate_PartialAWSKeys(t *testing.T) {
	cfg := &Config{
		Server:      ServerConfig{Port: 8000},
		AWS:         AWSConfig{Region: "us-east-1", AccessKeyID: "AKIA"},
		Nutritionix: NutritionixConfig{AppID: "a", APIKey: "k", Endpoint: "http://x"},
	}
	assert.Error(t, cfg.Validate())
}

func TestValidate_PortRange(t *testing.T) {
	cfg := &Config{
		Server:      ServerConfig{Port: 70000},
		AWS:         AWSConfig{Region: "us-east-1"},
		Nutritionix: NutritionixConfig{AppID: "a", APIKey: "k", Endpoint: "http://x"},
	}
	assert.Error(t, cfg.Validate())
}
