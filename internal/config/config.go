package config

import (
	"fmt"
	"os"
	"strings"
)

// Environment variables required for the converter to start. All four must
// be present; there is no partial startup.
const (
	EnvAccessKeyID     = "AWS_ACCESS_KEY_ID"
	EnvSecretAccessKey = "AWS_SECRET_ACCESS_KEY"
	EnvRegion          = "AWS_REGION"
	EnvModelID         = "BEDROCK_MODEL_ID"

	envPort        = "PORT"
	envFrontendURL = "FRONTEND_URL"

	defaultListenAddr = ":8080"
)

// Config holds the process configuration, loaded once at startup and
// read-only afterwards.
type Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	ModelID         string

	// ListenAddr is the HTTP listen address for the server entrypoint.
	ListenAddr string
	// FrontendURL is an additional allowed browser origin. Empty means the
	// page is only served same-origin.
	FrontendURL string
}

// Load reads the configuration from the environment. The returned error
// names every missing required variable so a single failed start reports
// the full set.
func Load() (Config, error) {
	cfg := Config{
		AccessKeyID:     strings.TrimSpace(os.Getenv(EnvAccessKeyID)),
		SecretAccessKey: strings.TrimSpace(os.Getenv(EnvSecretAccessKey)),
		Region:          strings.TrimSpace(os.Getenv(EnvRegion)),
		ModelID:         strings.TrimSpace(os.Getenv(EnvModelID)),
		ListenAddr:      defaultListenAddr,
		FrontendURL:     strings.TrimSpace(os.Getenv(envFrontendURL)),
	}

	var missing []string
	for _, v := range []struct {
		name  string
		value string
	}{
		{EnvAccessKeyID, cfg.AccessKeyID},
		{EnvSecretAccessKey, cfg.SecretAccessKey},
		{EnvRegion, cfg.Region},
		{EnvModelID, cfg.ModelID},
	} {
		if v.value == "" {
			missing = append(missing, v.name)
		}
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("config: missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if port := strings.TrimSpace(os.Getenv(envPort)); port != "" {
		cfg.ListenAddr = ":" + strings.TrimPrefix(port, ":")
	}

	return cfg, nil
}
