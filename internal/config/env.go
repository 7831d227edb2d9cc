package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Secrets holds credentials that never live in config.yaml.
type Secrets struct {
	OpenAIAPIKey  string
	OpenAIBaseURL string
	GeminiAPIKeys []string
}

// LoadSecrets loads .env files (missing ones are skipped) into the process
// environment and reads the API credentials from it. Variables already set
// in the environment win over .env values.
func LoadSecrets(files ...string) Secrets {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		_ = godotenv.Load(f)
	}

	return Secrets{
		OpenAIAPIKey:  strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIBaseURL: strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")),
		GeminiAPIKeys: splitList(os.Getenv("GEMINI_API_KEYS")),
	}
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
