package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// DefaultProductFilePath is the bundled catalogue used when PRODUCT_FILE_PATH is unset.
const DefaultProductFilePath = "data/products.json"

// DefaultRecommendLimit caps the number of products returned by /recommend.
const DefaultRecommendLimit = 5

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string
	CatalogSource   string
	ProductFilePath string
	DatabaseURL     string
	StaticDir       string
	LLMProvider     string
	LLMModel        string
	RateLimitRPS    float64
	RateLimitBurst  int
	RecommendLimit  int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	source := normalizeCatalogSource(getEnv("CATALOG_SOURCE", "file"))
	if source == "postgres" && dbURL == "" {
		log.Printf("CATALOG_SOURCE=postgres requires DATABASE_URL; falling back to file")
		source = "file"
	}

	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             env,
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		CatalogSource:   source,
		ProductFilePath: getEnv("PRODUCT_FILE_PATH", DefaultProductFilePath),
		DatabaseURL:     dbURL,
		StaticDir:       getEnv("STATIC_DIR", "frontend/public"),
		LLMProvider:     getEnv("LLM_PROVIDER", ""),
		LLMModel:        getEnv("LLM_MODEL", ""),
		RateLimitRPS:    getEnvFloat("RATE_LIMIT_RPS", 0),
		RateLimitBurst:  getEnvInt("RATE_LIMIT_BURST", 0),
		RecommendLimit:  getEnvInt("RECOMMEND_LIMIT", DefaultRecommendLimit),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("config: %s invalid int %q, using %d", key, raw, def)
		return def
	}
	return val
}

func getEnvFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("config: %s invalid float %q, using %g", key, raw, def)
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

func normalizeCatalogSource(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "postgres", "pg":
		return "postgres"
	default:
		return "file"
	}
}
