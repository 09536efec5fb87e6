package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Load reads a .env file into the environment when one exists. Variables
// already set take precedence.
func Load(files ...string) error {
	if len(files) == 0 {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
	}
	return godotenv.Load(files...)
}

func BasePath() string {
	return os.Getenv("APP_BASE_PATH")
}

func Addr() string {
	addr, ok := os.LookupEnv("APP_ADDR")
	if !ok || addr == "" {
		return ":8080"
	}
	return addr
}

// CorsOrigins returns the allowed origins, or nil to allow any.
func CorsOrigins() []string {
	origins, ok := os.LookupEnv("CORS_ORIGINS")
	if !ok || strings.TrimSpace(origins) == "" {
		return nil
	}
	var res []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			res = append(res, o)
		}
	}
	return res
}
