package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Backend variants. Both expose the same route surface.
const (
	BackendCSV   = "csv"
	BackendMySQL = "mysql"
)

type Env struct {
	AppAddr string
	GinMode string

	// Backend selects the storage variant: csv (default) or mysql.
	Backend string

	// CSVPath is the dataset file for the csv variant.
	CSVPath string

	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string

	CORSOrigins []string
}

// LoadEnv reads the environment, honoring a .env file when present.
func LoadEnv() Env {
	godotenv.Load()

	env := Env{
		AppAddr:    getEnv("APP_ADDR", ":8080"),
		GinMode:    getEnv("GIN_MODE", ""),
		Backend:    strings.ToLower(getEnv("ANALYTICS_BACKEND", BackendCSV)),
		CSVPath:    getEnv("CSV_PATH", "./data/cleaned_up_pandas.csv"),
		DBHost:     getEnv("DB_HOST", "127.0.0.1"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBName:     getEnv("DB_NAME", "uberda"),
		DBUser:     getEnv("DB_USER", "root"),
		DBPassword: getEnv("DB_PASSWORD", ""),
	}

	origins := getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			env.CORSOrigins = append(env.CORSOrigins, o)
		}
	}

	return env
}

func getEnv(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}
