package config

import "os"

// Config holds environment-driven configuration.
type Config struct {
	Addr              string
	DatabaseURL       string
	JWTSecret         string
	DisplayConfigPath string
	StringsDir        string
	AssetsDir         string
	DefaultLanguage   string
	BannerFile        string
}

// Load reads configuration from environment variables. Defaults keep the
// file-backed demo binary runnable with no environment at all.
func Load() Config {
	return Config{
		Addr:              getenv("BENEFITS_ADDR", ":8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		DisplayConfigPath: getenv("DISPLAY_CONFIG_PATH", "./config/display.json"),
		StringsDir:        getenv("STRINGS_DIR", "./config/strings"),
		AssetsDir:         getenv("ASSETS_DIR", "./assets"),
		DefaultLanguage:   getenv("DEFAULT_LANGUAGE", "en"),
		BannerFile:        getenv("BANNER_FILE", "./config/banners.json"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
