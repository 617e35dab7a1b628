package config

import "os"

type Config struct {
	Host          string
	Port          string
	DataDir       string
	AccessSecret  []byte
	RefreshSecret []byte
	Production    bool
}

func Load() *Config {
	return &Config{
		Host:          getenv("HOST", "localhost"),
		Port:          getenv("PORT", "3001"),
		DataDir:       getenv("DATA_DIR", "."),
		AccessSecret:  []byte(os.Getenv("ACCESS_TOKEN_SECRET")),
		RefreshSecret: []byte(os.Getenv("REFRESH_TOKEN_SECRET")),
		Production:    os.Getenv("APP_ENV") == "production",
	}
}

func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
