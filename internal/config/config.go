package config

import "os"

type Config struct {
	Addr        string
	DatabaseURL string
	JWTSecret   string
	UploadDir   string
}

func Load() Config {
	addr := os.Getenv("ADOPTION_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./public/uploads"
	}

	return Config{
		Addr:        addr,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		UploadDir:   uploadDir,
	}
}
