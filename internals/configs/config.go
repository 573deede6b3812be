package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JWTSecret      string
	UploadDir      string
	MaxUploadSize  int64
	MaxUploadFiles int
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET", "desa-air-kulim-secret")
	UploadDir = GetEnv("UPLOAD_DIR", "uploads")
	MaxUploadSize = GetEnvInt64("MAX_UPLOAD_SIZE", 5*1024*1024) // 5MB per file
	MaxUploadFiles = int(GetEnvInt64("MAX_UPLOAD_FILES", 5))

	if os.Getenv("JWT_SECRET") == "" {
		log.Println("⚠️ JWT_SECRET belum diset, pakai default (jangan dipakai di produksi!)")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt64(key string, defaultValue int64) int64 {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Printf("⚠️ %s bukan angka (%q), pakai default %d", key, raw, defaultValue)
		return defaultValue
	}
	return v
}
