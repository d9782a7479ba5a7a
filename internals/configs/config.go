package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	AppName   string
	AppEnv    string
	Timezone  string
	Tolerance int // default toleransi (%) untuk laporan individu
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

	AppName = GetEnv("APP_NAME", "spsp")
	AppEnv = GetEnv("APP_ENV", "development")
	Timezone = GetEnv("APP_TIMEZONE", "Asia/Jakarta")
	Tolerance = GetEnvInt("DEFAULT_TOLERANCE_PERCENTAGE", 10)
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// GetEnvInt membaca ENV integer; fallback ke default kalau kosong/invalid.
func GetEnvInt(key string, defaultValue int) int {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("⚠️ %s bukan angka (%q), pakai default %d", key, raw, defaultValue)
		return defaultValue
	}
	return n
}
