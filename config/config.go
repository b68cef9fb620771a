package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetTaxRate đọc thuế suất từ env, mặc định 18%
func GetTaxRate() float64 {
	raw := os.Getenv("TAX_RATE")
	if raw == "" {
		return 0.18
	}
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil || rate < 0 {
		log.Printf("TAX_RATE không hợp lệ (%q), dùng mặc định 0.18", raw)
		return 0.18
	}
	return rate
}

// GetPendingPaymentTTL đọc thời hạn giữ chỗ chờ thanh toán, mặc định 30 phút
func GetPendingPaymentTTL() time.Duration {
	raw := os.Getenv("PENDING_PAYMENT_TTL_MINUTES")
	if raw == "" {
		return 30 * time.Minute
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		log.Printf("PENDING_PAYMENT_TTL_MINUTES không hợp lệ (%q), dùng mặc định 30", raw)
		return 30 * time.Minute
	}
	return time.Duration(minutes) * time.Minute
}

// GetPointUnit đọc mệnh giá quy đổi điểm thưởng, mặc định 100 đồng = 1 điểm
func GetPointUnit() float64 {
	raw := os.Getenv("COMMISSION_POINT_UNIT")
	if raw == "" {
		return 100
	}
	unit, err := strconv.ParseFloat(raw, 64)
	if err != nil || unit <= 0 {
		log.Printf("COMMISSION_POINT_UNIT không hợp lệ (%q), dùng mặc định 100", raw)
		return 100
	}
	return unit
}
