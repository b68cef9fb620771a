package utils

import (
	"fmt"
	"log"
	"os"
	"time"
)

var (
	infoLogger  *log.Logger
	errorLogger *log.Logger
)

// Nhật ký đối soát thanh toán ghi ra file theo ngày, tách khỏi log console
// của ứng dụng để vận hành trích xuất riêng được
func init() {
	if err := os.MkdirAll("logs", 0o755); err != nil {
		log.Fatal(err)
	}

	name := fmt.Sprintf("logs/payment-%s.log", time.Now().Format("2006-01-02"))
	file, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatal(err)
	}

	infoLogger = log.New(file, "INFO: ", log.Ldate|log.Ltime)
	errorLogger = log.New(file, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
}

// LogInfo ghi một dòng đối soát
func LogInfo(format string, v ...interface{}) {
	infoLogger.Printf(format, v...)
}

// LogError ghi một dòng lỗi đối soát
func LogError(format string, v ...interface{}) {
	errorLogger.Printf(format, v...)
}
