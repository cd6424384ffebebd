package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

var (
	// Farklı seviyeler için log kayıtçıları
	InfoLogger    *log.Logger
	WarningLogger *log.Logger
	ErrorLogger   *log.Logger
)

// Setup log yapılandırmasını başlatır
func Setup() error {
	// Log dizinini oluştur
	logDir := "logs"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("log dizini oluşturulamadı: %v", err)
	}

	// Günün tarihiyle log dosyası adı üret
	currentTime := time.Now()
	logFileName := filepath.Join(logDir, fmt.Sprintf("%s.log", currentTime.Format("2006-01-02")))

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("log dosyası açılamadı: %v", err)
	}

	// Hem konsola hem dosyaya yaz
	multiWriter := io.MultiWriter(os.Stdout, logFile)

	InfoLogger = log.New(multiWriter, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	WarningLogger = log.New(multiWriter, "WARNING: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLogger = log.New(multiWriter, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)

	return nil
}

// Info bilgi seviyesinde log yazar
func Info(format string, v ...interface{}) {
	if InfoLogger == nil {
		log.Printf("INFO: "+format, v...)
		return
	}
	InfoLogger.Printf(format, v...)
}

// Warning uyarı seviyesinde log yazar
func Warning(format string, v ...interface{}) {
	if WarningLogger == nil {
		log.Printf("WARNING: "+format, v...)
		return
	}
	WarningLogger.Printf(format, v...)
}

// Error hata seviyesinde log yazar
func Error(format string, v ...interface{}) {
	if ErrorLogger == nil {
		log.Printf("ERROR: "+format, v...)
		return
	}
	ErrorLogger.Printf(format, v...)
}
