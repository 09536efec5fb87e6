package config

import "os"

func LogLevel() string {
	return os.Getenv("LOG_LEVEL")
}

func LogFile() string {
	return os.Getenv("LOG_FILE")
}
