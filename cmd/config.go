package cmd

import "time"

// Config carries the environment settings the application starts with.
type Config struct {
	HTTPPort        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSslMode       string
	CardDeclineRate float64
	CartTTL         time.Duration
}
