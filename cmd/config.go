package cmd

import "time"

// Config carries the environment settings of the service.
type Config struct {
	HTTPPort     string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSslMode    string
	OrderTimeout time.Duration
}
