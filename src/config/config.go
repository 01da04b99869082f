package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

var (
	// DefaultDBName is the default name of the database.
	DefaultDBName = "licenses"

	// DefaultDBTestName is the default name of the test database.
	DefaultDBTestName = "licenses_test"

	// DefaultPort is the default port to expose the web server.
	DefaultPort int = 8080

	// Port is the port the web server listens on.
	Port int

	// DBHost is the host machine running the postgres instance.
	DBHost string

	// DBPort is the port that exposes the db server.
	DBPort string

	// DBName is the postgres database name.
	DBName string

	// DBUser is the postgres user account.
	DBUser string

	// DBPassword is the password for the DBUser postgres account.
	DBPassword string

	// DBSSLMode sets the SSL mode of the postgres client.
	DBSSLMode string

	// LogLevel is the level of logging for the application.
	LogLevel string

	// AdminEmails lists the identities granted the admin console.
	AdminEmails []string

	// SendgridAPIKey is for sending license delivery emails. Optional;
	// mail delivery is disabled when empty.
	SendgridAPIKey string

	// EmailName is the sender name on license delivery mail.
	EmailName string

	// EmailFrom is the sender address on license delivery mail.
	EmailFrom string
)

func Init() error {
	DBHost = getEnvWithDefault("LM_DB_HOST", "localhost")
	DBPort = getEnvWithDefault("LM_DB_PORT", "5432")
	DBName = getEnvWithDefault("LM_DB_NAME", DefaultDBName)
	DBUser = getEnvWithDefault("LM_DB_USER", "postgres")
	DBPassword = getEnvWithDefault("LM_DB_PASS", "")
	DBSSLMode = getEnvWithDefault("LM_DB_SSL_MODE", "disable")

	LogLevel = getEnvWithDefault("LM_LOG_LEVEL", strconv.Itoa(int(zerolog.InfoLevel)))

	port, err := strconv.Atoi(getEnvWithDefault("LM_PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return err
	}
	Port = port

	AdminEmails = nil
	for _, email := range strings.Split(os.Getenv("LM_ADMIN_EMAILS"), ",") {
		if email = strings.TrimSpace(email); email != "" {
			AdminEmails = append(AdminEmails, email)
		}
	}

	SendgridAPIKey = os.Getenv("SENDGRID_API_KEY")
	EmailName = getEnvWithDefault("EMAIL_NAME", "License Manager")
	EmailFrom = getEnvWithDefault("EMAIL_FROM", "licenses@example.com")

	return nil
}

func getEnvWithDefault(name string, def string) string {
	res, found := os.LookupEnv(name)
	if !found {
		return def
	}
	return res
}
