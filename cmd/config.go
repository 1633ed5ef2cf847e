package cmd

// Config carries process configuration resolved from the environment and
// command-line flags.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
}
