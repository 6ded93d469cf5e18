package cmd

// Config carries everything the process needs to boot, loaded from the
// environment by cmd/app.
type Config struct {
	HTTPPort      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSslMode     string
	RedisAddr     string
	RedisPassword string
	SMTPHost      string
	SMTPPort      string
	SMTPFrom      string
	SweepSchedule string
}
