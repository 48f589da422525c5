package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"ENV" default:"development"`

	// Database settings
	DBConnectionString string `envconfig:"DB_CONNECTION_STRING" required:"true"`
	DBMaxOpenConns     int    `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	RunMigrations      bool   `envconfig:"RUN_MIGRATIONS" default:"true"`

	// Error reporting
	EnableGlobalErrorLogging bool `envconfig:"ENABLE_GLOBAL_ERROR_LOGGING" default:"false"`

	// Authentication settings
	BcryptCost int    `envconfig:"BCRYPT_COST" default:"10"`
	AuthRealm  string `envconfig:"AUTH_REALM" default:"Course Catalog"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	// Course event publishing; disabled when GCPProjectID is empty
	GCPProjectID            string `envconfig:"GCP_PROJECT_ID"`
	PubSubCourseEventsTopic string `envconfig:"PUBSUB_COURSE_EVENTS_TOPIC" default:"course-events"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsDevelopment reports whether the service runs in local development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// EventsEnabled reports whether course events should be published to Pub/Sub.
func (c *Config) EventsEnabled() bool {
	return c.GCPProjectID != ""
}
