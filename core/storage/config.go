package storage

// Config holds the object storage connection settings.
type Config struct {
	Endpoint       string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey      string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey      string `mapstructure:"secret_key" default:"minioadmin"`
	UseSSL         bool   `mapstructure:"use_ssl" default:"false"`
	// Bucket holds catalog sources and, with the storage marks backend, the marks document.
	Bucket         string `mapstructure:"bucket" default:"catalog"`
	Region         string `mapstructure:"region" default:""`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" default:"30"`
}
