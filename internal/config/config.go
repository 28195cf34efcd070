package config

// Config holds service-level settings read from the environment.
type Config struct {
	MongoURI  string
	RedisAddr string
	HTTPPort  string
}

// Load reads the service configuration with local defaults.
func Load() *Config {
	return &Config{
		MongoURI:  getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		RedisAddr: getEnvOrDefault("REDIS_URI", "localhost:6379"),
		HTTPPort:  getEnvOrDefault("PORT", "8080"),
	}
}
