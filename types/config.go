package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose     bool              `mapstructure:"verbose"`
	Config      string            `mapstructure:"config"`
	Project     ProjectConfig     `mapstructure:"project" validate:"required"`
	Data        DataConfig        `mapstructure:"data" validate:"required"`
	Recommender RecommenderConfig `mapstructure:"recommender" validate:"omitempty"`
}

// ProjectConfig holds project-related settings
type ProjectConfig struct {
	RootDir string `mapstructure:"rootDir" validate:"required"`
	// ExportDir is where session exports are written, relative to RootDir
	// unless absolute.
	ExportDir string `mapstructure:"exportDir" validate:"required"`
}

// DataConfig holds snapshot storage configuration
type DataConfig struct {
	File   string `mapstructure:"file" validate:"required"`
	Format string `mapstructure:"format" validate:"required,oneof=json yaml"`
}

// RecommenderConfig holds configuration for the recommendation service
type RecommenderConfig struct {
	// URL is the service base URL; empty disables recommendation calls.
	URL string `mapstructure:"url" validate:"omitempty,url"`
	// RequestTimeoutSeconds controls the HTTP client timeout for service calls
	RequestTimeoutSeconds int `mapstructure:"requestTimeoutSeconds" validate:"omitempty,min=1,max=600"`
}
