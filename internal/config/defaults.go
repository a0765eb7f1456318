package config

import "time"

const (
	defaultTokenIssuer         = "what-to-cook"
	defaultTokenDuration       = 5 * time.Hour
	defaultPasswordHashCost    = 10
	defaultRecipeImagesBaseURL = "http://localhost:8080/recipe_images"

	defaultMaxOpenConns    = 10
	defaultMaxIdleConns    = 4
	defaultConnMaxLifetime = 30 * time.Minute

	defaultProfilePicturesDir = "uploads"

	defaultHTTPAddress     = "localhost:8080"
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultMaxUploadSize   = 10 << 20

	defaultLogLevel = "debug"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:         defaultTokenIssuer,
			TokenDuration:       defaultTokenDuration,
			PasswordHashCost:    defaultPasswordHashCost,
			RecipeImagesBaseURL: defaultRecipeImagesBaseURL,
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns:    defaultMaxOpenConns,
				MaxIdleConns:    defaultMaxIdleConns,
				ConnMaxLifetime: defaultConnMaxLifetime,
			},
			Files: Files{
				ProfilePicturesDir: defaultProfilePicturesDir,
			},
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			RequestTimeout:  defaultRequestTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
			MaxUploadSize:   defaultMaxUploadSize,
		},
		Log: Log{
			Level: defaultLogLevel,
		},
	}
}
