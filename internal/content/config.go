package content

// Config holds generation limits for the content service.
type Config struct {
	// MaxTokens caps the response size per request.
	MaxTokens int

	// Temperature controls generation randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// DefaultConfig returns generation limits suited for study material.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   8192,
		Temperature: 0.7,
	}
}
