package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Core
	DatabaseURL string `env:"DATABASE_URL,required"`
	Port        int    `env:"PORT" envDefault:"8080"`

	// Auth
	JWTSecret       string `env:"JWT_SECRET,required"`
	TokenTTLMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES" envDefault:"120"`

	// Generation collaborator (OpenAI-compatible)
	OpenRouterKey     string `env:"OPENROUTER_API_KEY,required"`
	OpenRouterModel   string `env:"OPENROUTER_MODEL" envDefault:"openai/gpt-4o-mini"`
	OpenRouterBaseURL string `env:"OPENROUTER_BASE_URL" envDefault:"https://openrouter.ai/api/v1"`

	// Vector index (Pinecone-compatible)
	PineconeAPIKey    string `env:"PINECONE_API_KEY,required"`
	PineconeIndexHost string `env:"PINECONE_INDEX_HOST,required"`
	PineconeEmbedURL  string `env:"PINECONE_EMBED_URL" envDefault:"https://api.pinecone.io/embed"`
	EmbedModel        string `env:"PINECONE_EMBED_MODEL" envDefault:"llama-text-embed-v2"`
	GlobalNamespace   string `env:"PINECONE_NAMESPACE" envDefault:"global-medical"`

	// Uploads and corpus
	UploadDir string `env:"UPLOAD_DIR" envDefault:"uploads"`
	DataDir   string `env:"DATA_DIR" envDefault:"data/medical_pdfs"`

	// ML classifier artifacts
	MLModelPath   string `env:"ML_MODEL_PATH" envDefault:"ml_assets/disease_model.json"`
	MLMetricsPath string `env:"ML_METRICS_PATH" envDefault:"ml_assets/outputs/metrics.json"`

	// CORS
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	// Telegram ops alerts (disabled when chat id is 0)
	AlertBotToken string `env:"ALERT_BOT_TOKEN"`
	AlertChatID   int64  `env:"ALERT_CHAT_ID"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
