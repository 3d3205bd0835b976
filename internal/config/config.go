package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Address string `mapstructure:"address"`
	} `mapstructure:"server"`

	Sources struct {
		NewsAPIKey          string `mapstructure:"news_api_key"`
		RedditClientID      string `mapstructure:"reddit_client_id"`
		RedditClientSecret  string `mapstructure:"reddit_client_secret"`
		GitHubToken         string `mapstructure:"github_token"`
		TwitterAPIKey       string `mapstructure:"twitter_api_key"`
		LinkedInAPIKey      string `mapstructure:"linkedin_api_key"`
		StackOverflowAPIKey string `mapstructure:"stack_overflow_api_key"`
	} `mapstructure:"sources"`

	AI struct {
		OpenAIAPIKey string `mapstructure:"openai_api_key"`
		OpenAIModel  string `mapstructure:"openai_model"`
		GeminiAPIKey string `mapstructure:"gemini_api_key"`
		GeminiModel  string `mapstructure:"gemini_model"`
	} `mapstructure:"ai"`

	Discovery struct {
		Subreddit          string  `mapstructure:"subreddit"`
		Schedule           string  `mapstructure:"schedule"`
		RelevanceThreshold float64 `mapstructure:"relevance_threshold"`
		QualityThreshold   float64 `mapstructure:"quality_threshold"`
		Scorer             string  `mapstructure:"scorer"` // "static" or "heuristic"
	} `mapstructure:"discovery"`

	Generation struct {
		InitialPerType int `mapstructure:"initial_per_type"`
	} `mapstructure:"generation"`

	Cache struct {
		TTL time.Duration `mapstructure:"ttl"`
	} `mapstructure:"cache"`

	Redis struct {
		Address  string `mapstructure:"address"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`

	Worker struct {
		Concurrency int            `mapstructure:"concurrency"`
		Queues      map[string]int `mapstructure:"queues"`
	} `mapstructure:"worker"`
}

func LoadConfig() (*Config, error) {
	// Load .env before viper binds env vars, so keys in the file are visible.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	// Secrets come from the environment, never from config.yaml.
	viper.BindEnv("sources.news_api_key", "NEWS_API_KEY")
	viper.BindEnv("sources.reddit_client_id", "REDDIT_CLIENT_ID")
	viper.BindEnv("sources.reddit_client_secret", "REDDIT_CLIENT_SECRET")
	viper.BindEnv("sources.github_token", "GITHUB_TOKEN")
	viper.BindEnv("sources.twitter_api_key", "TWITTER_API_KEY")
	viper.BindEnv("sources.linkedin_api_key", "LINKEDIN_API_KEY")
	viper.BindEnv("sources.stack_overflow_api_key", "STACK_OVERFLOW_API_KEY")
	viper.BindEnv("ai.openai_api_key", "OPENAI_API_KEY")
	viper.BindEnv("ai.gemini_api_key", "GEMINI_API_KEY")
	viper.BindEnv("redis.address", "REDIS_ADDRESS")

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("discovery.subreddit", "programming")
	viper.SetDefault("discovery.schedule", "@hourly")
	viper.SetDefault("discovery.relevance_threshold", 0.7)
	viper.SetDefault("discovery.quality_threshold", 0.6)
	viper.SetDefault("discovery.scorer", "static")
	viper.SetDefault("generation.initial_per_type", 20)
	viper.SetDefault("cache.ttl", 5*time.Minute)
	viper.SetDefault("worker.concurrency", 10)
	viper.SetDefault("worker.queues", map[string]int{"default": 1})

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file; defaults and env vars carry the day.
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
