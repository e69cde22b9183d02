package main

import (
	"fmt"
	"os"
)

// appConfig is read once from the environment at cold start.
type appConfig struct {
	// LIFF channel used to verify incoming ID tokens.
	LiffChannelID string

	// Messaging API credentials: a long-lived channel access token, or a
	// channel ID/secret pair for issuing short-lived tokens.
	ChannelAccessToken string
	ChannelID          string
	ChannelSecret      string

	// DynamoDB table holding member records.
	TableName string

	// Catalog source: local path or s3://bucket/key; empty uses the
	// embedded default bundle.
	CatalogSource string

	Debug bool
}

func loadConfig() (*appConfig, error) {
	cfg := &appConfig{
		LiffChannelID:      os.Getenv("LIFF_CHANNEL_ID"),
		ChannelAccessToken: os.Getenv("CHANNEL_ACCESS_TOKEN"),
		ChannelID:          os.Getenv("CHANNEL_ID"),
		ChannelSecret:      os.Getenv("CHANNEL_SECRET"),
		TableName:          os.Getenv("USER_INFO_TABLE"),
		CatalogSource:      os.Getenv("CATALOG_FILE"),
		Debug:              os.Getenv("LOGGER_LEVEL") == "DEBUG",
	}

	if cfg.LiffChannelID == "" {
		return nil, fmt.Errorf("LIFF_CHANNEL_ID environment variable must be set")
	}
	if cfg.TableName == "" {
		return nil, fmt.Errorf("USER_INFO_TABLE environment variable must be set")
	}
	if cfg.ChannelAccessToken == "" && (cfg.ChannelID == "" || cfg.ChannelSecret == "") {
		return nil, fmt.Errorf("either CHANNEL_ACCESS_TOKEN or CHANNEL_ID and CHANNEL_SECRET must be set")
	}

	return cfg, nil
}
