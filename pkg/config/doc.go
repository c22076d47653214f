// Package config loads environment-based configuration structs for prefskit
// backends.
//
// It combines godotenv (optional .env file for development) with
// caarlos0/env struct tag parsing, and caches each configuration type so
// repeated loads across packages are cheap and consistent.
//
// # Usage
//
//	var cfg kvredis.Config
//	config.MustLoad(&cfg)
//
//	store, err := kvredis.Connect(ctx, cfg)
package config
