// Package config loads env-tagged structs with caarlos0/env after reading an
// optional .env file with godotenv.
//
// Each package that needs settings declares its own struct (web.Config with
// APP_*, httpserver.Config with HTTP_*, redis.Config with REDIS_*) and loads
// it at startup with Load or MustLoad. Results are cached per type, so every
// caller sees the same values for the lifetime of the process.
package config
