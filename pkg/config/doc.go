// Package config loads typed configuration structs from environment
// variables (github.com/caarlos0/env/v11), optionally seeded from dotenv
// files (github.com/joho/godotenv). Each struct type is parsed once and
// cached; structs implementing Validator are validated before caching.
package config
