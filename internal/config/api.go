package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/JaimeStill/promptlab/pkg/formatting"
	"github.com/JaimeStill/promptlab/pkg/middleware"
	"github.com/JaimeStill/promptlab/pkg/openapi"
)

const (
	EnvAPIMaxBodySize   = "PROMPTLAB_API_MAX_BODY_SIZE"
	EnvAPIStrictContent = "PROMPTLAB_API_STRICT_CONTENT"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "PROMPTLAB_CORS_ENABLED",
	Origins:          "PROMPTLAB_CORS_ORIGINS",
	AllowedMethods:   "PROMPTLAB_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "PROMPTLAB_CORS_ALLOWED_HEADERS",
	AllowCredentials: "PROMPTLAB_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "PROMPTLAB_CORS_MAX_AGE",
}

var openapiEnv = &openapi.ConfigEnv{
	Title:       "PROMPTLAB_OPENAPI_TITLE",
	Description: "PROMPTLAB_OPENAPI_DESCRIPTION",
}

// APIConfig holds request handling, CORS, and API documentation settings.
type APIConfig struct {
	MaxBodySize   string                `toml:"max_body_size"`
	StrictContent bool                  `toml:"strict_content"`
	CORS          middleware.CORSConfig `toml:"cors"`
	OpenAPI       openapi.Config        `toml:"openapi"`
}

// MaxBodySizeBytes returns MaxBodySize in bytes. Finalize guarantees it parses.
func (c *APIConfig) MaxBodySizeBytes() int64 {
	size, _ := formatting.ParseBytes(c.MaxBodySize)
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested CORS and OpenAPI configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.OpenAPI.Finalize(openapiEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
// StrictContent can only be switched on by an overlay.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.MaxBodySize != "" {
		c.MaxBodySize = overlay.MaxBodySize
	}
	if overlay.StrictContent {
		c.StrictContent = true
	}

	c.CORS.Merge(&overlay.CORS)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}

func (c *APIConfig) loadDefaults() {
	if c.MaxBodySize == "" {
		c.MaxBodySize = "1MB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv(EnvAPIMaxBodySize); v != "" {
		c.MaxBodySize = v
	}
	if v := os.Getenv(EnvAPIStrictContent); v != "" {
		if strict, err := strconv.ParseBool(v); err == nil {
			c.StrictContent = strict
		}
	}
}

func (c *APIConfig) validate() error {
	size, err := formatting.ParseBytes(c.MaxBodySize)
	if err != nil {
		return fmt.Errorf("invalid max_body_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("invalid max_body_size: must be positive, got %s", c.MaxBodySize)
	}
	return nil
}
