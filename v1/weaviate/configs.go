package weaviate

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"
	"gopkg.in/yaml.v3"

	"github.com/Aleph-Alpha/weaviate-std/v1/observability"
	"github.com/Aleph-Alpha/weaviate-std/v1/weaviate/transport"
)

const (
	DefaultScheme           = "http"
	DefaultHost             = "localhost:8080"
	DefaultTimeout          = 30 * time.Second
	DefaultBatchSize        = 100
	DefaultBatchConcurrency = 4
)

// Config holds connection and behavior settings for the Weaviate client.
//
// Example (builder style):
//
//	cfg := weaviate.DefaultConfig().
//	    WithAPIKey(os.Getenv("WEAVIATE_API_KEY")).
//	    WithTimeout(10 * time.Second)
type Config struct {
	// Scheme is "http" or "https".
	Scheme string `yaml:"scheme" env:"WEAVIATE_SCHEME"`

	// Host is the server host, optionally with port, e.g. "localhost:8080".
	Host string `yaml:"host" env:"WEAVIATE_HOST"`

	// Port is appended to Host when non-zero.
	Port int `yaml:"port" env:"WEAVIATE_PORT"`

	// APIKey is sent as a bearer token.
	APIKey string `yaml:"api_key" env:"WEAVIATE_API_KEY"`

	Username string `yaml:"username" env:"WEAVIATE_USERNAME"`
	Password string `yaml:"password" env:"WEAVIATE_PASSWORD"`

	// AccessToken is an OIDC token, sent as a bearer token when no APIKey is set.
	AccessToken string `yaml:"access_token" env:"WEAVIATE_ACCESS_TOKEN"`

	// Headers are sent verbatim with every request, e.g. X-OpenAI-Api-Key.
	Headers map[string]string `yaml:"headers"`

	Timeout time.Duration `yaml:"timeout" env:"WEAVIATE_TIMEOUT"`

	// SkipVersionCheck disables the server version check on startup.
	SkipVersionCheck bool `yaml:"skip_version_check" env:"WEAVIATE_SKIP_VERSION_CHECK"`

	// Debug logs request and response bodies.
	Debug bool `yaml:"debug" env:"WEAVIATE_DEBUG"`

	// BatchSize and BatchConcurrency drive Batch.CreateObjectsChunked.
	BatchSize        int `yaml:"batch_size" env:"WEAVIATE_BATCH_SIZE"`
	BatchConcurrency int `yaml:"batch_concurrency" env:"WEAVIATE_BATCH_CONCURRENCY"`

	Logger         Logger                 `yaml:"-"`
	Observer       observability.Observer `yaml:"-"`
	TracerProvider trace.TracerProvider   `yaml:"-"`
	Doer           transport.HTTPDoer     `yaml:"-"`
}

// DefaultConfig provides sensible defaults for a local server.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// FromHost returns a default config pointing at host.
func FromHost(scheme, host string) *Config {
	cfg := DefaultConfig()
	cfg.Scheme = scheme
	cfg.Host = host
	return cfg
}

// WithAPIKey authenticates with an API key sent as a bearer token.
func (c *Config) WithAPIKey(key string) *Config {
	c.APIKey = key
	return c
}

// WithBasicAuth authenticates with username and password.
func (c *Config) WithBasicAuth(username, password string) *Config {
	c.Username = username
	c.Password = password
	return c
}

// WithAccessToken authenticates with an OIDC access token.
func (c *Config) WithAccessToken(token string) *Config {
	c.AccessToken = token
	return c
}

// WithHeader adds a header sent with every request.
func (c *Config) WithHeader(key, value string) *Config {
	if c.Headers == nil {
		c.Headers = make(map[string]string)
	}
	c.Headers[key] = value
	return c
}

// WithTimeout sets the per-request timeout.
func (c *Config) WithTimeout(d time.Duration) *Config {
	c.Timeout = d
	return c
}

// WithObserver sets the observer notified for every request and query.
func (c *Config) WithObserver(o observability.Observer) *Config {
	c.Observer = o
	return c
}

// WithLogger sets the logger used by the client and its transport.
func (c *Config) WithLogger(l Logger) *Config {
	c.Logger = l
	return c
}

// BaseURL renders scheme://host[:port].
func (c *Config) BaseURL() string {
	host := strings.TrimRight(c.Host, "/")
	if c.Port != 0 {
		host += ":" + strconv.Itoa(c.Port)
	}
	return c.Scheme + "://" + host
}

// Validate checks the config for values the client cannot work with.
func (c *Config) Validate() error {
	switch c.Scheme {
	case "http", "https":
	default:
		return fmt.Errorf("%w: scheme must be http or https, got %q", ErrInvalidConfig, c.Scheme)
	}
	if strings.TrimSpace(c.Host) == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidConfig)
	}
	if strings.Contains(c.Host, "://") {
		return fmt.Errorf("%w: host must not contain a scheme", ErrInvalidConfig)
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Port)
	}
	if (c.Username == "") != (c.Password == "") {
		return fmt.Errorf("%w: username and password must be set together", ErrInvalidConfig)
	}
	if c.BatchSize < 0 || c.BatchConcurrency < 0 {
		return fmt.Errorf("%w: batch size and concurrency must not be negative", ErrInvalidConfig)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Scheme == "" {
		c.Scheme = DefaultScheme
	}
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.BatchSize == 0 {
		c.BatchSize = DefaultBatchSize
	}
	if c.BatchConcurrency == 0 {
		c.BatchConcurrency = DefaultBatchConcurrency
	}
}

// authHeaders builds the headers sent with every request.
func (c *Config) authHeaders() http.Header {
	h := make(http.Header)
	for k, v := range c.Headers {
		h.Set(k, v)
	}
	switch {
	case c.APIKey != "":
		h.Set("Authorization", "Bearer "+c.APIKey)
	case c.AccessToken != "":
		h.Set("Authorization", "Bearer "+c.AccessToken)
	case c.Username != "":
		creds := base64.StdEncoding.EncodeToString([]byte(c.Username + ":" + c.Password))
		h.Set("Authorization", "Basic "+creds)
	}
	return h
}

// LoadConfig reads a YAML config file, expanding ${VAR} references from the
// environment, and applies defaults before validating.
//
//	# weaviate.yaml
//	scheme: https
//	host: my-cluster.weaviate.network
//	api_key: ${WEAVIATE_API_KEY}
//	timeout: 10s
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read weaviate config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(raw))), &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
