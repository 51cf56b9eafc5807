package conf

import "time"

// ServerConfig carries everything the server command needs. Values come
// from the config file, MODELCTX_* env vars, and command-line flags, in
// ascending precedence.
type ServerConfig struct {
	ConfigDir string `mapstructure:"-" json:"-"`

	HTTPAddr string `mapstructure:"http_addr" json:"http_addr"`
	DataDir  string `mapstructure:"data_dir" json:"data_dir"`

	// Sampling backend. An empty API key selects the deterministic
	// mock backend.
	OpenRouterAPIKey  string `mapstructure:"openrouter_api_key" json:"-"`
	OpenRouterBaseURL string `mapstructure:"openrouter_base_url" json:"openrouter_base_url"`
	Model             string `mapstructure:"model" json:"model"`

	// Desktop commander bridge. Empty URL disables the bridge tools.
	CommanderURL     string        `mapstructure:"commander_url" json:"commander_url"`
	CommanderTimeout time.Duration `mapstructure:"commander_timeout" json:"commander_timeout"`
}

func (c *ServerConfig) GetHTTPAddr() string {
	return c.HTTPAddr
}

func (c *ServerConfig) GetModel() string {
	return c.Model
}

// LiveSampling reports whether a live model backend is configured.
func (c *ServerConfig) LiveSampling() bool {
	return c.OpenRouterAPIKey != ""
}

var ServerDefaults = map[string]any{
	"http_addr":           "127.0.0.1:5030",
	"data_dir":            "",
	"openrouter_api_key":  "",
	"openrouter_base_url": "https://openrouter.ai/api/v1",
	"model":               "qwen/qwen3-8b",
	"commander_url":       "",
	"commander_timeout":   30 * time.Second,
}
