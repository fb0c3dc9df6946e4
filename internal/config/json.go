package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case JSON keys
// and string durations ("30s", "1m").
type StructuredJSONConfig struct {
	App struct {
		Name      string `json:"name"`
		Profile   string `json:"profile"`
		Version   string `json:"version"`
		DebugMode bool   `json:"debug_mode"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Dispatcher struct {
		ConnectTimeout      Duration `json:"connect_timeout"`
		RequestTimeout      Duration `json:"request_timeout"`
		MaxIdleConns        int      `json:"max_idle_conns"`
		MaxIdleConnsPerHost int      `json:"max_idle_conns_per_host"`
		IdleConnTimeout     Duration `json:"idle_conn_timeout"`
	} `json:"dispatcher,omitempty"`

	Lalamove struct {
		Hostname  string `json:"hostname"`
		BaseURL   string `json:"base_url"`
		AppKey    string `json:"app_key"`
		AppSecret string `json:"app_secret"`
		Market    string `json:"market"`
	} `json:"lalamove,omitempty"`

	ExternalAPI struct {
		BaseURL   string `json:"base_url"`
		APIKey    string `json:"api_key"`
		UserAgent string `json:"user_agent"`
	} `json:"external_api,omitempty"`

	Security struct {
		Enabled       bool     `json:"enabled"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"security,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Name:      jsonCfg.App.Name,
			Profile:   jsonCfg.App.Profile,
			Version:   jsonCfg.App.Version,
			DebugMode: jsonCfg.App.DebugMode,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Dispatcher: Dispatcher{
			ConnectTimeout:      time.Duration(jsonCfg.Dispatcher.ConnectTimeout),
			RequestTimeout:      time.Duration(jsonCfg.Dispatcher.RequestTimeout),
			MaxIdleConns:        jsonCfg.Dispatcher.MaxIdleConns,
			MaxIdleConnsPerHost: jsonCfg.Dispatcher.MaxIdleConnsPerHost,
			IdleConnTimeout:     time.Duration(jsonCfg.Dispatcher.IdleConnTimeout),
		},
		Lalamove: Lalamove{
			Hostname:  jsonCfg.Lalamove.Hostname,
			BaseURL:   jsonCfg.Lalamove.BaseURL,
			AppKey:    jsonCfg.Lalamove.AppKey,
			AppSecret: jsonCfg.Lalamove.AppSecret,
			Market:    jsonCfg.Lalamove.Market,
		},
		ExternalAPI: ExternalAPI{
			BaseURL:   jsonCfg.ExternalAPI.BaseURL,
			APIKey:    jsonCfg.ExternalAPI.APIKey,
			UserAgent: jsonCfg.ExternalAPI.UserAgent,
		},
		Security: Security{
			Enabled:       jsonCfg.Security.Enabled,
			TokenSignKey:  jsonCfg.Security.TokenSignKey,
			TokenIssuer:   jsonCfg.Security.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.Security.TokenDuration),
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
