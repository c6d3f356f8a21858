package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations, so operators can keep the whole configuration in
// a single file.
type StructuredJSONConfig struct {
	Auth struct {
		TokenSignKey  string   `json:"secret_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Scraper struct {
		ResultsSelector string   `json:"results_selector"`
		UserAgent       string   `json:"user_agent"`
		RequestTimeout  Duration `json:"request_timeout"`
	} `json:"scraper,omitempty"`

	Geocoder struct {
		BaseURL        string   `json:"base_url"`
		UserAgent      string   `json:"user_agent"`
		CountryCodes   string   `json:"country_codes"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"geocoder,omitempty"`

	Expert struct {
		BaseURL        string   `json:"base_url"`
		APIKey         string   `json:"api_key"`
		Model          string   `json:"model"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"expert,omitempty"`
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
		Auth: Auth{
			TokenSignKey:  jsonCfg.Auth.TokenSignKey,
			TokenIssuer:   jsonCfg.Auth.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.Auth.TokenDuration),
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Scraper: Scraper{
			ResultsSelector: jsonCfg.Scraper.ResultsSelector,
			UserAgent:       jsonCfg.Scraper.UserAgent,
			RequestTimeout:  time.Duration(jsonCfg.Scraper.RequestTimeout),
		},
		Geocoder: Geocoder{
			BaseURL:        jsonCfg.Geocoder.BaseURL,
			UserAgent:      jsonCfg.Geocoder.UserAgent,
			CountryCodes:   jsonCfg.Geocoder.CountryCodes,
			RequestTimeout: time.Duration(jsonCfg.Geocoder.RequestTimeout),
		},
		Expert: Expert{
			BaseURL:        jsonCfg.Expert.BaseURL,
			APIKey:         jsonCfg.Expert.APIKey,
			Model:          jsonCfg.Expert.Model,
			RequestTimeout: time.Duration(jsonCfg.Expert.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "24h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
