package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON names and
// string durations.
type StructuredJSONConfig struct {
	App struct {
		SecretKey          string   `json:"secret_key"`
		TokenIssuer        string   `json:"token_issuer"`
		SessionDuration    Duration `json:"session_duration"`
		RememberDuration   Duration `json:"remember_duration"`
		ResetTokenDuration Duration `json:"reset_token_duration"`
		PageSize           int      `json:"page_size"`
		BcryptCost         int      `json:"bcrypt_cost"`
		BaseURL            string   `json:"base_url"`
		Version            string   `json:"version"`
		LogLevel           string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`

		Avatars struct {
			Backend   string `json:"backend"`
			Dir       string `json:"dir"`
			URLPrefix string `json:"url_prefix"`
			S3        S3     `json:"s3"`
		} `json:"avatars,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		SecureCookies  bool     `json:"secure_cookies"`
	} `json:"server,omitempty"`

	Mail struct {
		Host     string `json:"host"`
		Port     int    `json:"port"`
		Username string `json:"username"`
		Password string `json:"password"`
		From     string `json:"from"`
	} `json:"mail,omitempty"`
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
			SecretKey:          jsonCfg.App.SecretKey,
			TokenIssuer:        jsonCfg.App.TokenIssuer,
			SessionDuration:    time.Duration(jsonCfg.App.SessionDuration),
			RememberDuration:   time.Duration(jsonCfg.App.RememberDuration),
			ResetTokenDuration: time.Duration(jsonCfg.App.ResetTokenDuration),
			PageSize:           jsonCfg.App.PageSize,
			BcryptCost:         jsonCfg.App.BcryptCost,
			BaseURL:            jsonCfg.App.BaseURL,
			Version:            jsonCfg.App.Version,
			LogLevel:           jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
			Avatars: Avatars{
				Backend:   jsonCfg.Storage.Avatars.Backend,
				Dir:       jsonCfg.Storage.Avatars.Dir,
				URLPrefix: jsonCfg.Storage.Avatars.URLPrefix,
				S3:        jsonCfg.Storage.Avatars.S3,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			SecureCookies:  jsonCfg.Server.SecureCookies,
		},
		Mail: Mail{
			Host:     jsonCfg.Mail.Host,
			Port:     jsonCfg.Mail.Port,
			Username: jsonCfg.Mail.Username,
			Password: jsonCfg.Mail.Password,
			From:     jsonCfg.Mail.From,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
