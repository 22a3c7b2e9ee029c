// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Version          string `json:"version"`
		DocumentationURL string `json:"documentation_url"`
	} `json:"app,omitempty"`

	Server struct {
		Host            string   `json:"host"`
		Port            int      `json:"port"`
		TrustProxy      bool     `json:"trust_proxy"`
		BodyLimit       int64    `json:"body_limit"`
		ReadTimeout     Duration `json:"read_timeout"`
		WriteTimeout    Duration `json:"write_timeout"`
		IdleTimeout     Duration `json:"idle_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Admin struct {
		Address string `json:"address"`
	} `json:"admin,omitempty"`

	Storage struct {
		DB struct {
			URI            string   `json:"uri"`
			MaxPoolSize    int      `json:"max_pool_size"`
			ConnectTimeout Duration `json:"connect_timeout"`
			StartupMode    string   `json:"startup_mode"`
			RetryBase      Duration `json:"retry_base"`
			RetryMax       Duration `json:"retry_max"`
			StartupTimeout Duration `json:"startup_timeout"`
			PingInterval   Duration `json:"ping_interval"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	RateLimit struct {
		Window          Duration `json:"window"`
		Max             int      `json:"max"`
		Store           string   `json:"store"`
		RedisURL        string   `json:"redis_url"`
		KeyPrefix       string   `json:"key_prefix"`
		CleanupInterval Duration `json:"cleanup_interval"`
	} `json:"rate_limit,omitempty"`

	CORS struct {
		AllowedOrigins   []string `json:"allowed_origins"`
		AllowedMethods   []string `json:"allowed_methods"`
		AllowedHeaders   []string `json:"allowed_headers"`
		ExposedHeaders   []string `json:"exposed_headers"`
		AllowCredentials bool     `json:"allow_credentials"`
		MaxAge           int      `json:"max_age"`
	} `json:"cors,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
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
			Version:          jsonCfg.App.Version,
			DocumentationURL: jsonCfg.App.DocumentationURL,
		},
		Server: Server{
			Host:            jsonCfg.Server.Host,
			Port:            jsonCfg.Server.Port,
			TrustProxy:      jsonCfg.Server.TrustProxy,
			BodyLimit:       jsonCfg.Server.BodyLimit,
			ReadTimeout:     time.Duration(jsonCfg.Server.ReadTimeout),
			WriteTimeout:    time.Duration(jsonCfg.Server.WriteTimeout),
			IdleTimeout:     time.Duration(jsonCfg.Server.IdleTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Admin: Admin{
			Address: jsonCfg.Admin.Address,
		},
		Storage: Storage{
			DB: DB{
				URI:            jsonCfg.Storage.DB.URI,
				MaxPoolSize:    jsonCfg.Storage.DB.MaxPoolSize,
				ConnectTimeout: time.Duration(jsonCfg.Storage.DB.ConnectTimeout),
				StartupMode:    jsonCfg.Storage.DB.StartupMode,
				RetryBase:      time.Duration(jsonCfg.Storage.DB.RetryBase),
				RetryMax:       time.Duration(jsonCfg.Storage.DB.RetryMax),
				StartupTimeout: time.Duration(jsonCfg.Storage.DB.StartupTimeout),
				PingInterval:   time.Duration(jsonCfg.Storage.DB.PingInterval),
			},
		},
		RateLimit: RateLimit{
			Window:          time.Duration(jsonCfg.RateLimit.Window),
			Max:             jsonCfg.RateLimit.Max,
			Store:           jsonCfg.RateLimit.Store,
			RedisURL:        jsonCfg.RateLimit.RedisURL,
			KeyPrefix:       jsonCfg.RateLimit.KeyPrefix,
			CleanupInterval: time.Duration(jsonCfg.RateLimit.CleanupInterval),
		},
		CORS: CORS{
			AllowedOrigins:   jsonCfg.CORS.AllowedOrigins,
			AllowedMethods:   jsonCfg.CORS.AllowedMethods,
			AllowedHeaders:   jsonCfg.CORS.AllowedHeaders,
			ExposedHeaders:   jsonCfg.CORS.ExposedHeaders,
			AllowCredentials: jsonCfg.CORS.AllowCredentials,
			MaxAge:           jsonCfg.CORS.MaxAge,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
