package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	APIConfig   *APIConfig   `json:"api-server"`
	DBConfig    *DBConfig    `json:"database"`
	RttlConfig  *RttlConfig  `json:"rttl"`
	SWSConfig   *SWSConfig   `json:"sws"`
	RedisConfig *RedisConfig `json:"redis"`
}

// Snake-Case JSON Fields Ignored by UnmarshalKey(), so we write our unmarsh function
// https://github.com/spf13/viper/issues/125
func UnmarshConfig(v *viper.Viper) (*Config, error) {

	// the RTTL API key is deploy-time secret material, the environment may
	// supply it instead of the config file
	v.SetDefault("rttl.key", "")
	if err := v.BindEnv("rttl.key", "RTTL_API_KEY"); err != nil {
		return nil, err
	}

	apiconfig := APIConfig{}
	err := v.UnmarshalKey("api-server", &apiconfig)
	if err != nil {
		return nil, err
	}

	dbconfig := DBConfig{}
	err = v.UnmarshalKey("database", &dbconfig)
	if err != nil {
		return nil, err
	}

	rttlconfig := RttlConfig{}
	err = v.UnmarshalKey("rttl", &rttlconfig)
	if err != nil {
		return nil, err
	}
	if rttlconfig.Key == "" {
		rttlconfig.Key = v.GetString("rttl.key")
	}

	swsconfig := SWSConfig{}
	err = v.UnmarshalKey("sws", &swsconfig)
	if err != nil {
		return nil, err
	}

	redisConfig := RedisConfig{}
	err = v.UnmarshalKey("redis", &redisConfig)
	if err != nil {
		return nil, err
	}

	config := Config{
		APIConfig:   &apiconfig,
		DBConfig:    &dbconfig,
		RttlConfig:  &rttlconfig,
		SWSConfig:   &swsconfig,
		RedisConfig: &redisConfig,
	}
	return &config, nil
}

type APIConfig struct {
	Port int `json:"port"`
}

type DBConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	Database string `json:"database"`
}

// RttlConfig is the client-side configuration for the remote RTTL REST
// service. Key must be present or the client constructor fails.
// RequestTimeout and CacheTimeout are in seconds; zero values take the
// defaults and a negative CacheTimeout disables response caching.
type RttlConfig struct {
	Url            string `json:"url"`
	Version        string `json:"version"`
	Key            string `json:"key"`
	CaBundle       string `json:"caBundle"`
	RequestTimeout int    `json:"requestTimeout"`
	CacheTimeout   int    `json:"cacheTimeout"`
}

type SWSConfig struct {
	Enable bool   `json:"enable"`
	Url    string `json:"url"`
}

type RedisConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}
