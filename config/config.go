// Copyright 2020 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/juju/errors"
	"github.com/spf13/viper"
)

// Config is the configuration for the recommendation engine.
type Config struct {
	Recommend RecommendConfig `mapstructure:"recommend"`
	Feature   FeatureConfig   `mapstructure:"feature"`
	Prepare   PrepareConfig   `mapstructure:"prepare"`
}

type RecommendConfig struct {
	// NumNeighbors is the number of similar users used by collaborative filtering.
	NumNeighbors int `mapstructure:"num_neighbors" validate:"gt=0"`
	// ContentExtra is added to k when taking similar items of each seed.
	ContentExtra int `mapstructure:"content_extra" validate:"gte=0"`
	// ItemFilter is an optional boolean expression over `item`.
	ItemFilter string `mapstructure:"item_filter"`
}

type FeatureConfig struct {
	MaxFeatures int `mapstructure:"max_features" validate:"gt=0"`
}

type PrepareConfig struct {
	NumJobs int `mapstructure:"num_jobs" validate:"gt=0"`
}

func GetDefaultConfig() *Config {
	return &Config{
		Recommend: RecommendConfig{
			NumNeighbors: 10,
			ContentExtra: 5,
		},
		Feature: FeatureConfig{
			MaxFeatures: 5000,
		},
		Prepare: PrepareConfig{
			NumJobs: 1,
		},
	}
}

func setDefault() {
	defaultConfig := GetDefaultConfig()
	// [recommend]
	viper.SetDefault("recommend.num_neighbors", defaultConfig.Recommend.NumNeighbors)
	viper.SetDefault("recommend.content_extra", defaultConfig.Recommend.ContentExtra)
	viper.SetDefault("recommend.item_filter", defaultConfig.Recommend.ItemFilter)
	// [feature]
	viper.SetDefault("feature.max_features", defaultConfig.Feature.MaxFeatures)
	// [prepare]
	viper.SetDefault("prepare.num_jobs", defaultConfig.Prepare.NumJobs)
}

type configBinding struct {
	key string
	env string
}

// LoadConfig loads configuration from toml file. Environment variables
// override values in the file. An empty path loads defaults only.
func LoadConfig(path string) (*Config, error) {
	// set default config
	setDefault()

	// bind environment bindings
	bindings := []configBinding{
		{"recommend.num_neighbors", "MOVIEREC_NUM_NEIGHBORS"},
		{"recommend.content_extra", "MOVIEREC_CONTENT_EXTRA"},
		{"recommend.item_filter", "MOVIEREC_ITEM_FILTER"},
		{"feature.max_features", "MOVIEREC_MAX_FEATURES"},
		{"prepare.num_jobs", "MOVIEREC_PREPARE_JOBS"},
	}
	for _, binding := range bindings {
		err := viper.BindEnv(binding.key, binding.env)
		if err != nil {
			return nil, errors.Trace(err)
		}
	}

	// load config file
	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return nil, errors.Trace(err)
		}
	}

	// unmarshal config file
	var conf Config
	if err := viper.Unmarshal(&conf); err != nil {
		return nil, errors.Trace(err)
	}
	if err := conf.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return &conf, nil
}

func (config *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(config); err != nil {
		return errors.NotValidf("config: %v", strings.TrimSpace(err.Error()))
	}
	return nil
}
