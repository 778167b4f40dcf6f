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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/juju/errors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestUnmarshal(t *testing.T) {
	data, err := os.ReadFile("config.toml")
	assert.NoError(t, err)
	text := strings.Replace(string(data), "item_filter = \"\"", "item_filter = \"item.Year >= 1990\"", -1)
	viper.Reset()
	viper.SetConfigType("toml")
	err = viper.ReadConfig(strings.NewReader(text))
	assert.NoError(t, err)
	var config Config
	err = viper.Unmarshal(&config)
	assert.NoError(t, err)

	// [recommend]
	assert.Equal(t, 10, config.Recommend.NumNeighbors)
	assert.Equal(t, 5, config.Recommend.ContentExtra)
	assert.Equal(t, "item.Year >= 1990", config.Recommend.ItemFilter)
	// [feature]
	assert.Equal(t, 5000, config.Feature.MaxFeatures)
	// [prepare]
	assert.Equal(t, 1, config.Prepare.NumJobs)
}

func TestSetDefault(t *testing.T) {
	viper.Reset()
	setDefault()
	viper.SetConfigType("toml")
	err := viper.ReadConfig(strings.NewReader(""))
	assert.NoError(t, err)
	var config Config
	err = viper.Unmarshal(&config)
	assert.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), &config)
}

func TestBindEnv(t *testing.T) {
	viper.Reset()
	t.Setenv("MOVIEREC_NUM_NEIGHBORS", "20")
	t.Setenv("MOVIEREC_PREPARE_JOBS", "4")
	t.Setenv("MOVIEREC_ITEM_FILTER", "item.Rating > 8")

	config, err := LoadConfig("config.toml")
	assert.NoError(t, err)
	assert.Equal(t, 20, config.Recommend.NumNeighbors)
	assert.Equal(t, 4, config.Prepare.NumJobs)
	assert.Equal(t, "item.Rating > 8", config.Recommend.ItemFilter)

	// check default values
	assert.Equal(t, 5, config.Recommend.ContentExtra)
	assert.Equal(t, 5000, config.Feature.MaxFeatures)
}

func TestLoadConfigWithoutFile(t *testing.T) {
	viper.Reset()
	config, err := LoadConfig("")
	assert.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), config)
}

func TestValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	err := os.WriteFile(path, []byte("[recommend]\nnum_neighbors = 0\n"), 0644)
	assert.NoError(t, err)
	viper.Reset()
	_, err = LoadConfig(path)
	assert.True(t, errors.Is(err, errors.NotValid))

	config := GetDefaultConfig()
	config.Prepare.NumJobs = -1
	assert.True(t, errors.Is(config.Validate(), errors.NotValid))
	assert.NoError(t, GetDefaultConfig().Validate())
}
