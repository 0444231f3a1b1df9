// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".roomtree.yaml"

type DataConfig struct {
	File         string `yaml:"file"`
	Verbose      bool   `yaml:"verbose"`
	ShowProgress bool   `yaml:"show_progress"`
}

type TreeConfig struct {
	MaxNodes int `yaml:"max_nodes"` // 0 means no limit
}

type SearchConfig struct {
	BloomSize   uint `yaml:"bloom_size"`
	BloomHashes uint `yaml:"bloom_hashes"`
}

type BrowseConfig struct {
	DetailCacheMinutes int `yaml:"detail_cache_minutes"`
}

type Config struct {
	Data   DataConfig   `yaml:"data"`
	Tree   TreeConfig   `yaml:"tree"`
	Search SearchConfig `yaml:"search"`
	Browse BrowseConfig `yaml:"browse"`
}

var defaultConfig = Config{
	Data: DataConfig{
		File:         "RoomData_50B.csv",
		Verbose:      true,
		ShowProgress: false,
	},
	Tree: TreeConfig{
		MaxNodes: 0,
	},
	Search: SearchConfig{
		BloomSize:   4096,
		BloomHashes: 4,
	},
	Browse: BrowseConfig{
		DetailCacheMinutes: 30,
	},
}

// LoadConfig reads ~/.roomtree.yaml. Any problem with the file falls
// back to the defaults.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaults(), nil
	}
	return loadConfigFrom(configPath)
}

// loadConfigFrom reads the given file over a copy of the defaults, so
// settings missing from the file keep their default values.
func loadConfigFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return defaults(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return defaults(), nil
	}

	config := defaults()
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return defaults(), nil
	}

	return config, nil
}

func defaults() *Config {
	config := defaultConfig
	return &config
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeConfigFile(configPath string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := writeConfigFile(configPath, defaults()); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	fmt.Printf("🔧 Roomtree Configuration Settings\n")
	fmt.Printf("══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("📂 %sRoom data:%s\n", Green, Reset)
	fmt.Printf("  • %sfile%s: %s\n", Green, Reset, config.Data.File)
	fmt.Printf("  • %sverbose%s: %t\n", Green, Reset, config.Data.Verbose)
	fmt.Printf("  • %sshow_progress%s: %t\n\n", Green, Reset, config.Data.ShowProgress)

	fmt.Printf("🌳 %sTree:%s\n", Green, Reset)
	if config.Tree.MaxNodes > 0 {
		fmt.Printf("  • %smax_nodes%s: %d\n\n", Green, Reset, config.Tree.MaxNodes)
	} else {
		fmt.Printf("  • %smax_nodes%s: 0 (unlimited)\n\n", Green, Reset)
	}

	fmt.Printf("🔍 %sSearch:%s\n", Green, Reset)
	fmt.Printf("  • %sbloom_size%s: %d\n", Green, Reset, config.Search.BloomSize)
	fmt.Printf("  • %sbloom_hashes%s: %d\n\n", Green, Reset, config.Search.BloomHashes)

	fmt.Printf("🖥  %sBrowse:%s\n", Green, Reset)
	fmt.Printf("  • %sdetail_cache_minutes%s: %d\n\n", Green, Reset, config.Browse.DetailCacheMinutes)

	fmt.Printf("💡 Edit %s to change these settings, e.g.:\n", configPath)
	fmt.Printf("   data:\n     file: RoomData_50B.csv\n     verbose: false\n\n")
}
