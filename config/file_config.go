// Copyright 2019 the feed-contract-go authors
// This file is part of the feed-contract-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"strconv"
	"strings"
	"time"
)

// ForFile loads the default configuration and overrides it with the JSON file
// at the given path. Keys are lower-kebab-case in the file, e.g.
// "virtual-chain-id" or "sandbox-block-interval".
func ForFile(path string) (NodeConfig, error) {
	source, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return newFileConfig(defaultConfig(), string(source))
}

func newFileConfig(parent mutableNodeConfig, source string) (mutableNodeConfig, error) {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(source), &data); err != nil {
		return nil, err
	}

	if err := populateConfig(parent, data); err != nil {
		return nil, err
	}

	return parent, nil
}

func convertKeyName(key string) string {
	return strings.ToUpper(strings.Replace(key, "-", "_", -1))
}

func parseUint32(f64 float64) (uint32, error) {
	s := fmt.Sprintf("%.0f", f64)
	if i, err := strconv.Atoi(s); err == nil {
		return uint32(i), nil
	} else {
		return 0, err
	}
}

func populateConfig(cfg mutableNodeConfig, data map[string]interface{}) error {
	for key, value := range data {
		switch v := value.(type) {
		case float64:
			i, err := parseUint32(v)
			if err != nil {
				return fmt.Errorf("could not decode value for config key %s: %s", key, err)
			}
			cfg.SetUint32(convertKeyName(key), i)
		case string:
			if duration, err := time.ParseDuration(v); err == nil {
				cfg.SetDuration(convertKeyName(key), duration)
			} else {
				cfg.SetString(convertKeyName(key), v)
			}
		default:
			return fmt.Errorf("config key %s has unsupported type %T", key, value)
		}
	}

	return nil
}
