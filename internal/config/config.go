/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package config loads the demo server configuration from a YAML file, a
// .env file and the process environment, in increasing precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"dirpx.dev/apierrors/apis"
	"dirpx.dev/apierrors/category"
	"dirpx.dev/apierrors/classifier"
	"github.com/joho/godotenv"
	"google.golang.org/grpc/codes"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvConfig      = "APIERRORS_CONFIG"
	EnvAddr        = "APIERRORS_ADDR"
	EnvGRPCAddr    = "APIERRORS_GRPC_ADDR"
	EnvEnvironment = "ENVIRONMENT"
)

// ErrConfigInvalid is returned by Validate.
var ErrConfigInvalid = errors.New("config: invalid configuration")

// Config represents the application configuration
type Config struct {
	Addr           string            `yaml:"addr"`
	GRPCAddr       string            `yaml:"grpc_addr,omitempty"` // empty disables the gRPC listener
	Environment    string            `yaml:"environment"`
	MetricsPath    string            `yaml:"metrics_path"`
	ParameterLabel string            `yaml:"parameter_label,omitempty"`
	Statuses       map[string]int    `yaml:"statuses,omitempty"`   // category -> HTTP status
	GRPCCodes      map[string]string `yaml:"grpc_codes,omitempty"` // category -> gRPC code name, e.g. "FAILED_PRECONDITION"
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Addr:        ":8080",
		Environment: "development",
		MetricsPath: "/metrics",
	}
}

// Load builds the configuration.
//
// A .env file in the working directory is loaded first if present. The YAML
// file at path (or at $APIERRORS_CONFIG when path is empty) is then decoded
// over the defaults, with ${VAR} references expanded. Finally APIERRORS_ADDR,
// APIERRORS_GRPC_ADDR and ENVIRONMENT override the file.
func Load(path string) (*Config, error) {
	// production environments may not have a .env file
	_ = godotenv.Load()

	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := cfg.decode(data); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv(EnvGRPCAddr); v != "" {
		cfg.GRPCAddr = v
	}
	if v := os.Getenv(EnvEnvironment); v != "" {
		cfg.Environment = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	expanded := os.ExpandEnv(string(data))
	dec := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks addresses, paths and every classifier override.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Addr) == "" {
		errs = append(errs, fmt.Errorf("%w: addr is required", ErrConfigInvalid))
	}
	if !strings.HasPrefix(c.MetricsPath, "/") {
		errs = append(errs, fmt.Errorf("%w: metrics_path %q must start with '/'", ErrConfigInvalid, c.MetricsPath))
	}
	if _, err := c.Classifier(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// IsProduction reports whether the environment is "production".
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// ClassifierOptions converts the overrides into classifier options. Category
// names are normalized ("Not-Acceptable" is not_acceptable); gRPC codes are
// given by canonical name.
func (c *Config) ClassifierOptions() ([]classifier.Option, error) {
	var opts []classifier.Option
	for name, status := range c.Statuses {
		cat, err := category.ParseKnown(name)
		if err != nil {
			return nil, fmt.Errorf("%w: statuses: %w", ErrConfigInvalid, err)
		}
		opts = append(opts, classifier.WithHTTPStatus(cat, status))
	}
	for name, code := range c.GRPCCodes {
		cat, err := category.ParseKnown(name)
		if err != nil {
			return nil, fmt.Errorf("%w: grpc_codes: %w", ErrConfigInvalid, err)
		}
		gc, err := parseCode(code)
		if err != nil {
			return nil, fmt.Errorf("%w: grpc_codes: %s: %w", ErrConfigInvalid, name, err)
		}
		opts = append(opts, classifier.WithGRPCCode(cat, gc))
	}
	if c.ParameterLabel != "" {
		opts = append(opts, classifier.WithParameterLabel(c.ParameterLabel))
	}
	return opts, nil
}

// Classifier builds a classifier from the overrides.
func (c *Config) Classifier() (apis.Classifier, error) {
	opts, err := c.ClassifierOptions()
	if err != nil {
		return nil, err
	}
	cls, err := classifier.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigInvalid, err)
	}
	return cls, nil
}

// parseCode accepts "NOT_FOUND", "not_found" or "5".
func parseCode(s string) (codes.Code, error) {
	var code codes.Code
	s = strings.ToUpper(strings.TrimSpace(s))
	if _, err := strconv.Atoi(s); err != nil {
		s = strconv.Quote(s)
	}
	if err := code.UnmarshalJSON([]byte(s)); err != nil {
		return 0, err
	}
	return code, nil
}
