/*
Copyright 2018 The pdfcpu Authors.

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

package model

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// ConfigFileNameDefault is the standard pagefold configuration filename.
const ConfigFileNameDefault = "pagefold.yml"

// DefaultPageMargin is applied inside each panel box when no configuration
// overrides it.
const DefaultPageMargin = 0.0

// SigPairConfig is the YAML-serializable form of a SignaturePair.
type SigPairConfig struct {
	Large int `yaml:"large"`
	Small int `yaml:"small"`
}

// Configuration is pagefold's persisted, YAML-loadable settings: the
// signature pair search space and the renderer's page margin.
//
// It mirrors the core's ImposeConfig but in a form amenable to on-disk
// storage; callers convert it via ToImposeConfig.
type Configuration struct {
	SigPairs               []SigPairConfig `yaml:"sigPairs"`
	PageMargin             float64         `yaml:"pageMargin"`
	Guides                 bool            `yaml:"guides"`
	EmitBlankTailSignature bool            `yaml:"emitBlankTailSignature"`
}

// NewDefaultConfiguration returns the configuration pagefold ships with:
// the (32,28), (16,12) and (8,4) pairs, no margin, no fold/cut guides.
func NewDefaultConfiguration() *Configuration {
	return &Configuration{
		SigPairs: []SigPairConfig{
			{Large: 32, Small: 28},
			{Large: 16, Small: 12},
			{Large: 8, Small: 4},
		},
		PageMargin: DefaultPageMargin,
		Guides:     false,
	}
}

// LoadConfiguration reads and parses a YAML configuration file.
func LoadConfiguration(path string) (*Configuration, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "pagefold: reading configuration")
	}
	conf := &Configuration{}
	if err := yaml.Unmarshal(buf, conf); err != nil {
		return nil, errors.Wrap(err, "pagefold: parsing configuration")
	}
	return conf, nil
}

// Write persists conf as YAML to path.
func (conf *Configuration) Write(path string) error {
	buf, err := yaml.Marshal(conf)
	if err != nil {
		return errors.Wrap(err, "pagefold: marshalling configuration")
	}
	return errors.Wrap(os.WriteFile(path, buf, 0644), "pagefold: writing configuration")
}

// ToImposeConfig converts the persisted configuration into the form the
// core imposition entrypoint consumes.
func (conf *Configuration) ToImposeConfig() ImposeConfig {
	pairs := make([]SignaturePair, len(conf.SigPairs))
	for i, p := range conf.SigPairs {
		pairs[i] = SignaturePair{Large: p.Large, Small: p.Small}
	}
	return ImposeConfig{
		Pairs:                  pairs,
		PageMargin:             conf.PageMargin,
		EmitBlankTailSignature: conf.EmitBlankTailSignature,
	}
}

// Validate checks that every configured pair satisfies the Plan
// Selector's preconditions and that at least one pair is present.
func (conf *Configuration) Validate() error {
	if len(conf.SigPairs) == 0 {
		return NewError(NoPairs, "no signature pairs configured")
	}
	for _, p := range conf.SigPairs {
		sp := SignaturePair{Large: p.Large, Small: p.Small}
		if err := sp.Validate(); err != nil {
			return err
		}
	}
	if conf.PageMargin < 0 {
		return NewError(InvalidPair, "page margin must be non-negative, got %f", conf.PageMargin)
	}
	return nil
}
