// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// SeedFile is the YAML document read at startup to pre-populate the store.
//
//	contracts:
//	  - name: primary-button
//	    standard: true
//	  - name: icon-button
//	    variants:
//	      - type: size
//	        values: [sm, md]
type SeedFile struct {
	Contracts []SeedEntry `yaml:"contracts"`
}

// SeedEntry is one contract in a seed file. Standard entries ignore every
// other field except Name and ID and use the canonical definition.
type SeedEntry struct {
	CreateContractRequest `yaml:",inline"`
	Standard              bool `yaml:"standard,omitempty"`
}

// Request returns the creation request the entry stands for.
func (entry SeedEntry) Request() CreateContractRequest {
	if !entry.Standard {
		return entry.CreateContractRequest
	}
	request := StandardRequest(entry.Name)
	request.ID = entry.ID
	return request
}

// ParseSeed decodes a seed document. Unknown keys are rejected so typos in
// hand-written files surface at startup.
func ParseSeed(reader io.Reader) (*SeedFile, error) {
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)

	var file SeedFile
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return &SeedFile{}, nil
		}
		return nil, fmt.Errorf("seed: failed to decode: %w", err)
	}

	for index, entry := range file.Contracts {
		if entry.Name == "" {
			return nil, fmt.Errorf("seed: contract at index %d has no name", index)
		}
	}

	return &file, nil
}

// LoadSeedFile reads and decodes the seed document at path.
func LoadSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: failed to read %s: %w", path, err)
	}
	return ParseSeed(bytes.NewReader(data))
}
