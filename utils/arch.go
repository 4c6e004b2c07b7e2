package utils

import (
	"encoding/json"
	"fmt"
	"os"
)

// ArchVersion is written into every architecture file.
const ArchVersion = "1"

// ArchFile is the serializable form of a layer-size sequence
type ArchFile struct {
	Version string `json:"version"`
	Layers  []int  `json:"layers"`
}

// SaveArchitecture saves a layer-size sequence to a JSON file
func SaveArchitecture(filepath string, layers []int) error {
	data, err := json.MarshalIndent(&ArchFile{Version: ArchVersion, Layers: layers}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal architecture: %w", err)
	}
	return os.WriteFile(filepath, data, 0644)
}

// LoadArchitecture loads a layer-size sequence from a JSON file
func LoadArchitecture(filepath string) ([]int, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read architecture file: %w", err)
	}
	var arch ArchFile
	if err := json.Unmarshal(data, &arch); err != nil {
		return nil, fmt.Errorf("failed to unmarshal architecture: %w", err)
	}
	if arch.Version != ArchVersion {
		return nil, fmt.Errorf("unsupported architecture file version %q", arch.Version)
	}
	return arch.Layers, nil
}
