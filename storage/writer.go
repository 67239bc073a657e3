package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"flora-chain/models"
)

// MarshalDataset renders the dataset in the 2-space-indented form the
// presentation layer expects.
func MarshalDataset(dataset *models.Dataset) ([]byte, error) {
	data, err := json.MarshalIndent(dataset, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling dataset: %w", err)
	}
	return data, nil
}

// WriteDataset writes the dataset atomically: temp file in the target
// directory, then rename. Either the full artifact appears or nothing does.
func WriteDataset(path string, dataset *models.Dataset) error {
	data, err := MarshalDataset(dataset)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".dataset-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing dataset: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
