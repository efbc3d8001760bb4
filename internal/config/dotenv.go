// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// envFilePath returns the .env file named by ENV_FILE, or ".env".
func envFilePath() string {
	if path := os.Getenv("ENV_FILE"); path != "" {
		return path
	}

	return defaultEnvFile
}

// loadDotEnv copies the variables of the file at path into the process
// environment. Variables already present in the environment are kept.
// A missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("error loading env file %s: %w", path, err)
}
