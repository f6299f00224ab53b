// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package config manages JSON configuration loading for the ingestion
// pipeline. It handles the store path, parser worker-pool size, archive
// safety bounds, stale-lock window, and the dynasty normalization
// table. Configuration is loaded from a JSON file with sensible
// defaults when the file is absent.
package config
