// Package config loads, normalizes, and validates datclean configuration.
//
// It supplies defaults that reproduce the classic tool behaviour (.zip/.7z/.rar
// anchors, "game" records, removed_url_list.log and missing_file_list.log),
// expands user paths, and reads an optional TOML file. Every knob the CLI and
// the matching pipeline need lives on Config.
//
// Always obtain settings through this package so downstream code receives
// normalized extensions, canonical log formats, and clear validation errors.
package config
