// Package main hosts the datclean CLI entrypoint and command graph.
//
// The root command loads a URL list and a dat catalog, keeps the URLs whose
// file names match a catalog entry, and writes the kept list together with
// rejected-URL and missing-entry logs. The config subcommands scaffold and
// check the optional TOML configuration.
//
// Keep this package lean: matching, loading, and output behavior belong in
// the internal packages and are only wired together here.
package main
