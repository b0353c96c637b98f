package config

const (
	defaultConfigPath       = "~/.config/datclean/config.toml"
	projectConfigName       = "datclean.toml"
	defaultInputFormat      = "auto"
	defaultOutputExtension  = ".txt"
	defaultRejectedLog      = "removed_url_list.log"
	defaultMissingLog       = "missing_file_list.log"
	defaultProgressInterval = 100
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

func defaultExtensions() []string { return []string{".zip", ".7z", ".rar"} }

func defaultRecordTags() []string { return []string{"game"} }

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Matching: Matching{
			Extensions: defaultExtensions(),
		},
		Catalog: Catalog{
			RecordTags: defaultRecordTags(),
		},
		Input: Input{
			Format: defaultInputFormat,
		},
		Output: Output{
			Extension:   defaultOutputExtension,
			RejectedLog: defaultRejectedLog,
			MissingLog:  defaultMissingLog,
		},
		Progress: Progress{
			Interval: defaultProgressInterval,
		},
		Logging: Logging{
			Format:      defaultLogFormat,
			Level:       defaultLogLevel,
			OutputPaths: []string{"stderr"},
		},
	}
}
