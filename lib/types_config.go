package lib

type GlobalConfigType struct {
	// LogLocation is "stderr" or a file path. "stdout" is rejected
	// because stdout carries the snapshot itself.
	LogLocation string `yaml:"log-location"`
	LogLevel    string `yaml:"log-level"`

	// RootPath is the filesystem whose capacity is reported.
	RootPath string `yaml:"root-path"`

	// SampleWindow is the CPU observation window in seconds. Values
	// below one second are raised to one second.
	SampleWindow int `yaml:"sample-window"`
}
