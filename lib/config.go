package lib

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultConfigPath = "/etc/mono/healthsnap.yml"

var GlobalConfig GlobalConfigType

// InitConfig loads the optional configuration file. A missing file is
// not an error: every knob has a default, so a bare invocation needs no
// configuration at all. Extra paths are used only by tests.
func InitConfig(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{DefaultConfigPath}
	}

	GlobalConfig = GlobalConfigType{}

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}

		configData, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read configuration file %s: %w", path, err)
		}

		err = yaml.Unmarshal(configData, &GlobalConfig)
		if err != nil {
			return fmt.Errorf("failed to parse configuration file %s: %w", path, err)
		}
	}

	return applyConfigDefaults()
}

func applyConfigDefaults() error {
	if GlobalConfig.LogLocation == "" {
		GlobalConfig.LogLocation = "stderr"
	}
	if GlobalConfig.LogLocation == "stdout" {
		return fmt.Errorf("log-location may not be stdout, it is reserved for the snapshot")
	}

	if GlobalConfig.LogLevel == "" {
		GlobalConfig.LogLevel = "info"
	}

	if GlobalConfig.RootPath == "" {
		GlobalConfig.RootPath = "/"
	}

	if GlobalConfig.SampleWindow < 1 {
		GlobalConfig.SampleWindow = 1
	}

	return nil
}
