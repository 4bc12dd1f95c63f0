package config

// doseFile is the YAML schema of the optional dose.yaml configuration file.
type doseFile struct {
	Canvas struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"canvas"`
	Workers      int    `yaml:"workers"`
	OutputSuffix string `yaml:"output_suffix"`
}
