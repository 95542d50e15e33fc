package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Source struct {
	Name    string `yaml:"name"`
	Enabled bool   `yaml:"enabled"`
}

type Config struct {
	App struct {
		Port    int    `yaml:"port"`
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Scheduler struct {
		IntervalHours int    `yaml:"interval_hours"`
		Timezone      string `yaml:"timezone"`
		RunOnStart    bool   `yaml:"run_on_start"`
	} `yaml:"scheduler"`

	Sources []Source `yaml:"sources"`

	Limits struct {
		RequestsPerSecond float64 `yaml:"requests_per_second"`
		Burst             int     `yaml:"burst"`
	} `yaml:"limits"`

	Email struct {
		Enabled    bool     `yaml:"enabled"`
		IMAPHost   string   `yaml:"imap_host"`
		IMAPPort   int      `yaml:"imap_port"`
		Username   string   `yaml:"username"`
		Mailbox    string   `yaml:"mailbox"`
		SubjectAny []string `yaml:"subject_any"`
	} `yaml:"email"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

// EnabledSources returns the names ingestion should cover, in config order.
func (c Config) EnabledSources() []string {
	var out []string
	for _, s := range c.Sources {
		if s.Enabled {
			out = append(out, s.Name)
		}
	}
	return out
}
