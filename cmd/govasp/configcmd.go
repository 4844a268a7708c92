package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// settings mirrors the configuration keys, so the effective
// configuration can be written as a govasp.yaml file.
type settings struct {
	Outcar    string  `yaml:"outcar"`
	KLabels   string  `yaml:"klabels"`
	Band      string  `yaml:"band"`
	TDOS      string  `yaml:"tdos"`
	Title     string  `yaml:"title"`
	ZeroFermi bool    `yaml:"zero-fermi"`
	Window    float64 `yaml:"window"`
	OutputDir string  `yaml:"output-dir"`
	Format    string  `yaml:"format"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Show      bool    `yaml:"show"`
	Verbose   bool    `yaml:"verbose"`
	Log       struct {
		File       string `yaml:"file"`
		MaxSize    int    `yaml:"max_size"`
		MaxBackups int    `yaml:"max_backups"`
		MaxAge     int    `yaml:"max_age"`
		Compress   bool   `yaml:"compress"`
	} `yaml:"log"`
}

func currentSettings(v *viper.Viper) settings {
	var s settings
	s.Outcar = v.GetString(outcarKey)
	s.KLabels = v.GetString(klabelsKey)
	s.Band = v.GetString(bandKey)
	s.TDOS = v.GetString(tdosKey)
	s.Title = v.GetString(titleKey)
	s.ZeroFermi = v.GetBool(zeroFermiKey)
	s.Window = v.GetFloat64(windowKey)
	s.OutputDir = v.GetString(outputDirKey)
	s.Format = v.GetString(formatKey)
	s.Width = v.GetFloat64(widthKey)
	s.Height = v.GetFloat64(heightKey)
	s.Show = v.GetBool(showKey)
	s.Verbose = v.GetBool(verboseKey)
	s.Log.File = v.GetString(logFileKey)
	s.Log.MaxSize = v.GetInt(logMaxSizeKey)
	s.Log.MaxBackups = v.GetInt(logMaxBackupsKey)
	s.Log.MaxAge = v.GetInt(logMaxAgeKey)
	s.Log.Compress = v.GetBool(logCompressKey)
	return s
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Print the configuration that band and dos would use, after
merging defaults, govasp.yaml, environment variables and flags. The output
can be saved as govasp.yaml and edited.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := yaml.Marshal(currentSettings(a.v))
			if err != nil {
				return fmt.Errorf("encoding configuration: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}
