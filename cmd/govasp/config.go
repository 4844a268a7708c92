package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	vasp "github.com/rmera/govasp"
	"github.com/rmera/govasp/vplot"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gonum.org/v1/plot/vg"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configBaseName = "govasp"
	configFolder   = "."
	envPrefix      = "GOVASP"

	configKey    = "config"
	outcarKey    = "outcar"
	klabelsKey   = "klabels"
	bandKey      = "band"
	tdosKey      = "tdos"
	titleKey     = "title"
	zeroFermiKey = "zero-fermi"
	windowKey    = "window"
	outputDirKey = "output-dir"
	formatKey    = "format"
	widthKey     = "width"
	heightKey    = "height"
	showKey      = "show"
	verboseKey   = "verbose"

	logFileKey       = "log.file"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultOutcar  = "OUTCAR"
	defaultKLabels = "KLABELS"
	defaultBand    = "BAND.dat"
	defaultTDOS    = "TDOS.dat"
	defaultWidth   = 6.4 //inches
	defaultHeight  = 4.8

	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

// newViper returns a viper instance with all the defaults set. Values
// can come from a govasp.yaml file, from GOVASP_* environment variables
// or from the flags bound to it.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName(configBaseName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configFolder)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	def := vasp.DefaultOptions()
	out := vplot.DefaultOutput()
	v.SetDefault(outcarKey, defaultOutcar)
	v.SetDefault(klabelsKey, defaultKLabels)
	v.SetDefault(bandKey, defaultBand)
	v.SetDefault(tdosKey, defaultTDOS)
	v.SetDefault(titleKey, def.Title)
	v.SetDefault(zeroFermiKey, def.ZeroFermi)
	v.SetDefault(windowKey, def.Window)
	v.SetDefault(outputDirKey, out.Dir)
	v.SetDefault(formatKey, out.Format)
	v.SetDefault(widthKey, defaultWidth)
	v.SetDefault(heightKey, defaultHeight)
	v.SetDefault(showKey, false)
	v.SetDefault(verboseKey, false)

	v.SetDefault(logFileKey, "")
	v.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	v.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	v.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	v.SetDefault(logCompressKey, defaultLogCompress)
	return v
}

// readConfig reads the file given with --config, or govasp.yaml in the
// current directory if it exists.
func readConfig(v *viper.Viper) error {
	if file := v.GetString(configKey); file != "" {
		v.SetConfigFile(file)
	}
	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return fmt.Errorf("reading configuration: %w", err)
	}
	return nil
}

// options returns the energy reference options in v.
func options(v *viper.Viper) vasp.Options {
	return vasp.Options{
		Title:     v.GetString(titleKey),
		ZeroFermi: v.GetBool(zeroFermiKey),
		Window:    v.GetFloat64(windowKey),
	}
}

// output returns the output settings in v.
func output(v *viper.Viper) vplot.Output {
	return vplot.Output{
		Dir:    v.GetString(outputDirKey),
		Format: v.GetString(formatKey),
		Width:  vg.Length(v.GetFloat64(widthKey)) * vg.Inch,
		Height: vg.Length(v.GetFloat64(heightKey)) * vg.Inch,
	}
}

// newLogger builds the logger: zap's production setup on stderr, at
// debug level if verbose is set, and also to a rotated log file if
// one is configured. The returned closer, nil if there is no log file,
// must be closed after the logger's last use.
func newLogger(v *viper.Viper) (*zap.Logger, io.Closer, error) {
	config := zap.NewProductionConfig()
	if v.GetBool(verboseKey) {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	file := v.GetString(logFileKey)
	if strings.TrimSpace(file) == "" {
		return logger, nil, nil
	}
	rotated := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    v.GetInt(logMaxSizeKey),
		MaxBackups: v.GetInt(logMaxBackupsKey),
		MaxAge:     v.GetInt(logMaxAgeKey),
		Compress:   v.GetBool(logCompressKey),
	}
	fileCore := zapcore.NewCore(zapcore.NewJSONEncoder(config.EncoderConfig), zapcore.AddSync(rotated), config.Level)
	return logger.WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return zapcore.NewTee(c, fileCore)
	})), rotated, nil
}
