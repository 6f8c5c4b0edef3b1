package config

const (
	defaultTolerance     = 30
	defaultFPS           = 12
	defaultFeather       = 2
	defaultOutputFormat  = "png"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultFFprobeBinary = "ffprobe"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Defaults: Defaults{
			Tolerance: defaultTolerance,
			FPS:       defaultFPS,
			Feather:   defaultFeather,
		},
		Output: Output{
			Format: defaultOutputFormat,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Probe: Probe{
			FFprobeBinary: defaultFFprobeBinary,
		},
	}
}
