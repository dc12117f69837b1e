package configs

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Log      LogConfig      `mapstructure:"log" validate:"required"`
	Analyzer AnalyzerConfig `mapstructure:"analyzer" validate:"required"`
}

// ServerConfig holds server-related configuration. Only used with --serve.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// AnalyzerConfig holds the log and report locations and report settings.
type AnalyzerConfig struct {
	LogDir         string  `mapstructure:"log_dir" validate:"required"`
	LogPrefix      string  `mapstructure:"log_prefix" validate:"required"`
	ReportDir      string  `mapstructure:"report_dir" validate:"required"`
	ReportSize     int     `mapstructure:"report_size" validate:"required,min=1"`
	ReportFormat   string  `mapstructure:"report_format" validate:"required,oneof=html json"`
	ReportTemplate string  `mapstructure:"report_template"` // optional html template file
	MaxErrorRatio  float64 `mapstructure:"max_error_ratio" validate:"min=0,max=1"`
}
