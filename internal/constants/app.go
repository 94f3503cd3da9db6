package constants

const (
	AppName   = "payments"
	EnvPrefix = "PAYMENTS"
)

const (
	ConfigName = "config"
	ConfigType = "yaml"
)

const (
	// DefaultPrecision prints amounts exactly; a value >= 0 rounds them to that
	// many decimal places.
	DefaultPrecision = -1
	MaxPrecision     = 28
)
