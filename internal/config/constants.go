package config

// ConfigFileName is the optional per-project configuration file.
const ConfigFileName = "adavalid.yaml"

// SourceFileExtensions are all recognized Ada source file extensions.
var SourceFileExtensions = []string{".ads", ".ada", ".adb"}

// Shape of generated validation functions.
const (
	FunctionName     = "Is_Valid"
	DefaultInputName = "Input"
	AccumulatorName  = "Valid"
)

// OutputFileSuffix is appended to the lowercased type name to form the
// default output file name.
const OutputFileSuffix = "_validation.adb"
