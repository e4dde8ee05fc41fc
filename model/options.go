package model

// ModelsMode selects how model types are emitted.
type ModelsMode string

const (
	// ModelsModeDPG emits plain structs with JSON tags.
	ModelsModeDPG ModelsMode = "dpg"
	// ModelsModeMsrest emits structs with serialization metadata maps.
	ModelsModeMsrest ModelsMode = "msrest"
	// ModelsModeNone suppresses model emission entirely.
	ModelsModeNone ModelsMode = "none"
)

// Options carries the generator flags the model graph consults. It is
// resolved and validated once by the generator before model construction;
// every node holds a reference to its CodeModel for lookups.
type Options struct {
	// ModuleName is the Go module path of the generated SDK.
	ModuleName string
	// PackageName is the Go package name of the generated SDK.
	PackageName string
	// ModelsMode selects the model emission flavor.
	ModelsMode ModelsMode
	// AzureArm enables ARM conventions (default LRO polling).
	AzureArm bool
	// VersionTolerant relaxes wire-format strictness in emitted code.
	VersionTolerant bool
	// ClientSideValidation emits parameter validation in operations.
	// Incompatible with VersionTolerant.
	ClientSideValidation bool
	// MinimizePositional moves query and header parameters into the
	// per-operation options struct instead of method arguments.
	MinimizePositional bool
	// PadSuffix is appended to identifiers that collide with a reserved
	// word or start with a digit.
	PadSuffix string
	// StrictTypes turns the unknown-type-tag fallback into a fatal error.
	StrictTypes bool
}

// DefaultOptions returns the option defaults used when a flag is not set.
func DefaultOptions() *Options {
	return &Options{
		PackageName: "api",
		ModelsMode:  ModelsModeDPG,
		PadSuffix:   "Param",
	}
}
