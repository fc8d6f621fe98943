package models

// GeneratorSettings controls the stateless password generator. The zero
// value is not useful; use DefaultGeneratorSettings as the starting point and
// overlay the client's request on top of it.
type GeneratorSettings struct {
	Length           int  `json:"length"`
	IncludeUppercase bool `json:"include_uppercase"`
	IncludeLowercase bool `json:"include_lowercase"`
	IncludeNumbers   bool `json:"include_numbers"`
	IncludeSymbols   bool `json:"include_symbols"`
	ExcludeSimilar   bool `json:"exclude_similar"`
}

// DefaultGeneratorSettings returns the settings used when the client omits
// fields: 16 characters, all four character classes, similar-looking
// characters allowed.
func DefaultGeneratorSettings() GeneratorSettings {
	return GeneratorSettings{
		Length:           16,
		IncludeUppercase: true,
		IncludeLowercase: true,
		IncludeNumbers:   true,
		IncludeSymbols:   true,
	}
}
