package config

// DefaultConfig returns configuration with sensible defaults. These
// defaults are used when no config file exists or when a config file is
// missing specific fields.
func DefaultConfig() *Config {
	return &Config{
		Builtin: BuiltinConfig{
			HeaderExtension: ".hhi",
			RootNamespace:   "HH",
			PseudoConstants: []string{
				"__LINE__",
				"__FILE__",
				"__DIR__",
				"__CLASS__",
				"__FUNCTION__",
				"__METHOD__",
				"__NAMESPACE__",
			},
		},
		Collector: CollectorConfig{
			MaxClosureIterations: 0,
		},
		Synth: SynthConfig{
			ExceptionClass: "Exception",
			HelperName:     "default_factory",
		},
		Layout: LayoutConfig{
			HeaderLine:       "<?hh",
			ToplevelMarker:   "////toplevel.php",
			NamespacesMarker: "////namespaces.php",
		},
	}
}

// Merge merges loaded config with defaults. Values from loaded config take
// precedence over defaults. Returns a new Config with merged values.
func Merge(loaded, defaults *Config) *Config {
	result := &Config{}
	result.Builtin = mergeBuiltinConfig(loaded.Builtin, defaults.Builtin)
	result.Collector = mergeCollectorConfig(loaded.Collector, defaults.Collector)
	result.Synth = mergeSynthConfig(loaded.Synth, defaults.Synth)
	result.Layout = mergeLayoutConfig(loaded.Layout, defaults.Layout)
	return result
}

func mergeBuiltinConfig(loaded, defaults BuiltinConfig) BuiltinConfig {
	result := defaults
	if loaded.HeaderExtension != "" {
		result.HeaderExtension = loaded.HeaderExtension
	}
	if loaded.RootNamespace != "" {
		result.RootNamespace = loaded.RootNamespace
	}
	if len(loaded.PseudoConstants) > 0 {
		result.PseudoConstants = loaded.PseudoConstants
	}
	return result
}

func mergeCollectorConfig(loaded, defaults CollectorConfig) CollectorConfig {
	result := defaults
	if loaded.MaxClosureIterations != 0 {
		result.MaxClosureIterations = loaded.MaxClosureIterations
	}
	return result
}

func mergeSynthConfig(loaded, defaults SynthConfig) SynthConfig {
	result := defaults
	if loaded.ExceptionClass != "" {
		result.ExceptionClass = loaded.ExceptionClass
	}
	if loaded.HelperName != "" {
		result.HelperName = loaded.HelperName
	}
	return result
}

func mergeLayoutConfig(loaded, defaults LayoutConfig) LayoutConfig {
	result := defaults
	if loaded.HeaderLine != "" {
		result.HeaderLine = loaded.HeaderLine
	}
	if loaded.ToplevelMarker != "" {
		result.ToplevelMarker = loaded.ToplevelMarker
	}
	if loaded.NamespacesMarker != "" {
		result.NamespacesMarker = loaded.NamespacesMarker
	}
	return result
}
