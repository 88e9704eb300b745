package config

// mergeMappings returns a deep copy of defaults overlaid with values. Mapping
// nodes present in both merge recursively; any other node kind from values
// replaces the default wholesale.
func mergeMappings(defaults, values map[string]any) map[string]any {
	merged := make(map[string]any, len(defaults)+len(values))

	for key, defaultValue := range defaults {
		overriding, overridden := values[key]
		if !overridden {
			merged[key] = deepCopy(defaultValue)

			continue
		}

		defaultMapping, defaultIsMapping := defaultValue.(map[string]any)
		overridingMapping, overridingIsMapping := overriding.(map[string]any)

		if defaultIsMapping && overridingIsMapping {
			merged[key] = mergeMappings(defaultMapping, overridingMapping)

			continue
		}

		merged[key] = deepCopy(overriding)
	}

	for key, value := range values {
		if _, present := defaults[key]; !present {
			merged[key] = deepCopy(value)
		}
	}

	return merged
}

// deepCopy returns an independent copy of a nested structure. Scalars are
// returned as-is.
func deepCopy(node any) any {
	switch typed := node.(type) {
	case map[string]any:
		copied := make(map[string]any, len(typed))
		for key, value := range typed {
			copied[key] = deepCopy(value)
		}

		return copied
	case []any:
		copied := make([]any, len(typed))
		for i, value := range typed {
			copied[i] = deepCopy(value)
		}

		return copied
	default:
		return typed
	}
}
