package core

import "strconv"

// IntFrom reads key from cfg as an int, keeping def when the key is absent
// or fails ok.
func IntFrom(cfg map[string]string, key string, def int, ok func(int) bool) int {
	v, present := cfg[key]
	if !present {
		return def
	}
	parsed, err := strconv.Atoi(v)
	if err != nil || (ok != nil && !ok(parsed)) {
		return def
	}
	return parsed
}

// FloatFrom reads key from cfg as a float64 in the same manner as IntFrom.
func FloatFrom(cfg map[string]string, key string, def float64, ok func(float64) bool) float64 {
	v, present := cfg[key]
	if !present {
		return def
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil || (ok != nil && !ok(parsed)) {
		return def
	}
	return parsed
}

// StringFrom reads key from cfg, keeping def when absent or empty.
func StringFrom(cfg map[string]string, key, def string) string {
	if v, ok := cfg[key]; ok && v != "" {
		return v
	}
	return def
}
