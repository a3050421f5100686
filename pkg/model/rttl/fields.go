package rttl

// Helpers for pulling fields out of decoded JSON payloads. Required fields
// fail with MissingFieldError, optional fields take the documented default.
// Numbers arrive as float64 from encoding/json, so every numeric accessor
// accepts both int and float64. Slice accessors accept the []interface{}
// form decoded JSON produces and the typed slices ToAPIData emits.

func requireString(data map[string]interface{}, key string) (string, error) {
	v, ok := data[key]
	if !ok {
		return "", &MissingFieldError{Field: key}
	}
	s, ok := v.(string)
	if !ok {
		return "", &ValidationError{Field: key, Message: "not a string"}
	}
	return s, nil
}

func requireInt(data map[string]interface{}, key string) (int, error) {
	v, ok := data[key]
	if !ok {
		return 0, &MissingFieldError{Field: key}
	}
	n, ok := asInt(v)
	if !ok {
		return 0, &ValidationError{Field: key, Message: "not a number"}
	}
	return n, nil
}

func optString(data map[string]interface{}, key, def string) string {
	if v, ok := data[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

func optBool(data map[string]interface{}, key string, def bool) bool {
	if v, ok := data[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

func optInt(data map[string]interface{}, key string, def int) int {
	if v, ok := data[key]; ok {
		if n, ok := asInt(v); ok {
			return n
		}
	}
	return def
}

func optIntPtr(data map[string]interface{}, key string) *int {
	if v, ok := data[key]; ok {
		if n, ok := asInt(v); ok {
			return &n
		}
	}
	return nil
}

func optStringSlice(data map[string]interface{}, key string) []string {
	v, ok := data[key]
	if !ok || v == nil {
		return nil
	}
	switch items := v.(type) {
	case []string:
		return items
	case []interface{}:
		result := []string{}
		for _, item := range items {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		return result
	}
	return nil
}

func optMapSlice(data map[string]interface{}, key string) []map[string]interface{} {
	v, ok := data[key]
	if !ok || v == nil {
		return nil
	}
	switch items := v.(type) {
	case []map[string]interface{}:
		return items
	case []interface{}:
		result := []map[string]interface{}{}
		for _, item := range items {
			if m, ok := item.(map[string]interface{}); ok {
				result = append(result, m)
			}
		}
		return result
	}
	return nil
}

func optMap(data map[string]interface{}, key string) map[string]interface{} {
	if v, ok := data[key]; ok {
		if m, ok := v.(map[string]interface{}); ok {
			return m
		}
	}
	return nil
}

func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
