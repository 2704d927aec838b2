package validation

func StringPtr(s string) *string {
	return &s
}

// StringPtrIfNotEmpty returns a pointer to string if not empty, otherwise nil
func StringPtrIfNotEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func BoolPtr(b bool) *bool {
	return &b
}

func IntPtr(i int) *int {
	return &i
}

// Helper functions for nullable fields

// GetStringOrEmpty returns the string value or an empty string if nil
func GetStringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// GetStringOrDefault returns the string value or a default value if nil
func GetStringOrDefault(s *string, defaultValue string) string {
	if s == nil {
		return defaultValue
	}
	return *s
}

// GetBoolOrFalse returns the bool value or false if nil
func GetBoolOrFalse(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}
