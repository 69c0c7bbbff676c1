package application

import (
	"fmt"
)

// ValidateRequired checks that a field is present. Only the empty string
// counts as absent; whitespace is left for the taxonomy to reject as an
// unknown noun. Returns a ValidationError matching ErrNullInput.
func ValidateRequired(fieldName, value string) error {
	if value == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
			Err:     ErrNullInput,
		}
	}
	return nil
}

// ValidateNouns checks that at least atLeast nouns are given and none is empty
func ValidateNouns(fieldName string, nouns []string, atLeast int) error {
	if len(nouns) < atLeast {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("at least %d %s required, got %d", atLeast, formatFieldName(fieldName), len(nouns)),
			Err:     ErrInvalidArgument,
		}
	}
	for i, noun := range nouns {
		if noun == "" {
			return &ValidationError{
				Field:   fieldName,
				Message: fmt.Sprintf("%s #%d is empty", formatFieldName(fieldName), i+1),
				Err:     ErrNullInput,
			}
		}
	}
	return nil
}

// ValidateVertices checks that a vertex set is present, non-empty and
// non-negative. Upper bounds are checked by the graph itself.
func ValidateVertices(fieldName string, vertices []int) error {
	if vertices == nil {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
			Err:     ErrNullInput,
		}
	}
	if len(vertices) == 0 {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must not be empty", formatFieldName(fieldName)),
			Err:     ErrInvalidArgument,
		}
	}
	for _, v := range vertices {
		if v < 0 {
			return &ValidationError{
				Field:   fieldName,
				Message: fmt.Sprintf("negative vertex %d in %s", v, formatFieldName(fieldName)),
				Err:     ErrInvalidArgument,
			}
		}
	}
	return nil
}

// formatFieldName converts field names to words for error messages
// (e.g., "noun1" -> "first noun")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"noun1":     "first noun",
		"noun2":     "second noun",
		"nouns":     "nouns",
		"query":     "search query",
		"vertices1": "first vertex set",
		"vertices2": "second vertex set",
		"synsets":   "synsets file",
		"hypernyms": "hypernyms file",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	// Fallback: just return the field name as-is
	return fieldName
}
