package application

import (
	"fmt"
	"strings"

	"wordnet/internal/domain"
)

// Re-export domain sentinels for use by adapters
var (
	ErrInvalidArgument  = domain.ErrInvalidArgument
	ErrNullInput        = domain.ErrNullInput
	ErrUnknownNoun      = domain.ErrUnknownNoun
	ErrNoCommonAncestor = domain.ErrNoCommonAncestor
	ErrCycle            = domain.ErrCycle
	ErrNotRooted        = domain.ErrNotRooted
)

// ValidationError represents a validation failure with details.
// Err is the sentinel it classifies as (ErrNullInput, ErrInvalidArgument).
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// SuggestionError reports a word missing from the taxonomy together with
// nearby nouns that do exist
type SuggestionError struct {
	Noun        string
	Suggestions []string
}

func (e *SuggestionError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("%q is not a noun", e.Noun)
	}
	return fmt.Sprintf("%q is not a noun (did you mean: %s?)", e.Noun, strings.Join(e.Suggestions, ", "))
}

func (e *SuggestionError) Is(target error) bool {
	return target == domain.ErrUnknownNoun
}
