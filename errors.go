package declension

import "errors"

var (
	// ErrInvalidInput is returned for an empty word.
	ErrInvalidInput = errors.New("word must be a non-empty string")
	// ErrUnsupportedLanguage is returned for a language code with no registered engine.
	ErrUnsupportedLanguage = errors.New("unsupported language")
	// ErrUnknownCase is returned by engines that reject unrecognized case identifiers.
	ErrUnknownCase = errors.New("unknown case")
	// ErrUnknownPolicy is returned by ParsePolicy.
	ErrUnknownPolicy = errors.New("unknown name policy")
)
