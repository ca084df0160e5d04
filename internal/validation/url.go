package validation

// URLValidator checks submitted URLs before any work is done for them. Anything
// non-empty is accepted as QR payload, whitespace included; classification copes with
// malformed input.
type URLValidator struct {
	maxLength int
}

func NewURLValidator(maxLength int) *URLValidator {
	return &URLValidator{maxLength: maxLength}
}

func (v *URLValidator) ValidateURL(rawURL string) error {
	if rawURL == "" {
		return ErrEmptyURL
	}

	if v.maxLength > 0 && len(rawURL) > v.maxLength {
		return ErrURLTooLong
	}

	return nil
}
