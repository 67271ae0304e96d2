// Package valueobjects holds value types for the user domain.
package valueobjects

import (
	"strings"
	"unicode/utf8"
)

// specialChars is the fixed character set counted as special.
const specialChars = `!@#$%^&*()_+-=[]{};':"\|,.<>?`

// StrengthCriteria is the per-criterion breakdown of a scored password.
type StrengthCriteria struct {
	Length         bool `json:"length"`
	HasNumber      bool `json:"hasNumber"`
	HasUppercase   bool `json:"hasUppercase"`
	HasLowercase   bool `json:"hasLowercase"`
	HasSpecialChar bool `json:"hasSpecialChar"`
}

// PasswordStrength is the result of scoring a password. Score is always
// in [1,10]; Feedback lists one suggestion per unmet criterion in a
// fixed order and is empty iff all criteria are met.
type PasswordStrength struct {
	Score    int              `json:"score"`
	Criteria StrengthCriteria `json:"criteria"`
	Feedback []string         `json:"feedback"`
}

// CalculatePasswordStrength scores a password. Pure and total over any
// input, including the empty string.
func CalculatePasswordStrength(password string) PasswordStrength {
	// Length is measured in characters, not bytes.
	length := utf8.RuneCountInString(password)

	criteria := StrengthCriteria{
		Length:         length >= 10,
		HasNumber:      strings.ContainsAny(password, "0123456789"),
		HasUppercase:   strings.ContainsAny(password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ"),
		HasLowercase:   strings.ContainsAny(password, "abcdefghijklmnopqrstuvwxyz"),
		HasSpecialChar: strings.ContainsAny(password, specialChars),
	}

	// Two points per criterion; 8-9 characters earn a single
	// consolation point for length.
	score := 0
	if criteria.Length {
		score += 2
	} else if length >= 8 {
		score++
	}
	if criteria.HasNumber {
		score += 2
	}
	if criteria.HasUppercase {
		score += 2
	}
	if criteria.HasLowercase {
		score += 2
	}
	if criteria.HasSpecialChar {
		score += 2
	}

	if score < 1 {
		score = 1
	}
	if score > 10 {
		score = 10
	}

	feedback := []string{}
	if !criteria.Length && length < 8 {
		feedback = append(feedback, "increase the length to at least 8 characters")
	} else if !criteria.Length {
		feedback = append(feedback, "10 or more characters are recommended for better security")
	}
	if !criteria.HasNumber {
		feedback = append(feedback, "include at least one number")
	}
	if !criteria.HasUppercase {
		feedback = append(feedback, "include at least one uppercase letter")
	}
	if !criteria.HasLowercase {
		feedback = append(feedback, "include at least one lowercase letter")
	}
	if !criteria.HasSpecialChar {
		feedback = append(feedback, "include at least one special character (!@#$% etc.)")
	}

	return PasswordStrength{
		Score:    score,
		Criteria: criteria,
		Feedback: feedback,
	}
}

// StrengthLevel maps a score to its presentation label.
func StrengthLevel(score int) string {
	switch {
	case score <= 3:
		return "weak"
	case score <= 6:
		return "moderate"
	case score <= 8:
		return "strong"
	default:
		return "very strong"
	}
}
