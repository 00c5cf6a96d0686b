// Package strength rates passwords on a coarse scale derived from character
// class coverage and length.
package strength

import (
	"unicode/utf16"

	zxcvbn "github.com/ccojocar/zxcvbn-go"
)

// Label is the coarse strength rating of a password.
type Label string

const (
	TooWeak Label = "TOO WEAK!"
	Weak    Label = "WEAK"
	Medium  Label = "MEDIUM"
	Strong  Label = "STRONG"
	None    Label = ""
)

// Labels lists every reachable label from weakest to strongest.
var Labels = []Label{TooWeak, Weak, Medium, Strong}

const (
	shortLength = 8
	longLength  = 12
)

// Score awards one point per character class present (lowercase, uppercase,
// digit, other) and one point each for a length above 8 and above 12.
func Score(password string) int {
	var hasLower, hasUpper, hasDigit, hasOther bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasOther = true
		}
	}

	score := 0
	for _, present := range []bool{hasLower, hasUpper, hasDigit, hasOther} {
		if present {
			score++
		}
	}

	length := utf16Len(password)
	if length > shortLength {
		score++
	}
	if length > longLength {
		score++
	}
	return score
}

// utf16Len counts password in UTF-16 code units, so characters outside the
// Basic Multilingual Plane weigh two.
func utf16Len(password string) int {
	n := 0
	for _, r := range password {
		if w := utf16.RuneLen(r); w > 0 {
			n += w
		} else {
			n++
		}
	}
	return n
}

// LabelFor maps a score to its label. Scores outside 0..6 map to None.
func LabelFor(score int) Label {
	switch score {
	case 0, 1, 2:
		return TooWeak
	case 3:
		return Weak
	case 4:
		return Medium
	case 5, 6:
		return Strong
	default:
		return None
	}
}

// Classify returns the strength label of password.
func Classify(password string) Label {
	return LabelFor(Score(password))
}

// Estimate is a zxcvbn estimate reported next to the label.
type Estimate struct {
	Score     int     `json:"score"`
	Entropy   float64 `json:"entropy"`
	CrackTime string  `json:"crack_time"`
}

// EstimateOf runs zxcvbn against password. userInputs are penalized when
// they appear in the password.
func EstimateOf(password string, userInputs []string) Estimate {
	if password == "" {
		return Estimate{CrackTime: "instant"}
	}
	result := zxcvbn.PasswordStrength(password, userInputs)
	return Estimate{
		Score:     result.Score,
		Entropy:   result.Entropy,
		CrackTime: result.CrackTimeDisplay,
	}
}
