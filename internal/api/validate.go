package api

import (
	"fmt"
	"regexp"
	"strings"
)

// TrainNumberLength is the number of digits in a train number.
const TrainNumberLength = 5

var trainNumberRegex = regexp.MustCompile(fmt.Sprintf(`^\d{%d}$`, TrainNumberLength))

// ValidateTrainNumber trims the input and checks it is exactly five decimal digits.
// It returns the trimmed number on success.
func ValidateTrainNumber(input string) (string, error) {
	number := strings.TrimSpace(input)
	if !trainNumberRegex.MatchString(number) {
		return "", NewValidationError("train_number", number, fmt.Sprintf("expected exactly %d digits", TrainNumberLength))
	}
	return number, nil
}

// lastDigit returns the numeric value of the final character of a validated number.
func lastDigit(number string) int {
	return int(number[len(number)-1] - '0')
}
