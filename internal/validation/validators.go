package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Result is the outcome of a single field validator
type Result struct {
	IsValid  bool   `json:"is_valid"`
	Error    string `json:"error,omitempty"`
	Strength string `json:"strength,omitempty"`
	CardType string `json:"card_type,omitempty"`
}

func ok() Result { return Result{IsValid: true} }

func fail(msg string) Result { return Result{Error: msg} }

var (
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	upperPattern   = regexp.MustCompile(`[A-Z]`)
	lowerPattern   = regexp.MustCompile(`[a-z]`)
	digitPattern   = regexp.MustCompile(`\d`)
	specialPattern = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
	symbolPattern  = regexp.MustCompile(`[^A-Za-z0-9]`)
)

func ValidateEmail(email string) Result {
	if email == "" {
		return fail("Email is required")
	}
	if !emailPattern.MatchString(email) {
		return fail("Please enter a valid email address")
	}
	return ok()
}

// ValidatePassword needs 8 characters and at least two character classes
func ValidatePassword(password string) Result {
	if password == "" {
		return fail("Password is required")
	}
	if len(password) < 8 {
		return Result{Error: "Password must be at least 8 characters", Strength: "weak"}
	}

	score := 0
	for _, re := range []*regexp.Regexp{upperPattern, lowerPattern, digitPattern, specialPattern} {
		if re.MatchString(password) {
			score++
		}
	}
	if score < 2 {
		return Result{Error: "Password should contain uppercase, lowercase, numbers, and special characters", Strength: "weak"}
	}

	strength := "weak"
	switch score {
	case 4:
		strength = "strong"
	case 3:
		strength = "medium"
	}
	return Result{IsValid: true, Strength: strength}
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

// ValidatePhone accepts Malaysian numbers with or without the 60 country code
func ValidatePhone(phone string) Result {
	if phone == "" {
		return fail("Phone number is required")
	}
	digits := digitsOnly(phone)
	if len(digits) < 10 || len(digits) > 13 {
		return fail("Please enter a valid Malaysian phone number")
	}
	if !strings.HasPrefix(digits, "60") && !strings.HasPrefix(digits, "01") {
		return fail("Phone number must start with +60 or 01")
	}
	return ok()
}

// ValidateCreditCard runs the Luhn checksum and detects the card brand
func ValidateCreditCard(number string) Result {
	if number == "" {
		return fail("Card number is required")
	}
	digits := digitsOnly(number)
	if len(digits) < 13 || len(digits) > 19 {
		return fail("Invalid card number length")
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	if sum%10 != 0 {
		return fail("Invalid card number")
	}

	cardType := "unknown"
	switch {
	case strings.HasPrefix(digits, "4"):
		cardType = "visa"
	case strings.HasPrefix(digits, "5"):
		cardType = "mastercard"
	case strings.HasPrefix(digits, "34"), strings.HasPrefix(digits, "37"):
		cardType = "amex"
	}
	return Result{IsValid: true, CardType: cardType}
}

// ValidateCVV needs 4 digits for amex and 3 otherwise
func ValidateCVV(cvv, cardType string) Result {
	if cvv == "" {
		return fail("CVV is required")
	}
	want := 3
	if cardType == "amex" {
		want = 4
	}
	if len(cvv) != want {
		return fail(fmt.Sprintf("CVV must be %d digits", want))
	}
	if digitsOnly(cvv) != cvv {
		return fail("CVV must contain only numbers")
	}
	return ok()
}

// ValidateExpiryDate checks an MM/YY expiry against now
func ValidateExpiryDate(expiry string, now time.Time) Result {
	if expiry == "" {
		return fail("Expiry date is required")
	}
	parts := strings.Split(expiry, "/")
	if len(parts) != 2 {
		return fail("Format should be MM/YY")
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || month < 1 || month > 12 {
		return fail("Invalid month")
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return fail("Format should be MM/YY")
	}

	expires := time.Date(2000+year, time.Month(month), 1, 0, 0, 0, 0, now.Location())
	if expires.Before(now) {
		return fail("Card has expired")
	}
	return ok()
}

func ValidateRequired(value, field string) Result {
	if value == "" {
		return fail(field + " is required")
	}
	return ok()
}

func ValidateMinLength(value string, min int, field string) Result {
	if len([]rune(value)) < min {
		return fail(fmt.Sprintf("%s must be at least %d characters", field, min))
	}
	return ok()
}

func ValidateMatch(a, b, field string) Result {
	if field == "" {
		field = "Values"
	}
	if a != b {
		return fail(field + " do not match")
	}
	return ok()
}

// PasswordStrength scores a password from 0 to 5
func PasswordStrength(password string) int {
	if password == "" {
		return 0
	}
	score := 0
	if len(password) >= 6 {
		score++
	}
	if len(password) >= 8 {
		score++
	}
	if upperPattern.MatchString(password) {
		score++
	}
	if digitPattern.MatchString(password) {
		score++
	}
	if symbolPattern.MatchString(password) {
		score++
	}
	return score
}

// PaymentDetails is the card form submitted at checkout
type PaymentDetails struct {
	CardNumber string `json:"card_number"`
	CVV        string `json:"cvv"`
	Expiry     string `json:"expiry"`
	HolderName string `json:"holder_name"`
}

// ValidatePayment checks the whole card form, keyed by field
func ValidatePayment(p PaymentDetails, now time.Time) Errors {
	errs := Errors{}
	card := ValidateCreditCard(p.CardNumber)
	if !card.IsValid {
		errs["card_number"] = card.Error
	}
	cardType := "other"
	if card.CardType == "amex" {
		cardType = "amex"
	}
	if r := ValidateCVV(p.CVV, cardType); !r.IsValid {
		errs["cvv"] = r.Error
	}
	if r := ValidateExpiryDate(p.Expiry, now); !r.IsValid {
		errs["expiry"] = r.Error
	}
	if r := ValidateRequired(strings.TrimSpace(p.HolderName), "Cardholder name"); !r.IsValid {
		errs["holder_name"] = r.Error
	}
	return errs
}
