package validation

import (
	"regexp"
	"sort"
	"strings"
)

type RuleKind int

const (
	KindRequired RuleKind = iota
	KindMinLength
	KindMaxLength
	KindPattern
	KindCustom
)

// Rule is one check on a form field, carrying the message shown when it fails
type Rule struct {
	Kind    RuleKind
	Length  int
	Pattern *regexp.Regexp
	Check   func(string) bool
	Message string
}

func Required(message string) Rule {
	return Rule{Kind: KindRequired, Message: message}
}

func MinLength(n int, message string) Rule {
	return Rule{Kind: KindMinLength, Length: n, Message: message}
}

func MaxLength(n int, message string) Rule {
	return Rule{Kind: KindMaxLength, Length: n, Message: message}
}

func Pattern(re *regexp.Regexp, message string) Rule {
	return Rule{Kind: KindPattern, Pattern: re, Message: message}
}

func Custom(check func(string) bool, message string) Rule {
	return Rule{Kind: KindCustom, Check: check, Message: message}
}

// Schema maps a field name to its ordered rules
type Schema map[string][]Rule

// Errors maps a field name to the first failing rule's message
type Errors map[string]string

// ValidateField runs the field's rules in order and returns the first failure
// message, or "" when the value passes. Empty values only fail Required rules.
func (s Schema) ValidateField(field, value string) string {
	for _, rule := range s[field] {
		empty := strings.TrimSpace(value) == ""
		if rule.Kind == KindRequired {
			if empty {
				return rule.Message
			}
			continue
		}
		if empty {
			continue
		}

		switch rule.Kind {
		case KindMinLength:
			if len([]rune(value)) < rule.Length {
				return rule.Message
			}
		case KindMaxLength:
			if len([]rune(value)) > rule.Length {
				return rule.Message
			}
		case KindPattern:
			if rule.Pattern != nil && !rule.Pattern.MatchString(value) {
				return rule.Message
			}
		case KindCustom:
			if rule.Check != nil && !rule.Check(value) {
				return rule.Message
			}
		}
	}
	return ""
}

// ValidateAll validates every configured field; missing values count as empty
func (s Schema) ValidateAll(values map[string]string) Errors {
	errs := Errors{}
	for field := range s {
		if msg := s.ValidateField(field, values[field]); msg != "" {
			errs[field] = msg
		}
	}
	return errs
}

// Fields lists the failing fields in a stable order
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// RegistrationSchema is the sign-up form
func RegistrationSchema() Schema {
	return Schema{
		"name": {
			Required("Name is required"),
			MinLength(2, "Name must be at least 2 characters"),
			MaxLength(100, "Name must not exceed 100 characters"),
		},
		"email": {
			Required("Email is required"),
			Pattern(emailPattern, "Please enter a valid email address"),
		},
		"password": {
			Required("Password is required"),
			MinLength(6, "Password must be at least 6 characters"),
		},
		"phone": {
			Custom(func(v string) bool { return ValidatePhone(v).IsValid }, "Please enter a valid Malaysian phone number"),
		},
	}
}
