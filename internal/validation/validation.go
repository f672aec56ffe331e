// Package validation holds the field-level rules shared by the services.
// They exist as plain functions (rather than only binding tags) because the
// partial-update path revalidates individual fields from a patch body.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yukikurage/ticket-tracker-api/internal/models"
)

const (
	MinUsernameLength    = 3
	MaxUsernameLength    = 20
	MinPasswordLength    = 6
	MaxPasswordLength    = 100
	MinTitleLength       = 3
	MaxTitleLength       = 100
	MaxDescriptionLength = 1000
	MinContentLength     = 1
	MaxContentLength     = 500
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// RuleError describes a field value that failed validation.
type RuleError struct {
	Field   string
	Message string
}

func (e *RuleError) Error() string {
	return e.Message
}

func newRuleError(field, format string, args ...interface{}) *RuleError {
	return &RuleError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// Username checks the registration username rule: 3-20 characters after
// trimming, alphanumeric plus underscore and hyphen.
func Username(username string) error {
	trimmed := strings.TrimSpace(username)
	if length := utf8.RuneCountInString(trimmed); length < MinUsernameLength || length > MaxUsernameLength {
		return newRuleError("username", "username must be %d-%d characters", MinUsernameLength, MaxUsernameLength)
	}
	if !usernamePattern.MatchString(trimmed) {
		return newRuleError("username", "username may only contain letters, digits, underscores and hyphens")
	}
	return nil
}

// Password checks the password rule: 6-100 characters with at least one
// letter and one digit.
func Password(password string) error {
	if len(password) < MinPasswordLength || len(password) > MaxPasswordLength {
		return newRuleError("password", "password must be %d-%d characters", MinPasswordLength, MaxPasswordLength)
	}
	hasLetter := false
	hasDigit := false
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return newRuleError("password", "password must contain at least one letter and one digit")
	}
	return nil
}

// TicketTitle checks the title rule: 3-100 characters after trimming.
func TicketTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if length := utf8.RuneCountInString(trimmed); length < MinTitleLength || length > MaxTitleLength {
		return newRuleError("title", "title must be %d-%d characters", MinTitleLength, MaxTitleLength)
	}
	return nil
}

// TicketDescription checks the optional description rule: at most 1000 characters.
func TicketDescription(description string) error {
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return newRuleError("description", "description must be at most %d characters", MaxDescriptionLength)
	}
	return nil
}

// TicketStatus checks that the status is one of OPEN, IN_PROGRESS, CLOSED.
func TicketStatus(status models.TicketStatus) error {
	if !models.ValidStatus(status) {
		return newRuleError("status", "status must be one of OPEN, IN_PROGRESS, CLOSED")
	}
	return nil
}

// CommentContent checks the comment rule: non-blank after trimming, at most
// 500 characters.
func CommentContent(content string) error {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return newRuleError("content", "content cannot be blank")
	}
	if utf8.RuneCountInString(trimmed) > MaxContentLength {
		return newRuleError("content", "content must be at most %d characters", MaxContentLength)
	}
	return nil
}
