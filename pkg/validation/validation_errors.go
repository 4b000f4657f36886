package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing labels
var FieldLabels = map[string]string{
	"Name":            "Name",
	"Email":           "Email",
	"Phone":           "Phone number",
	"Password":        "Password",
	"PasswordConfirm": "Password confirmation",
	"CurrentPassword": "Current password",
	"NewPassword":     "New password",
	"ConfirmPassword": "Password confirmation",

	"FirstName": "First name",
	"LastName":  "Last name",
	"Address":   "Address",
	"City":      "City",
	"State":     "State",
	"Country":   "Country",
	"ZipCode":   "Zip code",

	"Title":        "Title",
	"Description":  "Description",
	"Type":         "Job type",
	"ShiftType":    "Shift type",
	"DepartmentID": "Department",
	"Location":     "Location",
	"ExpiryDate":   "Expiry date",

	"Age":         "Age",
	"Dob":         "Date of birth",
	"Gender":      "Gender",
	"Score":       "Score",
	"URL":         "Resume URL",
	"CandidateID": "Candidate",
	"JobID":       "Job",
	"ResumeID":    "Resume",
}

// FormatValidationErrors converts validator.ValidationErrors into
// field-tagged messages, one per violated rule. Every violation is
// reported, not just the first.
func FormatValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	var messages []string
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at least %s", label, param)
	case "min_if_set":
		return fmt.Sprintf("%s: must be at least 3 characters when provided", label)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at most %s", label, param)
	case "oneof":
		return fmt.Sprintf("%s: must be one of: %s", label, strings.Join(strings.Fields(param), ", "))
	case "email":
		return fmt.Sprintf("%s: invalid email format", label)
	case "url":
		return fmt.Sprintf("%s: invalid URL format", label)
	case "uuid":
		return fmt.Sprintf("%s: invalid identifier", label)
	case "valid_phone":
		return fmt.Sprintf("%s: invalid phone number (7-15 digits, with/without +)", label)
	case "gt":
		return fmt.Sprintf("%s: must be greater than %s", label, param)
	case "eqfield":
		return fmt.Sprintf("%s: must match %s", label, getFieldLabel(param))
	default:
		return fmt.Sprintf("%s: failed validation (%s)", label, e.Tag())
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
