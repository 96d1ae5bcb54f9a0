package sanitizer

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Numbers without a country prefix are tried against these regions in order.
var supportedRegions = []string{
	"IL",
	"US",
}

// SanitizePhone returns phone in E.164 form, or "" when it is not a valid
// number in any supported region. Numbers written with a leading "+" are
// parsed as international.
func SanitizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}

	if strings.HasPrefix(phone, "+") {
		return formatIfValid(phone, "")
	}

	for _, region := range supportedRegions {
		if formatted := formatIfValid(phone, region); formatted != "" {
			return formatted
		}
	}
	return ""
}

func formatIfValid(phone, region string) string {
	parsed, err := phonenumbers.Parse(phone, region)
	if err != nil || !phonenumbers.IsValidNumber(parsed) {
		return ""
	}
	return phonenumbers.Format(parsed, phonenumbers.E164)
}
