package phone

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// ValidationResult contains the result of phone number validation.
type ValidationResult struct {
	IsValid             bool   `json:"is_valid"`
	E164Format          string `json:"e164_format"`
	InternationalFormat string `json:"international_format"`
	NationalFormat      string `json:"national_format"`
	CountryCode         string `json:"country_code"`
}

// Validate parses a phone number against a default region and returns its
// canonical formats. region is an ISO 3166-1 alpha-2 code; numbers that
// already carry a +country prefix ignore it.
func Validate(phone, region string) (*ValidationResult, error) {
	if phone == "" {
		return nil, fmt.Errorf("phone number cannot be empty")
	}
	if region == "" {
		region = "AL"
	}

	parsed, err := phonenumbers.Parse(phone, region)
	if err != nil {
		return nil, fmt.Errorf("failed to parse phone number: %w", err)
	}

	return &ValidationResult{
		IsValid:             phonenumbers.IsValidNumber(parsed),
		E164Format:          phonenumbers.Format(parsed, phonenumbers.E164),
		InternationalFormat: phonenumbers.Format(parsed, phonenumbers.INTERNATIONAL),
		NationalFormat:      phonenumbers.Format(parsed, phonenumbers.NATIONAL),
		CountryCode:         phonenumbers.GetRegionCodeForNumber(parsed),
	}, nil
}

// IsValid reports whether a phone number parses as valid for the region.
func IsValid(phone, region string) bool {
	result, err := Validate(phone, region)
	return err == nil && result.IsValid
}

// NormalizeForSMS strips formatting characters from a scraped phone
// number and guarantees a leading plus, the shape SMS gateways expect.
// It deliberately does no validity check: delivery failures are reported
// per recipient by the gateway instead.
func NormalizeForSMS(phone string) string {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	if cleaned == "" {
		return ""
	}
	if !strings.HasPrefix(cleaned, "+") {
		cleaned = "+" + cleaned
	}
	return cleaned
}
