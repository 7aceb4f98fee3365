package address

import "regexp"

// SouthAfricaCode is the only country with a province requirement.
const SouthAfricaCode = "ZA"

const UnknownValidationErrorMessage = "Unknown validation error"

var postalCodeRegex = regexp.MustCompile(`^\d+$`)

type Reason string

const (
	ReasonMissingAddress       Reason = "missing_address"
	ReasonMissingCountry       Reason = "missing_country"
	ReasonMissingPostalCode    Reason = "missing_postal_code"
	ReasonProvinceRequired     Reason = "province_required"
	ReasonPostalCodeNotNumeric Reason = "postal_code_not_numeric"
	ReasonMissingCountryName   Reason = "missing_country_name"
	ReasonMissingAddressLine   Reason = "missing_address_line"
)

// MissingField reports whether the reason stands for an absent required field
// rather than a present but malformed one.
func (r Reason) MissingField() bool {
	switch r {
	case ReasonMissingAddress, ReasonMissingCountry, ReasonMissingPostalCode:
		return true
	}
	return false
}

// ValidationError describes the first rule an address failed.
type ValidationError struct {
	Reason  Reason
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is matches ErrInvalidAddress for every validation error and
// ErrMissingRequiredField for absent required fields.
func (e *ValidationError) Is(target error) bool {
	switch target {
	case ErrInvalidAddress:
		return true
	case ErrMissingRequiredField:
		return e.Reason.MissingField()
	}
	return false
}

type rule struct {
	reason  Reason
	field   string
	message string
	// fails may assume every earlier rule passed.
	fails func(a *Address) bool
}

// rules is evaluated in order and the first failure decides both validity
// and the message.
var rules = []rule{
	{
		reason:  ReasonMissingAddress,
		field:   "address",
		message: "Address is required",
		fails:   func(a *Address) bool { return a == nil },
	},
	{
		reason:  ReasonMissingCountry,
		field:   "country",
		message: "Country is required",
		fails:   func(a *Address) bool { return a.Country == nil },
	},
	{
		reason:  ReasonMissingPostalCode,
		field:   "postalCode",
		message: "Postal code is required",
		fails:   func(a *Address) bool { return a.PostalCode == nil },
	},
	{
		reason:  ReasonProvinceRequired,
		field:   "provinceOrState",
		message: "Province is required for South Africa",
		fails: func(a *Address) bool {
			return a.Country.Code == SouthAfricaCode && !a.ProvinceOrState.IsNotNullNorBlank()
		},
	},
	{
		reason:  ReasonPostalCodeNotNumeric,
		field:   "postalCode",
		message: "Postal code must consist of numeric characters",
		fails:   func(a *Address) bool { return !postalCodeRegex.MatchString(*a.PostalCode) },
	},
	{
		reason:  ReasonMissingCountryName,
		field:   "country.name",
		message: "Country name is required",
		fails:   func(a *Address) bool { return a.Country.Name == "" },
	},
	{
		reason:  ReasonMissingAddressLine,
		field:   "addressLineDetail.line1",
		message: "At least one address line is required",
		fails: func(a *Address) bool {
			// Only emptiness is checked; a whitespace-only line passes.
			return a.AddressLineDetail == nil || a.AddressLineDetail.Line1 == ""
		},
	},
}

// Validate returns the first failed rule as a *ValidationError, or nil when
// the address is valid.
func Validate(addr *Address) *ValidationError {
	for _, r := range rules {
		if r.fails(addr) {
			return &ValidationError{
				Reason:  r.reason,
				Field:   r.field,
				Message: r.message,
			}
		}
	}
	return nil
}

func IsValidAddress(addr *Address) bool {
	return Validate(addr) == nil
}

// ValidationErrorMessage returns the message of the first failed rule, or
// UnknownValidationErrorMessage for an address that passes every rule.
func ValidationErrorMessage(addr *Address) string {
	if verr := Validate(addr); verr != nil {
		return verr.Message
	}
	return UnknownValidationErrorMessage
}

// Report is the validation outcome of one record in a batch.
type Report struct {
	Index   int    `json:"index"`
	ID      string `json:"id"`
	Valid   bool   `json:"valid"`
	Reason  Reason `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
}

// ValidateAddresses validates every record without stopping at failures.
func ValidateAddresses(addresses []*Address) []Report {
	reports := make([]Report, 0, len(addresses))
	for i, addr := range addresses {
		rep := Report{Index: i, Valid: true}
		if addr != nil {
			rep.ID = addr.ID
		}
		if verr := Validate(addr); verr != nil {
			rep.Valid = false
			rep.Reason = verr.Reason
			rep.Message = verr.Message
		}
		reports = append(reports, rep)
	}
	return reports
}
