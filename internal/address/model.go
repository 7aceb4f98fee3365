package address

import "strings"

type Address struct {
	ID   string `json:"id"`
	Type *Type  `json:"type"`

	AddressLineDetail *LineDetail      `json:"addressLineDetail"`
	ProvinceOrState   *ProvinceOrState `json:"provinceOrState"`

	CityOrTown string   `json:"cityOrTown"`
	Country    *Country `json:"country"`
	PostalCode *string  `json:"postalCode"`

	SuburbOrDistrict string `json:"suburbOrDistrict"`
	LastUpdated      string `json:"lastUpdated"`
}

// Type classifies an address, e.g. "Physical Address" or "Postal Address".
type Type struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type LineDetail struct {
	Line1 string `json:"line1"`
	Line2 string `json:"line2"`
}

// IsBlankOrNull reports whether the primary line is missing or whitespace only.
func (d *LineDetail) IsBlankOrNull() bool {
	return d == nil || strings.TrimSpace(d.Line1) == ""
}

// FormattedLineDetail joins both lines with " - ", or returns Line1 alone
// when there is no secondary line.
func (d *LineDetail) FormattedLineDetail() string {
	if d.Line2 == "" {
		return d.Line1
	}
	return d.Line1 + " - " + d.Line2
}

type ProvinceOrState struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func (p *ProvinceOrState) IsNotNullNorBlank() bool {
	return p != nil && p.Name != ""
}

type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// PostalCodeValue returns the postal code or "" when it is missing.
func (a *Address) PostalCodeValue() string {
	if a.PostalCode == nil {
		return ""
	}
	return *a.PostalCode
}
