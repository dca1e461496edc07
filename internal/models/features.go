package models

// FeatureNames lists the ten vector fields in model input order. The loaded
// models are positional, so this order is load-bearing everywhere a vector
// is turned into a row.
var FeatureNames = []string{
	"url_length",
	"has_ip_address",
	"https",
	"domain_age",
	"has_at_symbol",
	"redirects",
	"prefix_suffix",
	"sfh",
	"subdomains_count",
	"popup_window",
}

// FeatureCount is the fixed width of a feature vector.
const FeatureCount = 10

// DomainAgeFeatureCount is the width of the subvector the domain-age
// regressor takes.
const DomainAgeFeatureCount = 4

// FeatureVector is the fixed ten-field numeric encoding of a URL.
// Field order mirrors FeatureNames.
type FeatureVector struct {
	URLLength       float64 `json:"url_length"`
	HasIPAddress    float64 `json:"has_ip_address"`
	HTTPS           float64 `json:"https"`
	DomainAge       float64 `json:"domain_age"`
	HasAtSymbol     float64 `json:"has_at_symbol"`
	Redirects       float64 `json:"redirects"`
	PrefixSuffix    float64 `json:"prefix_suffix"`
	SFH             float64 `json:"sfh"`
	SubdomainsCount float64 `json:"subdomains_count"`
	PopupWindow     float64 `json:"popup_window"`
}

// Values returns the vector as a model input row, in canonical order.
func (v FeatureVector) Values() []float64 {
	return []float64{
		v.URLLength,
		v.HasIPAddress,
		v.HTTPS,
		v.DomainAge,
		v.HasAtSymbol,
		v.Redirects,
		v.PrefixSuffix,
		v.SFH,
		v.SubdomainsCount,
		v.PopupWindow,
	}
}

// DomainAgeInputs returns the four-element subvector the domain-age
// regressor was trained on: url_length, subdomains_count, redirects, https.
// The shape is model-specific and must not be widened.
func (v FeatureVector) DomainAgeInputs() []float64 {
	return []float64{v.URLLength, v.SubdomainsCount, v.Redirects, v.HTTPS}
}
