package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// User is the authenticated account.
type User struct {
	ID           int    `json:"id"`
	UUID         string `json:"uuid"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Role         string `json:"user_role"`
	RegisteredAt string `json:"registered_at"`
}

// AuthResponse is returned by login and registration.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Date is a nullable calendar date encoded as YYYY-MM-DD.
type Date struct {
	time.Time
	Valid bool
}

const dateLayout = "2006-01-02"

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		*d = Date{}
		return nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		t, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return fmt.Errorf("parse date %q: %w", raw, err)
		}
	}
	*d = Date{Time: t, Valid: true}
	return nil
}

func (d Date) String() string {
	if !d.Valid {
		return ""
	}
	return d.Format(dateLayout)
}

// CompanySummary is one row of a search result page.
type CompanySummary struct {
	Firmenbuchnummer string   `json:"firmenbuchnummer"`
	Name             string   `json:"name"`
	LegalForm        string   `json:"legal_form"`
	BusinessPurpose  string   `json:"business_purpose"`
	Seat             string   `json:"seat"`
	RiskScore        *float64 `json:"riskScore"`
}

// RiskLevel returns High, Medium, Low or N/A.
func (c CompanySummary) RiskLevel() string { return RiskLevel(c.RiskScore) }

// Company is a full registry record.
type Company struct {
	Firmenbuchnummer string             `json:"firmenbuchnummer"`
	Name             string             `json:"name"`
	LegalForm        string             `json:"legal_form"`
	BusinessPurpose  string             `json:"business_purpose"`
	Seat             string             `json:"seat"`
	Address          *Address           `json:"address"`
	Partners         []Partner          `json:"partners"`
	RegistryEntries  []RegistryEntry    `json:"registry_entries"`
	RiskScore        *float64           `json:"riskScore"`
	RiskIndicators   map[string]float64 `json:"riskIndicators"`
	ReferenceDate    Date               `json:"reference_date"`
}

func (c Company) RiskLevel() string { return RiskLevel(c.RiskScore) }

func (c Company) PartnerCount() int { return len(c.Partners) }

func (c Company) RegistryEntryCount() int { return len(c.RegistryEntries) }

// HasRiskData reports whether a score or any indicator is present.
func (c Company) HasRiskData() bool {
	return c.RiskScore != nil || len(c.RiskIndicators) > 0
}

// Summary projects the record onto the fields shown in result lists.
func (c Company) Summary() CompanySummary {
	return CompanySummary{
		Firmenbuchnummer: c.Firmenbuchnummer,
		Name:             c.Name,
		LegalForm:        c.LegalForm,
		BusinessPurpose:  c.BusinessPurpose,
		Seat:             c.Seat,
		RiskScore:        c.RiskScore,
	}
}

// Address is a postal address; every part is optional.
type Address struct {
	Street      string `json:"street"`
	HouseNumber string `json:"house_number"`
	PostalCode  string `json:"postal_code"`
	City        string `json:"city"`
	Country     string `json:"country"`
}

// FormatFull joins the present parts as "Street 1, 1010 Wien, Austria".
func (a Address) FormatFull() string {
	var parts []string
	if a.Street != "" {
		line := a.Street
		if a.HouseNumber != "" {
			line += " " + a.HouseNumber
		}
		parts = append(parts, line)
	}
	switch {
	case a.PostalCode != "":
		line := a.PostalCode
		if a.City != "" {
			line += " " + a.City
		}
		parts = append(parts, line)
	case a.City != "":
		parts = append(parts, a.City)
	}
	if a.Country != "" {
		parts = append(parts, a.Country)
	}
	return strings.Join(parts, ", ")
}

// Partner is a person or legal entity attached to a company.
type Partner struct {
	Name           string `json:"name"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	BirthDate      Date   `json:"birth_date"`
	Role           string `json:"role"`
	Representation string `json:"representation"`
}

// FormatName prefers the entity name, then first and last name, then "Unknown".
func (p Partner) FormatName() string {
	if p.Name != "" {
		return p.Name
	}
	var parts []string
	if p.FirstName != "" {
		parts = append(parts, p.FirstName)
	}
	if p.LastName != "" {
		parts = append(parts, p.LastName)
	}
	if len(parts) == 0 {
		return "Unknown"
	}
	return strings.Join(parts, " ")
}

type RegistryEntry struct {
	Type             string `json:"type"`
	Court            string `json:"court"`
	FileNumber       string `json:"file_number"`
	ApplicationDate  Date   `json:"application_date"`
	RegistrationDate Date   `json:"registration_date"`
}

// SearchParams selects one page of a company search.
type SearchParams struct {
	Query  string
	Page   int
	Limit  int
	Cities []string
}

type SearchResponse struct {
	Companies []CompanySummary `json:"companies"`
	Total     int              `json:"total"`
}

type SearchSuggestion struct {
	Firmenbuchnummer string `json:"firmenbuchnummer"`
	Name             string `json:"name"`
}

type City struct {
	City  string `json:"city"`
	Count int    `json:"count"`
}

type Metrics struct {
	TotalCompanies       int64 `json:"total_companies"`
	TotalAddresses       int64 `json:"total_addresses"`
	TotalPartners        int64 `json:"total_partners"`
	TotalRegistryEntries int64 `json:"total_registry_entries"`
}

type Recommendation struct {
	Firmenbuchnummer string `json:"firmenbuchnummer"`
	Name             string `json:"name"`
	Views            int64  `json:"views"`
}

// RiskLevel buckets a risk score: >= 0.7 High, >= 0.4 Medium, else Low.
func RiskLevel(score *float64) string {
	switch {
	case score == nil:
		return "N/A"
	case *score >= 0.7:
		return "High"
	case *score >= 0.4:
		return "Medium"
	default:
		return "Low"
	}
}

// RiskIndicator pairs an indicator key with its display label.
type RiskIndicator struct {
	Key   string
	Label string
}

// RiskIndicators lists the known indicators in display order.
var RiskIndicators = []RiskIndicator{
	{"debt_to_equity_ratio", "Debt to Equity Ratio"},
	{"cash_ratio", "Cash Ratio"},
	{"debt_to_assets", "Debt to Assets"},
	{"equity_ratio", "Equity Ratio"},
	{"concentration_risk", "Concentration Risk"},
	{"deferred_income_reliance", "Deferred Income Reliance"},
	{"balance_sheet_volatility", "Balance Sheet Volatility"},
	{"irregular_fiscal_year", "Irregular Fiscal Year"},
	{"compliance_status", "Compliance Status"},
	{"growth_revenue", "Revenue Growth"},
	{"operational_result_profit", "Operational Profit"},
}

// RiskIndicatorName returns the label for key, or key itself when unknown.
func RiskIndicatorName(key string) string {
	for _, ind := range RiskIndicators {
		if ind.Key == key {
			return ind.Label
		}
	}
	return key
}

// OrderedIndicators returns the indicator keys present in values, known
// indicators first in table order, then unknown keys alphabetically.
func OrderedIndicators(values map[string]float64) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, ind := range RiskIndicators {
		if _, ok := values[ind.Key]; ok {
			out = append(out, ind.Key)
			seen[ind.Key] = struct{}{}
		}
	}
	var extra []string
	for key := range values {
		if _, ok := seen[key]; !ok {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}
