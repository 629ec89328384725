package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/okto-client/models"
)

// renderProfile shows the signed-in user and the stored profile with amounts
// in currency.
func renderProfile(session models.Session, currency string) string {
	var b strings.Builder

	if u := session.User; u != nil {
		fmt.Fprintf(&b, "Name:           %s %s\n", u.FirstName, u.LastName)
		fmt.Fprintf(&b, "Email:          %s\n", u.Email)
	}
	if !session.Claims.ExpiresAt.IsZero() {
		fmt.Fprintf(&b, "Session until:  %s\n", session.Claims.ExpiresAt.Local().Format("2006-01-02 15:04"))
	}
	b.WriteString("\n")

	p := session.Profile
	if p == nil {
		b.WriteString("No profile loaded")
		return renderPage("PROFILE", b.String(), "esc: back")
	}

	age := "-"
	if p.Age != nil {
		age = strconv.Itoa(*p.Age)
	}
	numLoans := "-"
	if p.NumLoans != nil {
		numLoans = strconv.Itoa(*p.NumLoans)
	}

	rows := [][2]string{
		{"Age", age},
		{"Region", valueOrDash(p.Region)},
		{"Employment", valueOrDash(p.Employment)},
		{"Gross income", formatAmount(p.AnnualGrossIncome, currency)},
		{"Housing", valueOrDash(p.HousingType)},
		{"Housing value", formatAmount(p.HousingValue, currency)},
		{"Loans", listOrDash(p.LoanTypes)},
		{"Number of loans", numLoans},
		{"Total debt", formatAmount(p.TotalDebt, currency)},
		{"Interest rate", valueOrDash(p.InterestRateType)},
		{"Vehicle", valueOrDash(p.VehicleType)},
		{"Savings", listOrDash(p.SavingsTypes)},
		{"Insurance", listOrDash(p.InsuranceTypes)},
		{"Breaking news", onOff(p.BreakingNews)},
		{"Daily digest", onOff(p.DailyDigest)},
		{"AI insights", onOff(p.AIInsights)},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "%-16s%s\n", r[0]+":", r[1])
	}

	if session.ErrorMessage != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(session.ErrorMessage))
	}

	return renderPage("PROFILE", strings.TrimRight(b.String(), "\n"), "e: edit │ x: log out │ esc: back")
}

// renderRetry is shown when a stored session could not be loaded.
func renderRetry(session models.Session, spin string) string {
	var b strings.Builder
	b.WriteString("Your saved session could not be loaded.\n")
	if session.ErrorMessage != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(session.ErrorMessage))
		b.WriteString("\n")
	}
	if session.Loading {
		b.WriteString("\n")
		b.WriteString(spin)
		b.WriteString(" Retrying...")
	}
	return renderPage("SESSION", strings.TrimRight(b.String(), "\n"), "r: retry │ x: log out │ q: quit")
}

func renderLoading(spin string) string {
	return renderPage("OKTO", spin+" Signing in...", "")
}
