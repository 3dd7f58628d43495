package clinic

import "slices"

// ===============================
// Page copy
// ===============================

const (
	Name     = "Tooth Fairy Dental Care"
	Tagline  = "Expert Dental Care Near You | Hyderabad"
	City     = "Hyderabad"
	Headline = "Painless, Affordable & Trusted by 1,00,000+ Happy Smiles"

	OffersTitle   = "Current Dental Offers"
	FormTitle     = "Book an Appointment"
	BranchesTitle = "Find a ToothFairy Clinic Near You"
	BookButton    = "Book an Appointment"

	WhyTitle = "Why Choose Tooth Fairy?"
	WhyIntro = "Tooth Fairy dental hospitals near you in Hyderabad are your trusted " +
		"destination for complete, compassionate, and advanced dental care."

	FooterLine = "Your dream smile is now just one visit away."

	// TreatmentPlaceholder is the label of the empty, non-selectable treatment option.
	TreatmentPlaceholder = "Select Treatment"
)

// ===============================
// Fixed data
// ===============================

var branches = []string{
	"Banjara Hills",
	"Kondapur",
	"Beeramguda",
}

var treatments = []string{
	"Myofunctional Therapy",
	"Root Canal + Same-day Crown",
	"Braces",
	"Invisalign",
	"Dental Implants",
	"Gum Treatment",
	"Teeth Cleaning",
	"Teeth Whitening",
}

var offers = []string{
	"20% Off on Myofunctional Therapy",
	"20% Off on Root Canal + Same-day Crown",
	"Braces from Rs. 34,999/- only",
	"Up to 50% off on Invisalign",
	"Dental Implants from Rs.19,999/-",
	"50% off on Gum Treatment",
	"Teeth Cleaning From Rs.2499/-",
	"Teeth Whitening from Rs. 4599/-",
	"Free X-ray , No Cost EMI",
}

var highlights = []string{
	"20 Experienced Doctors",
	"3 Branches in Hyderabad",
	"1L+ Happy Smiles",
	"25K+ Successful Implants",
	"50K+ Successful RCT’s",
	"Rated 4.9/5 on Google",
}

// Branches returns the clinic branches in display order. The first one is the form default.
func Branches() []string { return slices.Clone(branches) }

// Treatments returns the bookable treatments in display order.
func Treatments() []string { return slices.Clone(treatments) }

func Offers() []string { return slices.Clone(offers) }

func Highlights() []string { return slices.Clone(highlights) }

// DefaultBranch is preselected in a fresh appointment form.
func DefaultBranch() string { return branches[0] }

func IsBranch(name string) bool { return slices.Contains(branches, name) }

func IsTreatment(name string) bool { return slices.Contains(treatments, name) }

// NormalizeBranch maps anything that is not a known branch to the default one.
func NormalizeBranch(name string) string {
	if IsBranch(name) {
		return name
	}
	return DefaultBranch()
}

// BranchCardTitle is the heading shown on a branch locator card.
func BranchCardTitle(branch string) string {
	return branch + " | " + Name + " | " + City
}
