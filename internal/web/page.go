package web

import (
	"github.com/BruksfildServices01/dental-clinic/internal/clinic"
	"github.com/BruksfildServices01/dental-clinic/internal/form"
)

const SuccessMessage = "Appointment submitted successfully!"

// Assets are the image URLs the page shell points at.
type Assets struct {
	LogoURL      string
	HeroImageURL string
}

// Page is everything page.html needs for one render.
type Page struct {
	Name     string
	Tagline  string
	Headline string

	LogoURL      string
	HeroImageURL string

	OffersTitle   string
	FormTitle     string
	BranchesTitle string
	BookButton    string

	Offers               []string
	Branches             []string
	Treatments           []string
	TreatmentPlaceholder string

	WhyTitle   string
	WhyIntro   string
	Highlights []string
	Footer     string

	Form           form.State
	FormAnchor     string
	SuccessMessage string

	// ScrollTo is the element the browser scrolls to once loaded, if any.
	ScrollTo     string
	SmoothScroll bool
}

func NewPage(assets Assets, st form.State) Page {
	return Page{
		Name:                 clinic.Name,
		Tagline:              clinic.Tagline,
		Headline:             clinic.Headline,
		LogoURL:              assets.LogoURL,
		HeroImageURL:         assets.HeroImageURL,
		OffersTitle:          clinic.OffersTitle,
		FormTitle:            clinic.FormTitle,
		BranchesTitle:        clinic.BranchesTitle,
		BookButton:           clinic.BookButton,
		Offers:               clinic.Offers(),
		Branches:             clinic.Branches(),
		Treatments:           clinic.Treatments(),
		TreatmentPlaceholder: clinic.TreatmentPlaceholder,
		WhyTitle:             clinic.WhyTitle,
		WhyIntro:             clinic.WhyIntro,
		Highlights:           clinic.Highlights(),
		Footer:               clinic.FooterLine,
		Form:                 st,
		FormAnchor:           form.FormAnchor,
		SuccessMessage:       SuccessMessage,
	}
}

func (p Page) WithScroll(anchor string, smooth bool) Page {
	p.ScrollTo = anchor
	p.SmoothScroll = smooth
	return p
}
