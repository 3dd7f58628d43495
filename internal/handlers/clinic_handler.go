package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/dental-clinic/internal/clinic"
	"github.com/BruksfildServices01/dental-clinic/internal/httpresp"
)

type ClinicHandler struct{}

func NewClinicHandler() *ClinicHandler {
	return &ClinicHandler{}
}

type ClinicResponse struct {
	Name       string   `json:"name"`
	Tagline    string   `json:"tagline"`
	City       string   `json:"city"`
	Branches   []string `json:"branches"`
	Treatments []string `json:"treatments"`
	Offers     []string `json:"offers"`
	Highlights []string `json:"highlights"`
}

func (h *ClinicHandler) Show(c *gin.Context) {
	httpresp.OK(c, ClinicResponse{
		Name:       clinic.Name,
		Tagline:    clinic.Tagline,
		City:       clinic.City,
		Branches:   clinic.Branches(),
		Treatments: clinic.Treatments(),
		Offers:     clinic.Offers(),
		Highlights: clinic.Highlights(),
	})
}

func (h *ClinicHandler) ListBranches(c *gin.Context) {
	httpresp.List(c, clinic.Branches())
}

func (h *ClinicHandler) ListTreatments(c *gin.Context) {
	httpresp.List(c, clinic.Treatments())
}
