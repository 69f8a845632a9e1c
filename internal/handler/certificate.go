package handler

import (
	"net/http"
	"strconv"
)

type CertificateHandler struct {
	certificateService CertificateService
}

func NewCertificateHandler(certificateService CertificateService) *CertificateHandler {
	return &CertificateHandler{certificateService: certificateService}
}

func (h *CertificateHandler) GetEligibility(w http.ResponseWriter, r *http.Request) {
	courseID, err := parseUUIDParam(r, "courseID")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	eligibility, err := h.certificateService.Evaluate(r.Context(), courseID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, &eligibilityResponse{
		Eligible: eligibility.Eligible,
		Reason:   eligibility.Reason,
	})
}

// Download renders the certificate on the fly and streams the PNG.
func (h *CertificateHandler) Download(w http.ResponseWriter, r *http.Request) {
	courseID, err := parseUUIDParam(r, "courseID")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	document, err := h.certificateService.Issue(r.Context(), courseID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(document)))
	w.Header().Set("Content-Disposition", `attachment; filename="certificate.png"`)
	w.Write(document)
}
