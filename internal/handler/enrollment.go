package handler

import (
	"net/http"
)

type EnrollmentHandler struct {
	enrollmentService EnrollmentService
}

func NewEnrollmentHandler(enrollmentService EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentService: enrollmentService}
}

func (h *EnrollmentHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	courseID, err := parseUUIDParam(r, "courseID")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	enrollment, err := h.enrollmentService.Enroll(r.Context(), courseID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEnrollmentResponse(enrollment))
}

func (h *EnrollmentHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	enrollments, err := h.enrollmentService.ListMine(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]*enrollmentResponse, 0, len(enrollments))
	for _, e := range enrollments {
		out = append(out, toEnrollmentResponse(e))
	}
	writeJSON(w, http.StatusOK, out)
}
