package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/farhananowshin/SkillBridge/internal/model"
)

type AssignmentHandler struct {
	submissionService SubmissionService
}

func NewAssignmentHandler(submissionService SubmissionService) *AssignmentHandler {
	return &AssignmentHandler{submissionService: submissionService}
}

type createAssignmentRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
}

func (h *AssignmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	courseID, err := parseUUIDParam(r, "courseID")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req createAssignmentRequest
	if err := decodeBody(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	assignment, err := h.submissionService.CreateAssignment(r.Context(), &model.CreateAssignmentInput{
		CourseId:    courseID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAssignmentResponse(assignment))
}

func (h *AssignmentHandler) List(w http.ResponseWriter, r *http.Request) {
	courseID, err := parseUUIDParam(r, "courseID")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	assignments, err := h.submissionService.ListAssignments(r.Context(), courseID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]*assignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, toAssignmentResponse(a))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *AssignmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "assignmentID")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	assignment, err := h.submissionService.GetAssignment(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAssignmentResponse(assignment))
}

func (h *AssignmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "assignmentID")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.submissionService.DeleteAssignment(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type submitAssignmentRequest struct {
	FileId *uuid.UUID `json:"file_id"`
}

// Submit records or replaces the caller's submission. Resubmitting is
// always allowed; there is no distinct status code for the overwrite.
func (h *AssignmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	assignmentID, err := parseUUIDParam(r, "assignmentID")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req submitAssignmentRequest
	if err := decodeBody(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	submission, err := h.submissionService.Submit(r.Context(), &model.SubmitAssignmentInput{
		AssignmentId: assignmentID,
		FileId:       req.FileId,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSubmissionResponse(submission))
}

func (h *AssignmentHandler) GetMySubmission(w http.ResponseWriter, r *http.Request) {
	assignmentID, err := parseUUIDParam(r, "assignmentID")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	submission, err := h.submissionService.GetMySubmission(r.Context(), assignmentID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSubmissionResponse(submission))
}

func (h *AssignmentHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	assignmentID, err := parseUUIDParam(r, "assignmentID")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	submissions, err := h.submissionService.ListSubmissions(r.Context(), assignmentID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]*submissionResponse, 0, len(submissions))
	for _, s := range submissions {
		out = append(out, toSubmissionResponse(s))
	}
	writeJSON(w, http.StatusOK, out)
}

type gradeRequest struct {
	Marks int32 `json:"marks"`
}

func (h *AssignmentHandler) Grade(w http.ResponseWriter, r *http.Request) {
	submissionID, err := parseUUIDParam(r, "submissionID")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req gradeRequest
	if err := decodeBody(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	submission, err := h.submissionService.Grade(r.Context(), &model.GradeSubmissionInput{
		SubmissionId: submissionID,
		Marks:        req.Marks,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSubmissionResponse(submission))
}
