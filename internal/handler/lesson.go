package handler

import (
	"net/http"

	"github.com/farhananowshin/SkillBridge/internal/model"
)

type LessonHandler struct {
	catalogService CatalogService
}

func NewLessonHandler(catalogService CatalogService) *LessonHandler {
	return &LessonHandler{catalogService: catalogService}
}

type createLessonRequest struct {
	Title    string  `json:"title"`
	VideoURL *string `json:"video_url"`
	Content  string  `json:"content"`
	Order    int32   `json:"order"`
}

func (h *LessonHandler) Create(w http.ResponseWriter, r *http.Request) {
	courseID, err := parseUUIDParam(r, "courseID")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req createLessonRequest
	if err := decodeBody(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	lesson, err := h.catalogService.CreateLesson(r.Context(), &model.CreateLessonInput{
		CourseId: courseID,
		Title:    req.Title,
		VideoURL: req.VideoURL,
		Content:  req.Content,
		Order:    req.Order,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toLessonResponse(lesson))
}

func (h *LessonHandler) List(w http.ResponseWriter, r *http.Request) {
	courseID, err := parseUUIDParam(r, "courseID")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	lessons, err := h.catalogService.ListLessons(r.Context(), courseID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]*lessonResponse, 0, len(lessons))
	for _, l := range lessons {
		out = append(out, toLessonResponse(l))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get serves the lesson reading view: the lesson body plus the ids of
// its neighbours so the client can render prev/next links.
func (h *LessonHandler) Get(w http.ResponseWriter, r *http.Request) {
	courseID, err := parseUUIDParam(r, "courseID")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	lessonID, err := parseUUIDParam(r, "lessonID")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	page, err := h.catalogService.GetLessonPage(r.Context(), courseID, lessonID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLessonPageResponse(page))
}

type updateLessonRequest struct {
	Title    *string `json:"title"`
	VideoURL *string `json:"video_url"`
	Content  *string `json:"content"`
	Order    *int32  `json:"order"`
}

func (h *LessonHandler) Update(w http.ResponseWriter, r *http.Request) {
	lessonID, err := parseUUIDParam(r, "lessonID")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req updateLessonRequest
	if err := decodeBody(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	lesson, err := h.catalogService.UpdateLesson(r.Context(), lessonID, &model.UpdateLessonInput{
		Title:    req.Title,
		VideoURL: req.VideoURL,
		Content:  req.Content,
		Order:    req.Order,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLessonResponse(lesson))
}

func (h *LessonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	lessonID, err := parseUUIDParam(r, "lessonID")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.catalogService.DeleteLesson(r.Context(), lessonID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
