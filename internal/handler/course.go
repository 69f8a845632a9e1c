package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/farhananowshin/SkillBridge/internal/model"
)

const (
	catalogCacheKey = "catalog:courses"
	catalogCacheTTL = 30 * time.Second
)

func courseCacheKey(id uuid.UUID) string {
	return "catalog:course:" + id.String()
}

type CourseHandler struct {
	catalogService CatalogService
	enrollments    EnrollmentService
	cache          Cache
}

func NewCourseHandler(catalogService CatalogService, enrollments EnrollmentService, cache Cache) *CourseHandler {
	return &CourseHandler{catalogService: catalogService, enrollments: enrollments, cache: cache}
}

type createCourseRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	MentorId    uuid.UUID  `json:"mentor_id"`
	ImageFileId *uuid.UUID `json:"image_file_id"`
}

func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCourseRequest
	if err := decodeBody(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	course, err := h.catalogService.CreateCourse(r.Context(), &model.CreateCourseInput{
		Title:       req.Title,
		Description: req.Description,
		MentorId:    req.MentorId,
		ImageFileId: req.ImageFileId,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.cache.Delete(r.Context(), catalogCacheKey)
	writeJSON(w, http.StatusCreated, toCourseResponse(course))
}

// List serves the public catalog. The unfiltered listing is cached;
// searches and listings with per-caller enrollment flags go straight
// to Postgres.
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := &model.CourseFilter{Search: r.URL.Query().Get("search")}
	if mentor := r.URL.Query().Get("mentor_id"); mentor != "" {
		id, err := uuid.Parse(mentor)
		if err != nil {
			writeErrorJSON(w, http.StatusBadRequest, "invalid mentor_id")
			return
		}
		filter.MentorId = id
	}

	enrolledIDs, err := h.enrollments.ListMyCourseIDs(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	cacheable := filter.Search == "" && filter.MentorId == uuid.Nil && len(enrolledIDs) == 0
	if cacheable {
		if data, ok := h.cache.Get(r.Context(), catalogCacheKey); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write(data)
			return
		}
	}

	courses, err := h.catalogService.ListCourses(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := toCourseResponses(courses)
	if len(enrolledIDs) > 0 {
		enrolled := make(map[uuid.UUID]bool, len(enrolledIDs))
		for _, id := range enrolledIDs {
			enrolled[id] = true
		}
		for _, c := range resp {
			c.Enrolled = enrolled[c.Id]
		}
	}

	data, err := json.Marshal(resp)
	if err != nil {
		writeErrorJSON(w, http.StatusInternalServerError, "failed to serialize response")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)

	if cacheable {
		h.cache.Set(r.Context(), catalogCacheKey, data, catalogCacheTTL)
	}
}

func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "courseID")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	key := courseCacheKey(id)
	if data, ok := h.cache.Get(r.Context(), key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
		return
	}

	course, err := h.catalogService.GetCourse(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	data, err := json.Marshal(toCourseResponse(course))
	if err != nil {
		writeErrorJSON(w, http.StatusInternalServerError, "failed to serialize response")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
	h.cache.Set(r.Context(), key, data, catalogCacheTTL)
}

type updateCourseRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	ImageFileId *uuid.UUID `json:"image_file_id"`
}

func (h *CourseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "courseID")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req updateCourseRequest
	if err := decodeBody(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	course, err := h.catalogService.UpdateCourse(r.Context(), id, &model.UpdateCourseInput{
		Title:       req.Title,
		Description: req.Description,
		ImageFileId: req.ImageFileId,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.cache.Delete(r.Context(), catalogCacheKey)
	h.cache.Delete(r.Context(), courseCacheKey(id))
	writeJSON(w, http.StatusOK, toCourseResponse(course))
}

func (h *CourseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "courseID")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.catalogService.DeleteCourse(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.cache.Delete(r.Context(), catalogCacheKey)
	h.cache.Delete(r.Context(), courseCacheKey(id))
	w.WriteHeader(http.StatusNoContent)
}
