package handler

import (
	"net/http"

	"github.com/farhananowshin/SkillBridge/internal/ctxdata"
	"github.com/farhananowshin/SkillBridge/internal/errdefs"
)

type FileHandler struct {
	fileService FileService
}

func NewFileHandler(fileService FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

type initUploadRequest struct {
	Filename string `json:"filename"`
}

func (h *FileHandler) InitUpload(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ctxdata.GetUserID(r.Context())
	if !ok {
		writeServiceError(w, r, errdefs.ErrAuthentication)
		return
	}

	var req initUploadRequest
	if err := decodeBody(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	result, err := h.fileService.InitUpload(r.Context(), ownerID, req.Filename)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (h *FileHandler) GetDownloadURL(w http.ResponseWriter, r *http.Request) {
	fileID, err := parseUUIDParam(r, "fileID")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	url, err := h.fileService.GetFileURL(r.Context(), fileID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
