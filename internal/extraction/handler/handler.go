package handler

import (
	"io"
	"net/http"

	"github.com/admindocx/admindoc-backend/internal/extraction/service"
	"github.com/admindocx/admindoc-backend/internal/extraction/storage"
	"github.com/admindocx/admindoc-backend/pkg/errors"
	"github.com/admindocx/admindoc-backend/pkg/httputil"
	"github.com/admindocx/admindoc-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// Handler handles HTTP requests for document extraction
type Handler struct {
	service       *service.Service
	log           *logger.Logger
	maxUploadSize int64
}

// NewHandler creates a new document extraction handler
func NewHandler(svc *service.Service, log *logger.Logger, maxUploadMB int) *Handler {
	if maxUploadMB <= 0 {
		maxUploadMB = 20
	}
	return &Handler{
		service:       svc,
		log:           log,
		maxUploadSize: int64(maxUploadMB) << 20,
	}
}

// Process handles POST /documents/process
// Accepts a multipart form with a single "file" field holding the
// document image. Input errors reject the request before the extraction
// engine runs; once past validation the caller always receives a
// structurally valid record.
func (h *Handler) Process(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		httputil.Error(w, errors.BadRequest("File too large or invalid multipart form"))
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		httputil.Error(w, errors.BadRequest("No file provided"))
		return
	}
	defer file.Close()

	imageData, err := io.ReadAll(file)
	if err != nil {
		httputil.Error(w, errors.Internal("Failed to read uploaded file"))
		return
	}
	if len(imageData) == 0 {
		httputil.Error(w, errors.BadRequest("Empty file"))
		return
	}

	fileID := storage.GenerateFileID()
	record := h.service.ProcessImage(r.Context(), fileID, imageData)

	httputil.JSON(w, http.StatusOK, record)
}

// ProcessTextRequest is the JSON body for text-based processing, for
// callers that already hold recognized text.
type ProcessTextRequest struct {
	Text   string `json:"text" validate:"required"`
	FileID string `json:"file_id" validate:"omitempty,len=8"`
}

// ProcessText handles POST /documents/process/text
func (h *Handler) ProcessText(w http.ResponseWriter, r *http.Request) {
	var req ProcessTextRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}
	if err := httputil.Validate(req); err != nil {
		httputil.Error(w, err)
		return
	}

	fileID := req.FileID
	if fileID == "" {
		fileID = storage.GenerateFileID()
	}

	record := h.service.ProcessText(r.Context(), fileID, req.Text, nil)

	httputil.JSON(w, http.StatusOK, record)
}

// GetResult handles GET /documents/{fileID}
// Returns a recently processed record by file ID.
func (h *Handler) GetResult(w http.ResponseWriter, r *http.Request) {
	fileID := chi.URLParam(r, "fileID")
	if fileID == "" {
		httputil.Error(w, errors.BadRequest("Missing fileID parameter"))
		return
	}

	record := h.service.GetRecord(fileID)
	if record == nil {
		httputil.Error(w, errors.NotFound("document record"))
		return
	}

	httputil.JSON(w, http.StatusOK, record)
}
