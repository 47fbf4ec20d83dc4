package handler

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/skillwave/skillwave-api/internal/httputil"
	"github.com/skillwave/skillwave-api/internal/upload"
)

// UploadHandler serves the standalone file upload route.
type UploadHandler struct {
	saver  *upload.Saver
	logger *zerolog.Logger
}

func NewUploadHandler(saver *upload.Saver, logger *zerolog.Logger) *UploadHandler {
	return &UploadHandler{saver: saver, logger: logger}
}

// Upload handles POST /upload.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, "No file uploaded.")
		return
	}
	defer file.Close()

	stored, err := h.saver.Save("file", header)
	if err != nil {
		if errors.Is(err, upload.ErrUnsupportedFileType) {
			httputil.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		serverError(w, h.logger, err)
		return
	}

	httputil.JSON(w, http.StatusOK, httputil.M{
		"message":  "File uploaded successfully",
		"success":  true,
		"filePath": stored.Path,
	})
}
