package analyses

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-matcher/internal/extract"
	"resume-matcher/internal/shared/metrics"
	"resume-matcher/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc            *Service
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 5 << 20
	}
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
}

// analyze accepts a multipart form with a job_description field plus either
// a resume file or a resume_text field, runs the pipeline and returns the
// full analysis payload.
func (h *Handler) analyze(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)

	if err := c.Request.ParseMultipartForm(h.MaxUploadBytes); err != nil {
		metrics.IncMatchRejected()
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large") {
			respond.Error(c, http.StatusRequestEntityTooLarge, "payload_too_large", "request exceeds the upload size limit", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "request must be multipart/form-data", nil)
		return
	}

	jobText := strings.TrimSpace(c.PostForm("job_description"))
	if jobText == "" {
		metrics.IncMatchRejected()
		respond.Error(c, http.StatusBadRequest, "validation_error", "job_description is required", nil)
		return
	}

	resumeText, ok := h.resumeText(c)
	if !ok {
		return
	}

	result := h.Svc.Analyze(resumeText, jobText)
	c.Set("analysisId", result.AnalysisID)

	respond.OK(c, result)
}

// resumeText resolves the resume from the form: an uploaded file wins over
// the resume_text field. On failure it writes the error response itself.
func (h *Handler) resumeText(c *gin.Context) (string, bool) {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		if text := strings.TrimSpace(c.PostForm("resume_text")); text != "" {
			return text, true
		}
		metrics.IncMatchRejected()
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume file or resume_text is required", nil)
		return "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		metrics.IncMatchRejected()
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read resume file", nil)
		return "", false
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		metrics.IncMatchRejected()
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read resume file", nil)
		return "", false
	}

	text, err := extract.Text(c.Request.Context(), raw, fileHeader.Header.Get("Content-Type"), fileHeader.Filename)
	if err != nil {
		metrics.IncMatchRejected()
		respond.Error(c, http.StatusBadRequest, "unsupported_file_type", err.Error(), nil)
		return "", false
	}
	return text, true
}
