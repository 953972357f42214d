package attendance

import (
	"net/http"
	"strings"

	"github.com/riooastfu/pastimobile-be/internal/shared/apperror"
	"github.com/riooastfu/pastimobile-be/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const (
	msgCheckIn  = "Berhasil Check-in."
	msgCheckOut = "Berhasil Check-out."
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) CheckIn(c *gin.Context) {
	resp, err := h.service.CheckIn(c.Request.Context(), submissionFromRequest(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, msgCheckIn)
}

func (h *Handler) CheckOut(c *gin.Context) {
	resp, err := h.service.CheckOut(c.Request.Context(), submissionFromRequest(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, msgCheckOut)
}

func (h *Handler) GetHistory(c *gin.Context) {
	pin := strings.TrimSpace(c.Param("pin"))

	resp, err := h.service.GetHistory(c.Request.Context(), pin)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, "Riwayat absensi ditemukan.")
}

// submissionFromRequest tidak memvalidasi apa pun; urutan validasi
// (file dulu, lalu field form) ada di service.
func submissionFromRequest(c *gin.Context) Submission {
	file, err := c.FormFile("image")
	if err != nil {
		file = nil
	}

	return Submission{
		Form: CheckRequest{
			Pin:        strings.TrimSpace(c.PostForm("pin")),
			ScanDate:   strings.TrimSpace(c.PostForm("scan_date")),
			Coordinate: strings.TrimSpace(c.PostForm("coordinate")),
		},
		Image:   file,
		BaseURL: requestBaseURL(c),
	}
}

func requestBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
	}
	return scheme + "://" + c.Request.Host
}
