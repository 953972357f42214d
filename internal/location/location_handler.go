package location

import (
	"net/http"

	"github.com/riooastfu/pastimobile-be/internal/shared/apperror"
	"github.com/riooastfu/pastimobile-be/internal/shared/response"

	"github.com/gin-gonic/gin"
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

// GetRadius memakai id_role dari token, bukan dari query.
func (h *Handler) GetRadius(c *gin.Context) {
	resp, err := h.service.GetRadiusByRole(c.Request.Context(), c.GetString("id_role"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, "Data radius absen by role berhasil diambil.")
}

func (h *Handler) ListActive(c *gin.Context) {
	resp, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, "Data lokasi berhasil diambil.")
}
