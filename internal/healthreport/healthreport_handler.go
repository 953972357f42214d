package healthreport

import (
	"errors"
	"io"
	"net/http"

	"github.com/riooastfu/pastimobile-be/internal/middleware"
	"github.com/riooastfu/pastimobile-be/internal/shared/apperror"
	"github.com/riooastfu/pastimobile-be/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const msgFound = "Data laporan kesehatan berhasil diambil."

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

func (h *Handler) GetByNIK(c *gin.Context) {
	resp, err := h.service.GetByNIK(c.Request.Context(), c.Param("nik"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, msgFound)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id_laporan"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, msgFound)
}

func (h *Handler) Search(c *gin.Context) {
	var req SearchByDateRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.GetByDate(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, msgFound)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateHealthReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	middleware.StoreIdempotentResponse(c, http.StatusCreated, resp)
	response.Success(c, http.StatusCreated, resp, "Laporan kesehatan berhasil ditambahkan.")
}

func (h *Handler) DeleteByID(c *gin.Context) {
	id := c.Param("id_laporan")
	if err := h.service.DeleteByID(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, nil, "Laporan kesehatan dengan ID "+id+" berhasil dihapus.")
}
