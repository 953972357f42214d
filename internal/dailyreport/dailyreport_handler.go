package dailyreport

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/riooastfu/pastimobile-be/internal/middleware"
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

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id_laporan"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, "Data laporan harian berhasil diambil.")
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateDailyReportRequest
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
	response.Success(c, http.StatusCreated, resp, "Data laporan harian berhasil ditambahkan.")
}

func (h *Handler) DeleteItem(c *gin.Context) {
	var req DeleteItemRequest
	// body kosong diperlakukan sama dengan field yang hilang
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	if err := h.service.DeleteItem(c.Request.Context(), req); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, nil, fmt.Sprintf(
		"Detail laporan dengan No Urut %d untuk ID Laporan %s berhasil dihapus.", *req.NoUrut, req.IDLaporan,
	))
}

func (h *Handler) DeleteByID(c *gin.Context) {
	resp, err := h.service.DeleteByID(c.Request.Context(), c.Param("id_laporan"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, fmt.Sprintf(
		"Berhasil menghapus %d detail laporan untuk ID Laporan %s.", resp.Deleted, resp.IDLaporan,
	))
}
