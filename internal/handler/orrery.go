package handler

import (
	"context"
	"errors"
	"net/http"

	"orrery-api/internal/catalog"
	"orrery-api/internal/client"
	"orrery-api/internal/models"
	"orrery-api/internal/orrery"
	"orrery-api/internal/scale"
	"orrery-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// OrreryHandler handles orrery mapping requests
type OrreryHandler struct {
	service OrreryService
}

// OrreryService interface for dependency injection
type OrreryService interface {
	Build(ctx context.Context, addr1, addr2, scaleQuery string) (*models.Report, error)
}

// NewOrreryHandler creates a new orrery handler
func NewOrreryHandler(svc OrreryService) *OrreryHandler {
	return &OrreryHandler{service: svc}
}

// Report handles GET /api/v1/orrery requests
//
//	@Summary		Map a body catalog between two addresses
//	@Description	Scales the catalog so the scale query's distance spans addr1 to addr2 and places each body along the heading.
//	@Tags			orrery
//	@Produce		json
//	@Param			addr1	query		string	true	"Origin address"
//	@Param			addr2	query		string	true	"Second address"
//	@Param			scale	query		string	true	"Scale query, e.g. distance from earth to the sun"
//	@Success		200		{object}	models.Report
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		422		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Failure		502		{object}	map[string]string
//	@Router			/api/v1/orrery [get]
func (h *OrreryHandler) Report(c *gin.Context) {
	report, status, msg := h.build(c)
	if report == nil {
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, report)
}

// Legacy handles GET / requests with the colon-delimited text report
//
//	@Summary	Map a body catalog between two addresses (text)
//	@Tags		orrery
//	@Produce	plain
//	@Param		addr1	query		string	true	"Origin address"
//	@Param		addr2	query		string	true	"Second address"
//	@Param		scale	query		string	true	"Scale query"
//	@Success	200		{string}	string	"distance:<miles>:<scale>: followed by name:<scaled>:<lat>:<lon>: lines"
//	@Router		/ [get]
func (h *OrreryHandler) Legacy(c *gin.Context) {
	report, status, msg := h.build(c)
	if report == nil {
		c.String(status, msg)
		return
	}
	c.String(http.StatusOK, orrery.Text(report))
}

const missingParams = "missing required query parameters 'addr1', 'addr2' and 'scale'"

// build runs the mapping for the request's query parameters. On failure the report is nil
// and status and msg describe the error response.
func (h *OrreryHandler) build(c *gin.Context) (*models.Report, int, string) {
	addr1 := c.Query("addr1")
	addr2 := c.Query("addr2")
	scaleQuery := c.Query("scale")

	if addr1 == "" || addr2 == "" || scaleQuery == "" {
		return nil, http.StatusBadRequest, missingParams
	}

	report, err := h.service.Build(c.Request.Context(), addr1, addr2, scaleQuery)
	if err != nil {
		status, msg := errorResponse(err)
		if status >= http.StatusInternalServerError {
			log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Mapping failed")
		} else {
			log.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("Mapping rejected")
		}
		return nil, status, msg
	}

	return report, http.StatusOK, ""
}

// errorResponse maps a service error to an HTTP status and a client-facing message.
func errorResponse(err error) (int, string) {
	var parseErr *catalog.ParseError

	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest, missingParams
	case errors.Is(err, client.ErrAddressNotFound):
		return http.StatusNotFound, "address not found"
	case errors.Is(err, scale.ErrNoScaleFound):
		return http.StatusUnprocessableEntity, "scale query answer contains no distance in kilometers"
	case errors.Is(err, orrery.ErrDivideByZero):
		return http.StatusUnprocessableEntity, "scale query resolved to a zero distance"
	case errors.Is(err, orrery.ErrInvalidScale):
		return http.StatusUnprocessableEntity, "scale query resolved to an unusable distance"
	case errors.Is(err, client.ErrUpstream):
		return http.StatusBadGateway, "upstream service unavailable"
	case errors.As(err, &parseErr), errors.Is(err, orrery.ErrEmptyCatalog):
		return http.StatusInternalServerError, "body catalog is unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
