package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/kimkuhyun/JH0103/internal/delivery/http/response"
	"github.com/kimkuhyun/JH0103/internal/domain/entity"
	"github.com/kimkuhyun/JH0103/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CompanyHandler holds dependencies for company research handlers.
type CompanyHandler struct {
	uc     usecase.CompanyUsecase
	logger *slog.Logger
}

// NewCompanyHandler is the constructor for CompanyHandler, injected by Fx.
func NewCompanyHandler(uc usecase.CompanyUsecase, logger *slog.Logger) *CompanyHandler {
	return &CompanyHandler{
		uc:     uc,
		logger: logger,
	}
}

// researchView is the wire shape of a stored research artifact.
type researchView struct {
	ID        int64           `json:"id"`
	JobID     int64           `json:"jobId"`
	Report    json.RawMessage `json:"report"`
	CreatedAt string          `json:"createdAt"`
}

// EnsureResearch handles the research trigger request. Repeated calls for the
// same job return the stored artifact without re-running the research.
func (h *CompanyHandler) EnsureResearch(c echo.Context) error {
	jobID, err := parseJobIDQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "jobId query parameter must be a number")
	}

	research, err := h.uc.EnsureResearch(c.Request().Context(), jobID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toResearchView(research), "Company research completed")
}

// GetResearch handles the research lookup request. Absence is a normal reply,
// not an error.
func (h *CompanyHandler) GetResearch(c echo.Context) error {
	jobID, err := parseJobIDQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "jobId query parameter must be a number")
	}

	research, err := h.uc.GetResearch(c.Request().Context(), jobID)
	if err != nil {
		return errors.WithStack(err)
	}

	if research == nil {
		return response.Success(c, http.StatusOK, map[string]any{"exists": false}, "No research stored for this job")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"exists":   true,
		"research": toResearchView(research),
	}, "Company research retrieved successfully")
}

func toResearchView(research *entity.CompanyResearch) *researchView {
	return &researchView{
		ID:        research.ID,
		JobID:     research.JobID,
		Report:    json.RawMessage(research.ResultPayload),
		CreatedAt: research.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func parseJobIDQuery(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.QueryParam("jobId"), 10, 64)
}
