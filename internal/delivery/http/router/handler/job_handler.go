// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/kimkuhyun/JH0103/internal/delivery/http/response"
	"github.com/kimkuhyun/JH0103/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// JobHandler holds dependencies for job-related handlers.
type JobHandler struct {
	uc     usecase.JobUsecase
	logger *slog.Logger
}

// NewJobHandler is the constructor for JobHandler, injected by Fx.
func NewJobHandler(uc usecase.JobUsecase, logger *slog.Logger) *JobHandler {
	return &JobHandler{
		uc:     uc,
		logger: logger,
	}
}

// updateStatusRequest is the body of the status change endpoint.
type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Ingest handles the agent's job capture POST. The payload is free-form JSON;
// extraction fallbacks live in the use case, so binding only rejects non-JSON.
func (h *JobHandler) Ingest(c echo.Context) error {
	var payload map[string]any
	if err := c.Bind(&payload); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Request body must be a JSON object")
	}

	output, err := h.uc.IngestJob(c.Request().Context(), usecase.IngestJobInput{Payload: payload})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.Job, "Job saved successfully")
}

// List handles the job list request, newest first.
func (h *JobHandler) List(c echo.Context) error {
	jobs, err := h.uc.ListJobs(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, jobs, "Jobs retrieved successfully")
}

// UpdateStatus handles the status change request.
func (h *JobHandler) UpdateStatus(c echo.Context) error {
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Job ID must be a number")
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Status is required")
	}

	job, err := h.uc.UpdateStatus(c.Request().Context(), usecase.UpdateJobStatusInput{
		JobID:  jobID,
		Status: req.Status,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, job, "Job status updated successfully")
}

// Delete handles the job deletion request.
func (h *JobHandler) Delete(c echo.Context) error {
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Job ID must be a number")
	}

	if err := h.uc.DeleteJob(c.Request().Context(), jobID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"deletedJobId": jobID}, "Job deleted successfully")
}

func parseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
