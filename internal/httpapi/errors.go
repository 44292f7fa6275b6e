package httpapi

import (
	"errors"
	"net/http"

	"github.com/alexanderramin/fuelplan/internal/app"
	"github.com/gin-gonic/gin"
)

type errorBody struct {
	Success bool              `json:"success"`
	Code    app.PlanErrorCode `json:"code"`
	Error   string            `json:"error"`
	Details []string          `json:"details,omitempty"`
	Report  *app.NamingReport `json:"report,omitempty"`
}

func statusFor(code app.PlanErrorCode) int {
	switch code {
	case app.ErrInvalidInput:
		return http.StatusBadRequest
	case app.ErrNamingDeviation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	writeErrorWithReport(c, err, nil)
}

func writeErrorWithReport(c *gin.Context, err error, report *app.NamingReport) {
	body := errorBody{Code: app.ErrInternal, Error: "internal error", Report: report}
	var pe *app.PlanError
	if errors.As(err, &pe) {
		body.Code = pe.Code
		body.Error = pe.Message
		body.Details = pe.Details
	}
	c.JSON(statusFor(body.Code), body)
}

func badRequest(c *gin.Context, err error) {
	writeError(c, &app.PlanError{
		Code:    app.ErrInvalidInput,
		Message: "malformed request body",
		Details: []string{err.Error()},
	})
}
