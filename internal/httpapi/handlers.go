package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/alexanderramin/fuelplan/internal/app"
	"github.com/alexanderramin/fuelplan/internal/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) computeTargets(c *gin.Context) {
	var req app.TargetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	targets, err := s.planner.ComputeTargets(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, targets)
}

func (s *Server) generateSkeleton(c *gin.Context) {
	var req app.SkeletonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	skeleton, err := s.planner.GenerateSkeleton(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, skeleton)
}

func (s *Server) plan(c *gin.Context) {
	var req app.SkeletonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := s.planner.Plan(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// verifyBody accepts named either as the raw text a model returned or as
// an already-decoded JSON object.
type verifyBody struct {
	Skeleton *domain.Skeleton `json:"skeleton"`
	Named    json.RawMessage  `json:"named"`
}

func (b verifyBody) namedText() (string, error) {
	raw := bytes.TrimSpace(b.Named)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", fmt.Errorf("named is required")
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	return string(raw), nil
}

func (s *Server) verifyNaming(c *gin.Context) {
	var body verifyBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	named, err := body.namedText()
	if err != nil {
		badRequest(c, err)
		return
	}
	report, err := s.planner.VerifyNaming(c.Request.Context(), app.VerifyRequest{Skeleton: body.Skeleton, Named: named})
	if err != nil {
		writeErrorWithReport(c, err, report)
		return
	}
	c.JSON(http.StatusOK, report)
}
