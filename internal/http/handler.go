package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nurpe/buildcost-estimates/internal/http/middleware"
	"github.com/nurpe/buildcost-estimates/internal/model"
	"github.com/nurpe/buildcost-estimates/internal/service"
)

type Handler struct {
	estimates *service.EstimateService
	log       zerolog.Logger
}

func NewHandler(estimates *service.EstimateService, log zerolog.Logger) *Handler {
	return &Handler{estimates: estimates, log: log}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	protected := router.Group("/")
	protected.Use(authMiddleware)
	protected.POST("/estimates", h.createEstimate)
	protected.GET("/estimates", h.listEstimates)
	protected.GET("/estimates/:id", h.getEstimate)
	protected.POST("/estimates/adjust", h.adjustEstimate)
	protected.POST("/estimates/brand", h.applyBrand)
	protected.GET("/brands", h.listBrands)
	protected.POST("/estimates/export", h.exportExcel)
	protected.POST("/estimates/export/pdf", h.exportPDF)
}

type createEstimateRequest struct {
	ProjectType  string  `json:"projectType" binding:"required"`
	Length       float64 `json:"length" binding:"required"`
	Width        float64 `json:"width" binding:"required"`
	Height       float64 `json:"height"`
	Location     string  `json:"location"`
	QualityLevel string  `json:"qualityLevel" binding:"required"`
	Mode         string  `json:"estimationMode"`
	Zone         string  `json:"zone"`
	Adjust       bool    `json:"adjust"`

	Rooms     *int `json:"rooms"`
	Bathrooms *int `json:"bathrooms"`
	Floors    *int `json:"floors"`

	FoundationType string `json:"foundationType"`
	StructureType  string `json:"structureType"`
	RoofingType    string `json:"roofingType"`
	WallFinish     string `json:"wallFinish"`
	FloorFinish    string `json:"floorFinish"`
	WindowType     string `json:"windowType"`
	DoorType       string `json:"doorType"`

	IncludeElectrical *bool `json:"includeElectrical"`
	IncludePlumbing   *bool `json:"includePlumbing"`
	IncludeFinishing  *bool `json:"includeFinishing"`
}

type createEstimateResponse struct {
	Estimate         *model.EstimateResult `json:"estimate"`
	AdjustmentSource string                `json:"adjustmentSource,omitempty"`
	RegionMultiplier float64               `json:"regionMultiplier"`
}

func (h *Handler) createEstimate(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req createEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input, err := req.toProjectInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.estimates.CreateEstimate(c.Request.Context(), service.CreateEstimateInput{
		Project:   input,
		Adjust:    req.Adjust,
		Principal: principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, createEstimateResponse{
		Estimate:         result.Estimate,
		AdjustmentSource: result.AdjustmentSource,
		RegionMultiplier: result.RegionMultiplier,
	})
}

func (h *Handler) getEstimate(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	saved, err := h.estimates.GetEstimate(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved.Estimate)
}

func (h *Handler) listEstimates(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	saved, err := h.estimates.ListEstimates(c.Request.Context(), principal, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	estimates := make([]model.EstimateResult, 0, len(saved))
	for _, s := range saved {
		estimates = append(estimates, s.Estimate)
	}
	c.JSON(http.StatusOK, gin.H{"estimates": estimates})
}

type adjustEstimateRequest struct {
	Estimate model.EstimateResult `json:"estimate" binding:"required"`
	Location string               `json:"location" binding:"required"`
}

func (h *Handler) adjustEstimate(c *gin.Context) {
	var req adjustEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	adjusted, err := h.estimates.AdjustEstimate(c.Request.Context(), &req.Estimate, req.Location)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"estimate":     adjusted.Result,
		"multiplier":   adjusted.Multiplier,
		"source":       adjusted.Source,
		"reasoning":    adjusted.Reasoning,
		"marketTrends": adjusted.MarketTrends,
	})
}

type applyBrandRequest struct {
	Estimate  model.EstimateResult `json:"estimate" binding:"required"`
	LineIndex *int                 `json:"lineIndex" binding:"required"`
	Brand     string               `json:"brand" binding:"required"`
}

func (h *Handler) applyBrand(c *gin.Context) {
	var req applyBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.estimates.ApplyBrand(&req.Estimate, *req.LineIndex, req.Brand)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) listBrands(c *gin.Context) {
	material := strings.TrimSpace(c.Query("material"))
	if material == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "material is required"})
		return
	}
	location := c.Query("location")

	c.JSON(http.StatusOK, gin.H{"brands": h.estimates.BrandsForMaterial(material, location)})
}

type exportEstimateRequest struct {
	Estimate model.EstimateResult `json:"estimate" binding:"required"`
}

func (h *Handler) exportExcel(c *gin.Context) {
	var req exportEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.estimates.ExportExcel(req.Estimate)
	if err != nil {
		h.handleError(c, err)
		return
	}

	const contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, contentType, result.Content)
}

func (h *Handler) exportPDF(c *gin.Context) {
	var req exportEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.estimates.ExportPDF(req.Estimate)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Msg("estimate request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func (req createEstimateRequest) toProjectInput() (model.ProjectInput, error) {
	projectType, ok := model.ParseProjectType(req.ProjectType)
	if !ok {
		return model.ProjectInput{}, errors.New("invalid projectType")
	}
	quality, ok := model.ParseQualityLevel(req.QualityLevel)
	if !ok {
		return model.ProjectInput{}, errors.New("invalid qualityLevel")
	}

	mode := model.ModeSimple
	if strings.EqualFold(strings.TrimSpace(req.Mode), string(model.ModeAdvanced)) {
		mode = model.ModeAdvanced
	}

	var zone model.Zone
	switch strings.ToLower(strings.TrimSpace(req.Zone)) {
	case "urban":
		zone = model.ZoneUrban
	case "rural":
		zone = model.ZoneRural
	case "":
	default:
		return model.ProjectInput{}, errors.New("invalid zone")
	}

	return model.ProjectInput{
		ProjectType:       projectType,
		Length:            req.Length,
		Width:             req.Width,
		Height:            req.Height,
		Location:          strings.TrimSpace(req.Location),
		QualityLevel:      quality,
		Mode:              mode,
		Zone:              zone,
		Rooms:             req.Rooms,
		Bathrooms:         req.Bathrooms,
		Floors:            req.Floors,
		FoundationType:    req.FoundationType,
		StructureType:     req.StructureType,
		RoofingType:       req.RoofingType,
		WallFinish:        req.WallFinish,
		FloorFinish:       req.FloorFinish,
		WindowType:        req.WindowType,
		DoorType:          req.DoorType,
		IncludeElectrical: req.IncludeElectrical,
		IncludePlumbing:   req.IncludePlumbing,
		IncludeFinishing:  req.IncludeFinishing,
	}, nil
}
