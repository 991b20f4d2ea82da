package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/nurpe/buildcost-estimates/internal/brand"
	"github.com/nurpe/buildcost-estimates/internal/config"
	"github.com/nurpe/buildcost-estimates/internal/estimate"
	"github.com/nurpe/buildcost-estimates/internal/model"
	"github.com/nurpe/buildcost-estimates/internal/region"
	"github.com/nurpe/buildcost-estimates/internal/repository"
)

type ExcelGenerator interface {
	Generate(result model.EstimateResult) ([]byte, error)
}

type PDFGenerator interface {
	Generate(result model.EstimateResult) ([]byte, error)
}

// EstimateStore is the persistence surface the service needs. The estimation
// engine itself never touches storage.
type EstimateStore interface {
	Save(ctx context.Context, saved repository.SavedEstimate) error
	GetByProjectID(ctx context.Context, userID uuid.UUID, projectID string) (*repository.SavedEstimate, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]repository.SavedEstimate, error)
}

type EstimateService struct {
	repo     EstimateStore
	adjuster *region.Adjuster
	excel    ExcelGenerator
	pdf      PDFGenerator
	log      zerolog.Logger
}

func NewEstimateService(repo EstimateStore, adjuster *region.Adjuster, excel ExcelGenerator, pdf PDFGenerator, cfg *config.Config, log zerolog.Logger) *EstimateService {
	return &EstimateService{
		repo:     repo,
		adjuster: adjuster,
		excel:    excel,
		pdf:      pdf,
		log:      log,
	}
}

type CreateEstimateInput struct {
	Project   model.ProjectInput
	Adjust    bool
	Principal model.Principal
}

type CreateEstimateResult struct {
	Estimate         *model.EstimateResult
	AdjustmentSource string
	RegionMultiplier float64
}

// CreateEstimate builds a baseline estimate, optionally passes it through the
// regional adjuster, and persists the outcome for the caller.
func (s *EstimateService) CreateEstimate(ctx context.Context, input CreateEstimateInput) (*CreateEstimateResult, error) {
	if err := validateProject(input.Project); err != nil {
		return nil, err
	}

	result, err := estimate.Calculate(input.Project)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	out := &CreateEstimateResult{Estimate: result, RegionMultiplier: 1.0}
	if input.Adjust {
		adjusted := s.adjuster.AdjustPrices(ctx, result, input.Project.Location)
		out.Estimate = adjusted.Result
		out.AdjustmentSource = string(adjusted.Source)
		out.RegionMultiplier = adjusted.Multiplier
	}

	if s.repo != nil {
		saved := repository.SavedEstimate{
			UserID:           input.Principal.UserID,
			AdjustmentSource: out.AdjustmentSource,
			RegionMultiplier: out.RegionMultiplier,
			Estimate:         *out.Estimate,
		}
		if err := s.repo.Save(ctx, saved); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// GetEstimate fetches one of the caller's saved estimates by its project id.
func (s *EstimateService) GetEstimate(ctx context.Context, principal model.Principal, projectID string) (*repository.SavedEstimate, error) {
	if strings.TrimSpace(projectID) == "" {
		return nil, fmt.Errorf("%w: project id is required", ErrInvalidInput)
	}
	saved, err := s.repo.GetByProjectID(ctx, principal.UserID, projectID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return saved, nil
}

func (s *EstimateService) ListEstimates(ctx context.Context, principal model.Principal, limit int) ([]repository.SavedEstimate, error) {
	return s.repo.ListByUser(ctx, principal.UserID, limit)
}

// AdjustEstimate re-prices a caller-supplied estimate for a location. Never
// fails on advisory degradation; the result records which source priced it.
func (s *EstimateService) AdjustEstimate(ctx context.Context, result *model.EstimateResult, location string) (*region.Adjusted, error) {
	if len(result.Materials) == 0 {
		return nil, fmt.Errorf("%w: estimate has no materials", ErrInvalidInput)
	}
	return s.adjuster.AdjustPrices(ctx, result, location), nil
}

// ApplyBrand resolves the brand in the catalog and applies it to one line.
// An unknown brand is recorded on the line without changing its price.
func (s *EstimateService) ApplyBrand(result *model.EstimateResult, lineIndex int, brandName string) (*model.EstimateResult, error) {
	if lineIndex < 0 || lineIndex >= len(result.Materials) {
		return nil, fmt.Errorf("%w: line index %d", ErrInvalidInput, lineIndex)
	}

	multiplier := result.Materials[lineIndex].BrandMultiplier
	if brandName == model.BrandStandard {
		multiplier = 1.0
	} else if b, ok := brand.Lookup(brandName); ok {
		multiplier = b.PriceMultiplier
	}

	out, err := brand.Apply(result, lineIndex, brandName, multiplier)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	return out, nil
}

func (s *EstimateService) BrandsForMaterial(materialName, location string) []model.Brand {
	return brand.BrandsForMaterial(materialName, location)
}

type ExportResult struct {
	FileName string
	Content  []byte
}

func (s *EstimateService) ExportExcel(result model.EstimateResult) (*ExportResult, error) {
	if len(result.Materials) == 0 {
		return nil, fmt.Errorf("%w: estimate has no materials", ErrInvalidInput)
	}
	content, err := s.excel.Generate(result)
	if err != nil {
		return nil, err
	}
	return &ExportResult{FileName: buildFileName(result, "xlsx"), Content: content}, nil
}

func (s *EstimateService) ExportPDF(result model.EstimateResult) (*ExportResult, error) {
	if len(result.Materials) == 0 {
		return nil, fmt.Errorf("%w: estimate has no materials", ErrInvalidInput)
	}
	content, err := s.pdf.Generate(result)
	if err != nil {
		return nil, err
	}
	return &ExportResult{FileName: buildFileName(result, "pdf"), Content: content}, nil
}

func validateProject(input model.ProjectInput) error {
	if _, ok := model.ParseProjectType(string(input.ProjectType)); !ok {
		return fmt.Errorf("%w: unknown project type %q", ErrInvalidInput, input.ProjectType)
	}
	if _, ok := model.ParseQualityLevel(string(input.QualityLevel)); !ok {
		return fmt.Errorf("%w: unknown quality level %q", ErrInvalidInput, input.QualityLevel)
	}
	if input.Length <= 0 || input.Width <= 0 {
		return fmt.Errorf("%w: dimensions must be positive", ErrInvalidInput)
	}
	if input.Height <= 0 && needsHeight(input.ProjectType) {
		return fmt.Errorf("%w: height must be positive", ErrInvalidInput)
	}
	return nil
}

// needsHeight reports whether the project type derives any quantity from
// wall area. Flat work (roof, foundation) is estimated from plan dimensions.
func needsHeight(t model.ProjectType) bool {
	switch t {
	case model.ProjectTypeRoof, model.ProjectTypeFoundation:
		return false
	default:
		return true
	}
}

func buildFileName(result model.EstimateResult, ext string) string {
	projectType := strings.ToLower(string(result.ProjectDetails.ProjectType))
	location := sanitizeFileName(result.ProjectDetails.Location)
	if location == "" {
		location = "estimate"
	}
	stamp := result.GeneratedAt
	if stamp.IsZero() {
		stamp = time.Now().UTC()
	}
	return fmt.Sprintf("estimate-%s-%s-%s.%s", projectType, location, stamp.Format("20060102"), ext)
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}
