package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/buildcost-estimates/internal/model"
)

type EstimateRepository struct {
	db *gorm.DB
}

func NewEstimateRepository(db *gorm.DB) *EstimateRepository {
	return &EstimateRepository{db: db}
}

// SavedEstimate is one persisted estimate row. The project input and the
// material lines are stored as JSONB so the engine's shape can evolve
// without schema churn.
type SavedEstimate struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	AdjustmentSource string
	RegionMultiplier float64
	CreatedAt        time.Time
	Estimate         model.EstimateResult
}

func (r *EstimateRepository) Save(ctx context.Context, saved SavedEstimate) error {
	projectJSON, err := json.Marshal(saved.Estimate.ProjectDetails)
	if err != nil {
		return fmt.Errorf("marshal project: %w", err)
	}
	materialsJSON, err := json.Marshal(saved.Estimate.Materials)
	if err != nil {
		return fmt.Errorf("marshal materials: %w", err)
	}

	return r.db.WithContext(ctx).Exec(`
		INSERT INTO estimates (
			project_id, user_id, project_type, location, quality_level,
			project, materials, subtotal, waste_buffer_percentage,
			waste_buffer, total, region_multiplier, adjustment_source, generated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		saved.Estimate.ProjectID,
		saved.UserID,
		string(saved.Estimate.ProjectDetails.ProjectType),
		saved.Estimate.ProjectDetails.Location,
		string(saved.Estimate.ProjectDetails.QualityLevel),
		string(projectJSON),
		string(materialsJSON),
		saved.Estimate.Subtotal,
		saved.Estimate.WasteBufferPercentage,
		saved.Estimate.WasteBuffer,
		saved.Estimate.Total,
		saved.RegionMultiplier,
		saved.AdjustmentSource,
		saved.Estimate.GeneratedAt,
	).Error
}

func (r *EstimateRepository) GetByProjectID(ctx context.Context, userID uuid.UUID, projectID string) (*SavedEstimate, error) {
	var row estimateRow
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, project_id, user_id, project, materials, subtotal,
			waste_buffer_percentage, waste_buffer, total,
			COALESCE(region_multiplier, 1.0) AS region_multiplier,
			COALESCE(adjustment_source, '') AS adjustment_source,
			generated_at, created_at
		FROM estimates
		WHERE project_id = ? AND user_id = ?
		LIMIT 1
	`, projectID, userID).Scan(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return row.toSaved()
}

func (r *EstimateRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]SavedEstimate, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	var rows []estimateRow
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, project_id, user_id, project, materials, subtotal,
			waste_buffer_percentage, waste_buffer, total,
			COALESCE(region_multiplier, 1.0) AS region_multiplier,
			COALESCE(adjustment_source, '') AS adjustment_source,
			generated_at, created_at
		FROM estimates
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`, userID, limit).Scan(&rows).Error; err != nil {
		return nil, err
	}

	saved := make([]SavedEstimate, 0, len(rows))
	for _, row := range rows {
		s, err := row.toSaved()
		if err != nil {
			return nil, err
		}
		saved = append(saved, *s)
	}
	return saved, nil
}

type estimateRow struct {
	ID                    uuid.UUID
	ProjectID             string
	UserID                uuid.UUID
	Project               []byte
	Materials             []byte
	Subtotal              float64
	WasteBufferPercentage float64
	WasteBuffer           float64
	Total                 float64
	RegionMultiplier      float64
	AdjustmentSource      string
	GeneratedAt           time.Time
	CreatedAt             time.Time
}

func (row estimateRow) toSaved() (*SavedEstimate, error) {
	var project model.ProjectInput
	if err := json.Unmarshal(row.Project, &project); err != nil {
		return nil, fmt.Errorf("unmarshal project: %w", err)
	}
	var materials []model.MaterialItem
	if err := json.Unmarshal(row.Materials, &materials); err != nil {
		return nil, fmt.Errorf("unmarshal materials: %w", err)
	}

	return &SavedEstimate{
		ID:               row.ID,
		UserID:           row.UserID,
		AdjustmentSource: row.AdjustmentSource,
		RegionMultiplier: row.RegionMultiplier,
		CreatedAt:        row.CreatedAt,
		Estimate: model.EstimateResult{
			ProjectID:             row.ProjectID,
			Materials:             materials,
			Subtotal:              row.Subtotal,
			WasteBufferPercentage: row.WasteBufferPercentage,
			WasteBuffer:           row.WasteBuffer,
			Total:                 row.Total,
			ProjectDetails:        project,
			GeneratedAt:           row.GeneratedAt,
		},
	}, nil
}
