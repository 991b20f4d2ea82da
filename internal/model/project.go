package model

import "strings"

type ProjectType string

const (
	ProjectTypeHouse      ProjectType = "house"
	ProjectTypeRoom       ProjectType = "room"
	ProjectTypeWall       ProjectType = "wall"
	ProjectTypeRoof       ProjectType = "roof"
	ProjectTypeExtension  ProjectType = "extension"
	ProjectTypeFoundation ProjectType = "foundation"
	ProjectTypeRenovation ProjectType = "renovation"
)

// ProjectTypes is the full set of supported project types, used for
// validation and enum coverage checks.
var ProjectTypes = []ProjectType{
	ProjectTypeHouse,
	ProjectTypeRoom,
	ProjectTypeWall,
	ProjectTypeRoof,
	ProjectTypeExtension,
	ProjectTypeFoundation,
	ProjectTypeRenovation,
}

func ParseProjectType(raw string) (ProjectType, bool) {
	candidate := ProjectType(strings.ToLower(strings.TrimSpace(raw)))
	for _, t := range ProjectTypes {
		if t == candidate {
			return t, true
		}
	}
	return "", false
}

type QualityLevel string

const (
	QualityBasic    QualityLevel = "basic"
	QualityStandard QualityLevel = "standard"
	QualityPremium  QualityLevel = "premium"
)

func ParseQualityLevel(raw string) (QualityLevel, bool) {
	switch QualityLevel(strings.ToLower(strings.TrimSpace(raw))) {
	case QualityBasic:
		return QualityBasic, true
	case QualityStandard:
		return QualityStandard, true
	case QualityPremium:
		return QualityPremium, true
	default:
		return "", false
	}
}

type EstimationMode string

const (
	ModeSimple   EstimationMode = "simple"
	ModeAdvanced EstimationMode = "advanced"
)

type Zone string

const (
	ZoneUrban Zone = "urban"
	ZoneRural Zone = "rural"
)

// ProjectInput describes the project being estimated. It is owned by the
// caller and never mutated by the estimation engine. Unset advanced fields
// fall back to type-appropriate defaults inside the engine.
type ProjectInput struct {
	ProjectType  ProjectType    `json:"projectType"`
	Length       float64        `json:"length"`
	Width        float64        `json:"width"`
	Height       float64        `json:"height"`
	Location     string         `json:"location"`
	QualityLevel QualityLevel   `json:"qualityLevel"`
	Mode         EstimationMode `json:"estimationMode,omitempty"`
	Zone         Zone           `json:"zone,omitempty"`

	// Advanced attributes. Counts are pointers so an absent value can be
	// told apart from an explicit zero.
	Rooms     *int `json:"rooms,omitempty"`
	Bathrooms *int `json:"bathrooms,omitempty"`
	Floors    *int `json:"floors,omitempty"`

	FoundationType string `json:"foundationType,omitempty"`
	StructureType  string `json:"structureType,omitempty"`
	RoofingType    string `json:"roofingType,omitempty"`
	WallFinish     string `json:"wallFinish,omitempty"`
	FloorFinish    string `json:"floorFinish,omitempty"`
	WindowType     string `json:"windowType,omitempty"`
	DoorType       string `json:"doorType,omitempty"`

	IncludeElectrical *bool `json:"includeElectrical,omitempty"`
	IncludePlumbing   *bool `json:"includePlumbing,omitempty"`
	IncludeFinishing  *bool `json:"includeFinishing,omitempty"`
}

func (p ProjectInput) EstimationMode() EstimationMode {
	if p.Mode == ModeAdvanced {
		return ModeAdvanced
	}
	return ModeSimple
}

func (p ProjectInput) IsAdvanced() bool {
	return p.EstimationMode() == ModeAdvanced
}
