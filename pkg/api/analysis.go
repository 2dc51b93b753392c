package api

import (
	"time"

	"github.com/google/uuid"
)

// Skin condition labels the analyzer can report.
const (
	ConditionAcne         = "acne"
	ConditionWrinkles     = "wrinkles"
	ConditionDarkSpots    = "dark_spots"
	ConditionOiliness     = "oiliness"
	ConditionDryness      = "dryness"
	ConditionPores        = "pores"
	ConditionPigmentation = "pigmentation"
)

func SupportedConditions() []string {
	return []string{
		ConditionAcne,
		ConditionWrinkles,
		ConditionDarkSpots,
		ConditionOiliness,
		ConditionDryness,
		ConditionPores,
		ConditionPigmentation,
	}
}

const (
	SeverityNone     = "none"
	SeverityMild     = "mild"
	SeverityModerate = "moderate"
	SeveritySevere   = "severe"
)

const (
	ZoneForehead = "forehead"
	ZoneCheeks   = "cheeks"
	ZoneNose     = "nose"
	ZoneChin     = "chin"
	ZoneTZone    = "t_zone"
	ZoneOverall  = "overall"
)

type UploadImageResponse struct {
	UploadId  uuid.UUID `json:"upload_id"`
	Filename  string    `json:"filename"`
	FileSize  int64     `json:"file_size"`
	ImageUrl  string    `json:"image_url"`
	Timestamp time.Time `json:"timestamp"`
}

// AnalyzeRequest is decoded from form fields on POST /analyze and from the
// JSON body on POST /analyze-url (where ImageUrl replaces UploadId).
type AnalyzeRequest struct {
	UploadId         string `schema:"upload_id" json:"upload_id"`
	UserId           string `schema:"user_id" json:"user_id"`
	AnalyzeZones     string `schema:"analyze_zones" json:"analyze_zones"`
	DetailedAnalysis *bool  `schema:"detailed_analysis" json:"detailed_analysis"`
	ImageUrl         string `schema:"-" json:"image_url"`
}

type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type FaceDetection struct {
	FaceDetected bool         `json:"face_detected"`
	FaceCount    int          `json:"face_count"`
	FaceBbox     *BoundingBox `json:"face_bbox,omitempty"`
	Confidence   float64      `json:"confidence,omitempty"`
}

type DetectedCondition struct {
	ConditionType string        `json:"condition_type"`
	Severity      string        `json:"severity"`
	Confidence    float64       `json:"confidence"`
	AffectedZones []string      `json:"affected_zones"`
	BoundingBoxes []BoundingBox `json:"bounding_boxes,omitempty"`
}

type ImageQuality struct {
	BlurScore         float64 `json:"blur_score"`
	BlurQuality       string  `json:"blur_quality"`
	Brightness        float64 `json:"brightness"`
	BrightnessQuality string  `json:"brightness_quality"`
	Contrast          float64 `json:"contrast"`
	ContrastQuality   string  `json:"contrast_quality"`
	Resolution        string  `json:"resolution"`
	OverallQuality    string  `json:"overall_quality"`
}

type AnalysisResult struct {
	AnalysisId         uuid.UUID           `json:"analysis_id"`
	UploadId           uuid.UUID           `json:"upload_id"`
	Status             string              `json:"status"`
	Timestamp          time.Time           `json:"timestamp"`
	FaceDetection      FaceDetection       `json:"face_detection"`
	DetectedConditions []DetectedCondition `json:"detected_conditions"`
	SkinHealthScore    float64             `json:"skin_health_score"`
	ProcessingTime     float64             `json:"processing_time"`
	ImageQuality       *ImageQuality       `json:"image_quality,omitempty"`
}

type SupportedConditionsResponse struct {
	Conditions  []string `json:"conditions"`
	Description string   `json:"description"`
}
