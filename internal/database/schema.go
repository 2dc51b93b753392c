package database

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	AnalysisQueued    string = "QUEUED"
	AnalysisRunning   string = "RUNNING"
	AnalysisCompleted string = "COMPLETED"
	AnalysisFailed    string = "FAILED"
)

type Upload struct {
	Id uuid.UUID `gorm:"type:uuid;primaryKey"`

	Filename    string `gorm:"not null"`
	ContentType string `gorm:"size:50;not null"`
	FileSize    int64  `gorm:"not null"`

	// Key of the stored object inside the upload bucket.
	StorageKey string `gorm:"not null"`

	CreationTime time.Time

	Analyses []Analysis `gorm:"foreignKey:UploadId;constraint:OnDelete:CASCADE"`
}

type Analysis struct {
	Id uuid.UUID `gorm:"type:uuid;primaryKey"`

	UploadId uuid.UUID `gorm:"type:uuid;not null"`
	Upload   *Upload   `gorm:"foreignKey:UploadId"`

	Status   string `gorm:"size:20;not null"`
	Detailed bool   `gorm:"default:true"`

	SkinHealthScore float64
	ProcessingMs    int64

	FaceDetection datatypes.JSON `gorm:"type:jsonb"` // {"face_detected":…,"face_bbox":…}
	Conditions    datatypes.JSON `gorm:"type:jsonb"` // [{"condition_type":…,"severity":…},…]
	ImageQuality  datatypes.JSON `gorm:"type:jsonb"`

	CreationTime   time.Time
	CompletionTime sql.NullTime

	Recommendations []Recommendation `gorm:"foreignKey:AnalysisId;constraint:OnDelete:CASCADE"`
}

type Recommendation struct {
	Id uuid.UUID `gorm:"type:uuid;primaryKey"`

	AnalysisId uuid.UUID `gorm:"type:uuid;not null"`
	Analysis   *Analysis `gorm:"foreignKey:AnalysisId"`

	BudgetPreference  string `gorm:"size:20"`
	RoutineComplexity string `gorm:"size:20;not null"`
	Personalized      bool   `gorm:"default:false"`

	Payload datatypes.JSON `gorm:"type:jsonb;not null"` // full RecommendResponse

	CreationTime time.Time
}
