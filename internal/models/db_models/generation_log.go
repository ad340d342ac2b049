package db_models

// GenerationLog records how one itinerary request was served. It holds no
// itinerary content.
type GenerationLog struct {
	BaseModel
	TraceID       string `gorm:"type:varchar(64);index"`
	Destination   string `gorm:"type:text;not null"`
	RequestedDays int    `gorm:"type:int;not null"`
	Mode          string `gorm:"type:varchar(16);not null"`
	Model         string `gorm:"type:varchar(64)"`
	Outcome       string `gorm:"type:varchar(32);not null;index"`
	CitationCount int    `gorm:"type:int;not null;default:0"`
	LatencyMs     int64  `gorm:"type:bigint;not null"`
}
