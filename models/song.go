package models

import (
	"time"
)

type SongStatus string

const (
	SongPending   SongStatus = "PENDING"
	SongCompleted SongStatus = "COMPLETED"
	SongFailed    SongStatus = "FAILED"
)

// Song is one generation request. Status is the source of truth for the
// lifecycle; TaskID/AudioURL/Error are the serving surface the clients read.
// TaskID set means a vendor job is in flight, AudioURL set means the result
// landed, Error set means the job failed (Retryable tells the client whether
// trying again is worthwhile).
type Song struct {
	ID             string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID         string          `json:"userId" gorm:"type:uuid;not null;index"`
	Name           string          `json:"name"`
	Theme          string          `json:"theme"`
	Mood           string          `json:"mood"`
	SongType       string          `json:"songType"`
	PresetType     string          `json:"presetType"`
	IsInstrumental bool            `json:"isInstrumental" gorm:"default:false"`
	Status         SongStatus      `json:"status" gorm:"type:varchar(20);default:'PENDING'"`
	TaskID         *string         `json:"taskId"`
	AudioURL       *string         `json:"audioUrl" gorm:"column:audio_url"`
	Error          *string         `json:"error"`
	Retryable      *bool           `json:"retryable"`
	IsFavorite     bool            `json:"isFavorite" gorm:"default:false"`
	Variations     []SongVariation `json:"variations" gorm:"foreignKey:SongID"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// SongCreate is the request body for a new generation request. BabyName is
// only used to build the vendor prompt, it is not persisted on the row.
type SongCreate struct {
	Name           string `json:"name" binding:"required"`
	BabyName       string `json:"babyName" binding:"required"`
	SongType       string `json:"songType" binding:"required"`
	Theme          string `json:"theme"`
	Mood           string `json:"mood"`
	PresetType     string `json:"presetType"`
	IsInstrumental bool   `json:"isInstrumental"`
}
