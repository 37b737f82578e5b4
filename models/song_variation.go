package models

import (
	"time"

	"gorm.io/datatypes"
)

// SongVariation holds an alternate clip returned by the vendor for the same
// generation task. The first clip goes on the Song itself, the rest land here.
type SongVariation struct {
	ID        string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	SongID    string         `json:"songId" gorm:"type:uuid;not null;index"`
	AudioURL  string         `json:"audioUrl" gorm:"column:audio_url"`
	Title     string         `json:"title"`
	Metadata  datatypes.JSON `json:"metadata"`
	CreatedAt time.Time      `json:"createdAt"`
}
