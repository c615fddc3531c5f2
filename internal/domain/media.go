package domain

import "time"

// MediaStatus represents the moderation state of an uploaded file.
type MediaStatus string

const (
	MediaStatusApproved MediaStatus = "approved"
	MediaStatusPending  MediaStatus = "pending"
	MediaStatusRejected MediaStatus = "rejected"
)

// ValidMediaStatuses contains all valid media statuses.
var ValidMediaStatuses = []MediaStatus{MediaStatusApproved, MediaStatusPending, MediaStatusRejected}

// IsValidMediaStatus checks if a media status is valid.
func IsValidMediaStatus(status MediaStatus) bool {
	for _, s := range ValidMediaStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// MediaItem describes an uploaded file in the uploads directory.
type MediaItem struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	URL        string      `json:"url"`
	Type       string      `json:"type"`
	Size       int64       `json:"size"`
	UploadedAt time.Time   `json:"uploadedAt"`
	Status     MediaStatus `json:"status"`
}

// MediaPatch updates the display metadata of a media item.
type MediaPatch struct {
	Name   *string      `json:"name"`
	Status *MediaStatus `json:"status"`
}
