package entity

import "time"

type MediaKind string

const (
	MediaImage MediaKind = "IMAGE"
	MediaVideo MediaKind = "VIDEO"
	MediaFile  MediaKind = "FILE"
)

// MediaKindFromMime maps a MIME type to the coarse media kind.
func MediaKindFromMime(mime string) MediaKind {
	switch {
	case len(mime) >= 6 && mime[:6] == "image/":
		return MediaImage
	case len(mime) >= 6 && mime[:6] == "video/":
		return MediaVideo
	default:
		return MediaFile
	}
}

type MediaAsset struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"owner_id"`
	URL             string    `json:"url"`
	Kind            MediaKind `json:"type"`
	MimeType        string    `json:"mime_type"`
	Width           int       `json:"width,omitempty"`
	Height          int       `json:"height,omitempty"`
	SizeBytes       int64     `json:"size_bytes"`
	StorageProvider string    `json:"storage_provider"`
	CreatedAt       time.Time `json:"created_at"`
}

// ContentMedia links a content row to a media asset. Sort orders within one
// content form a dense 0-based sequence; at most one link per content carries
// the cover flag.
type ContentMedia struct {
	ID        string `json:"id"`
	ContentID string `json:"content_id"`
	MediaID   string `json:"media_id"`
	SortOrder int    `json:"sort_order"`
	IsCover   bool   `json:"is_cover"`
}

// MediaView is an asset joined with its link metadata for one content row.
type MediaView struct {
	MediaAsset
	ContentID string `json:"content_id"`
	SortOrder int    `json:"sort_order"`
	IsCover   bool   `json:"is_cover"`
}
