package entity

import "time"

type ContentKind string

const (
	KindPost        ContentKind = "POST"
	KindWorkRequest ContentKind = "WORK_REQUEST"
	KindJobOffer    ContentKind = "JOB_OFFER"
	KindTender      ContentKind = "TENDER"
	KindLegal       ContentKind = "LEGAL"
)

// ValidKind reports whether k is one of the known content discriminants.
func ValidKind(k ContentKind) bool {
	switch k {
	case KindPost, KindWorkRequest, KindJobOffer, KindTender, KindLegal:
		return true
	}
	return false
}

type Content struct {
	ID           string      `json:"id"`
	Kind         ContentKind `json:"type"`
	AuthorUserID string      `json:"author_user_id"`
	CompanyID    string      `json:"company_id,omitempty"`
	Title        string      `json:"title,omitempty"`
	Body         string      `json:"body,omitempty"`
	IsPublic     bool        `json:"is_public"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    *time.Time  `json:"updated_at,omitempty"`
	Meta         string      `json:"meta,omitempty"`
}

// ContentView is a content row joined with its attachments, the shape
// every content endpoint returns.
type ContentView struct {
	Content
	Media []MediaView `json:"media"`
	Tags  []TagView   `json:"tags"`
}

type FeedPage struct {
	Page     int           `json:"page"`
	PageSize int           `json:"pageSize"`
	HasMore  bool          `json:"hasMore"`
	Items    []ContentView `json:"items"`
}
