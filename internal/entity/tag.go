package entity

import "time"

const EntityTypeContent = "CONTENT"

type Tag struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Label     string    `json:"label"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// TagLink attaches a tag to any taggable entity by (entityType, entityId).
// It is a weak reference: deleting a link never touches the tag itself.
type TagLink struct {
	ID         string `json:"id"`
	TagID      string `json:"tag_id"`
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
}

type TagView struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Label     string    `json:"label"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}
