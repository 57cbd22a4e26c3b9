package persistent

import (
	"time"

	"batilink/internal/entity"
	"batilink/internal/model"

	"gorm.io/gorm"
)

type TagRepository interface {
	List(tagType string) ([]entity.Tag, error)
	Create(tag *entity.Tag) error
	CreateLink(link *entity.TagLink) error
	DeleteLink(id string) (*entity.TagLink, error)
	LinksForTag(tagID string) ([]entity.TagLink, error)

	ContentIDsForTags(tagIDs []string) ([]string, error)
	LoadForContents(contentIDs []string) (map[string][]entity.TagView, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) List(tagType string) ([]entity.Tag, error) {
	var tagModels []model.TagModel
	query := r.db.Order("label ASC")
	if tagType != "" {
		query = query.Where("type = ?", tagType)
	}
	if err := query.Find(&tagModels).Error; err != nil {
		return nil, err
	}

	tags := make([]entity.Tag, len(tagModels))
	for i := range tagModels {
		tags[i] = *ToTagEntity(&tagModels[i])
	}
	return tags, nil
}

func (r *tagRepository) Create(tag *entity.Tag) error {
	tagModel := ToTagModel(tag)
	if err := r.db.Create(tagModel).Error; err != nil {
		return err
	}
	*tag = *ToTagEntity(tagModel)
	return nil
}

func (r *tagRepository) CreateLink(link *entity.TagLink) error {
	linkModel := ToTagLinkModel(link)
	if err := r.db.Create(linkModel).Error; err != nil {
		return err
	}
	*link = *ToTagLinkEntity(linkModel)
	return nil
}

// DeleteLink removes a link by ID and returns the deleted row so that the
// caller can tell whether a CONTENT entity was affected.
func (r *tagRepository) DeleteLink(id string) (*entity.TagLink, error) {
	var linkModel model.TagLinkModel
	if err := r.db.Where("id = ?", id).First(&linkModel).Error; err != nil {
		return nil, err
	}

	if err := r.db.Delete(&model.TagLinkModel{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return ToTagLinkEntity(&linkModel), nil
}

func (r *tagRepository) LinksForTag(tagID string) ([]entity.TagLink, error) {
	var linkModels []model.TagLinkModel
	if err := r.db.Where("tag_id = ?", tagID).Find(&linkModels).Error; err != nil {
		return nil, err
	}

	links := make([]entity.TagLink, len(linkModels))
	for i := range linkModels {
		links[i] = *ToTagLinkEntity(&linkModels[i])
	}
	return links, nil
}

// ContentIDsForTags resolves tag IDs to the deduplicated set of CONTENT
// entity IDs they are linked to.
func (r *tagRepository) ContentIDsForTags(tagIDs []string) ([]string, error) {
	if len(tagIDs) == 0 {
		return []string{}, nil
	}

	var linkModels []model.TagLinkModel
	err := r.db.Where("tag_id IN ? AND entity_type = ?", tagIDs, entity.EntityTypeContent).
		Find(&linkModels).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(linkModels))
	ids := make([]string, 0, len(linkModels))
	for _, link := range linkModels {
		if !seen[link.EntityID] {
			seen[link.EntityID] = true
			ids = append(ids, link.EntityID)
		}
	}
	return ids, nil
}

type tagViewRow struct {
	ID        string    `gorm:"column:id"`
	Slug      string    `gorm:"column:slug"`
	Label     string    `gorm:"column:label"`
	Type      string    `gorm:"column:type"`
	CreatedAt time.Time `gorm:"column:created_at"`
	EntityID  string    `gorm:"column:entity_id"`
}

// LoadForContents bulk-loads the tags attached to the given content IDs in
// one query. An empty input returns an empty map without touching the store.
func (r *tagRepository) LoadForContents(contentIDs []string) (map[string][]entity.TagView, error) {
	byContent := make(map[string][]entity.TagView)
	if len(contentIDs) == 0 {
		return byContent, nil
	}

	var rows []tagViewRow
	err := r.db.Table("tag_links").
		Select("tags.id, tags.slug, tags.label, tags.type, tags.created_at, tag_links.entity_id").
		Joins("INNER JOIN tags ON tags.id = tag_links.tag_id").
		Where("tag_links.entity_id IN ? AND tag_links.entity_type = ?", contentIDs, entity.EntityTypeContent).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		byContent[row.EntityID] = append(byContent[row.EntityID], entity.TagView{
			ID:        row.ID,
			Slug:      row.Slug,
			Label:     row.Label,
			Type:      row.Type,
			CreatedAt: row.CreatedAt,
		})
	}
	return byContent, nil
}
