package persistent

import (
	"batilink/internal/entity"
	"batilink/internal/model"
)

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func ToContentEntity(m *model.ContentModel) *entity.Content {
	if m == nil {
		return nil
	}

	return &entity.Content{
		ID:           m.ID,
		Kind:         entity.ContentKind(m.Kind),
		AuthorUserID: m.AuthorUserID,
		CompanyID:    strOrEmpty(m.CompanyID),
		Title:        strOrEmpty(m.Title),
		Body:         strOrEmpty(m.Body),
		IsPublic:     m.IsPublic,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		Meta:         strOrEmpty(m.Meta),
	}
}

func ToContentModel(e *entity.Content) *model.ContentModel {
	if e == nil {
		return nil
	}

	return &model.ContentModel{
		ID:           e.ID,
		Kind:         string(e.Kind),
		AuthorUserID: e.AuthorUserID,
		CompanyID:    strOrNil(e.CompanyID),
		Title:        strOrNil(e.Title),
		Body:         strOrNil(e.Body),
		IsPublic:     e.IsPublic,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
		Meta:         strOrNil(e.Meta),
	}
}

func ToTagEntity(m *model.TagModel) *entity.Tag {
	if m == nil {
		return nil
	}

	return &entity.Tag{
		ID:        m.ID,
		Slug:      m.Slug,
		Label:     m.Label,
		Type:      m.Type,
		CreatedAt: m.CreatedAt,
	}
}

func ToTagModel(e *entity.Tag) *model.TagModel {
	if e == nil {
		return nil
	}

	return &model.TagModel{
		ID:        e.ID,
		Slug:      e.Slug,
		Label:     e.Label,
		Type:      e.Type,
		CreatedAt: e.CreatedAt,
	}
}

func ToTagLinkEntity(m *model.TagLinkModel) *entity.TagLink {
	if m == nil {
		return nil
	}

	return &entity.TagLink{
		ID:         m.ID,
		TagID:      m.TagID,
		EntityType: m.EntityType,
		EntityID:   m.EntityID,
	}
}

func ToTagLinkModel(e *entity.TagLink) *model.TagLinkModel {
	if e == nil {
		return nil
	}

	return &model.TagLinkModel{
		ID:         e.ID,
		TagID:      e.TagID,
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
	}
}

func ToMediaAssetEntity(m *model.MediaAssetModel) *entity.MediaAsset {
	if m == nil {
		return nil
	}

	return &entity.MediaAsset{
		ID:              m.ID,
		OwnerID:         m.OwnerID,
		URL:             m.URL,
		Kind:            entity.MediaKind(m.Kind),
		MimeType:        m.MimeType,
		Width:           m.Width,
		Height:          m.Height,
		SizeBytes:       m.SizeBytes,
		StorageProvider: m.StorageProvider,
		CreatedAt:       m.CreatedAt,
	}
}

func ToMediaAssetModel(e *entity.MediaAsset) *model.MediaAssetModel {
	if e == nil {
		return nil
	}

	return &model.MediaAssetModel{
		ID:              e.ID,
		OwnerID:         e.OwnerID,
		URL:             e.URL,
		Kind:            string(e.Kind),
		MimeType:        e.MimeType,
		Width:           e.Width,
		Height:          e.Height,
		SizeBytes:       e.SizeBytes,
		StorageProvider: e.StorageProvider,
		CreatedAt:       e.CreatedAt,
	}
}

func ToContentMediaEntity(m *model.ContentMediaModel) *entity.ContentMedia {
	if m == nil {
		return nil
	}

	return &entity.ContentMedia{
		ID:        m.ID,
		ContentID: m.ContentID,
		MediaID:   m.MediaID,
		SortOrder: m.SortOrder,
		IsCover:   m.IsCover,
	}
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:              m.ID,
		ContentID:       m.ContentID,
		AuthorUserID:    m.AuthorUserID,
		Body:            m.Body,
		ParentCommentID: strOrEmpty(m.ParentCommentID),
		CreatedAt:       m.CreatedAt,
	}
}

func ToCommentModel(e *entity.Comment) *model.CommentModel {
	if e == nil {
		return nil
	}

	return &model.CommentModel{
		ID:              e.ID,
		ContentID:       e.ContentID,
		AuthorUserID:    e.AuthorUserID,
		Body:            e.Body,
		ParentCommentID: strOrNil(e.ParentCommentID),
		CreatedAt:       e.CreatedAt,
	}
}

func ToLegalArticleEntity(m *model.LegalArticleModel) *entity.LegalArticle {
	if m == nil {
		return nil
	}

	return &entity.LegalArticle{
		ID:            m.ID,
		Title:         m.Title,
		Body:          strOrEmpty(m.Body),
		RawContent:    strOrEmpty(m.RawContent),
		Source:        m.Source,
		SourceURL:     m.SourceURL,
		PublishedAt:   m.PublishedAt,
		AutoGenerated: m.AutoGenerated,
		Status:        entity.LegalArticleStatus(m.Status),
		AISummary:     strOrEmpty(m.AISummary),
		HumanSummary:  strOrEmpty(m.HumanSummary),
		CreatedAt:     m.CreatedAt,
	}
}

func ToLegalArticleModel(e *entity.LegalArticle) *model.LegalArticleModel {
	if e == nil {
		return nil
	}

	return &model.LegalArticleModel{
		ID:            e.ID,
		Title:         e.Title,
		Body:          strOrNil(e.Body),
		RawContent:    strOrNil(e.RawContent),
		Source:        e.Source,
		SourceURL:     e.SourceURL,
		PublishedAt:   e.PublishedAt,
		AutoGenerated: e.AutoGenerated,
		Status:        string(e.Status),
		AISummary:     strOrNil(e.AISummary),
		HumanSummary:  strOrNil(e.HumanSummary),
		CreatedAt:     e.CreatedAt,
	}
}

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:              m.ID,
		Email:           m.Email,
		PasswordHash:    m.PasswordHash,
		Role:            m.Role,
		IsEmailVerified: m.IsEmailVerified,
		CreatedAt:       m.CreatedAt,
		LastLoginAt:     m.LastLoginAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:              e.ID,
		Email:           e.Email,
		PasswordHash:    e.PasswordHash,
		Role:            e.Role,
		IsEmailVerified: e.IsEmailVerified,
		CreatedAt:       e.CreatedAt,
		LastLoginAt:     e.LastLoginAt,
	}
}
