package main

import (
	"fmt"

	"batilink/internal/model"
	"batilink/pkg/config"
	"batilink/pkg/database"
	"batilink/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	testUsers := []struct {
		email    string
		password string
	}{
		{"alice@chantier.test", "password123"},
		{"bob@chantier.test", "password123"},
		{"carole@chantier.test", "password123"},
	}

	userIDs := make([]string, 0, len(testUsers))

	for _, userData := range testUsers {
		var existing model.UserModel
		result := db.Where("email = ?", userData.email).First(&existing)
		if result.Error == nil {
			log.Info("User %s already exists, skipping", userData.email)
			userIDs = append(userIDs, existing.ID)
			continue
		}

		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(userData.password), bcrypt.DefaultCost)
		user := &model.UserModel{
			Email:        userData.email,
			PasswordHash: string(hashedPassword),
			Role:         "USER",
		}
		if err := db.Create(user).Error; err != nil {
			log.Error("Failed to create user %s: %v", userData.email, err)
			continue
		}

		log.Info("Created user: %s", user.Email)
		userIDs = append(userIDs, user.ID)
	}

	tags := []struct {
		slug    string
		label   string
		tagType string
	}{
		{"plomberie", "Plomberie", "METIER"},
		{"electricite", "Électricité", "METIER"},
		{"maconnerie", "Maçonnerie", "METIER"},
		{"ile-de-france", "Île-de-France", "REGION"},
		{"nouvelle-aquitaine", "Nouvelle-Aquitaine", "REGION"},
		{"renovation", "Rénovation", "TOPIC"},
	}

	tagIDs := make([]string, 0, len(tags))
	for _, tagData := range tags {
		var existing model.TagModel
		result := db.Where("slug = ?", tagData.slug).First(&existing)
		if result.Error == nil {
			tagIDs = append(tagIDs, existing.ID)
			continue
		}

		tag := &model.TagModel{Slug: tagData.slug, Label: tagData.label, Type: tagData.tagType}
		if err := db.Create(tag).Error; err != nil {
			log.Error("Failed to create tag %s: %v", tagData.slug, err)
			continue
		}

		log.Info("Created tag: %s", tag.Slug)
		tagIDs = append(tagIDs, tag.ID)
	}

	if len(userIDs) == 0 || len(tagIDs) == 0 {
		return fmt.Errorf("no users or tags available for content seeding")
	}

	posts := []struct {
		kind  string
		title string
		body  string
	}{
		{"POST", "Rénovation d'une salle de bain à Bordeaux", "Photos avant/après d'un chantier de trois semaines."},
		{"WORK_REQUEST", "Recherche plombier pour fuite urgente", "Fuite sous évier, intervention souhaitée cette semaine."},
		{"JOB_OFFER", "CDI électricien qualifié", "Entreprise familiale recherche électricien, chantiers neufs et rénovation."},
		{"TENDER", "Appel d'offres gros œuvre", "Construction d'un entrepôt de 2000m², lot maçonnerie."},
	}

	for i, postData := range posts {
		title := postData.title
		body := postData.body

		var existing model.ContentModel
		result := db.Where("title = ?", title).First(&existing)
		if result.Error == nil {
			continue
		}

		content := &model.ContentModel{
			Kind:         postData.kind,
			AuthorUserID: userIDs[i%len(userIDs)],
			Title:        &title,
			Body:         &body,
			IsPublic:     true,
		}
		if err := db.Create(content).Error; err != nil {
			log.Error("Failed to create content %q: %v", title, err)
			continue
		}

		link := &model.TagLinkModel{
			TagID:      tagIDs[i%len(tagIDs)],
			EntityType: "CONTENT",
			EntityID:   content.ID,
		}
		if err := db.Create(link).Error; err != nil {
			log.Error("Failed to link tag for content %q: %v", title, err)
		}

		log.Info("Created content: %s", title)
	}

	return nil
}
