package repositories

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/itsmontel/steppet_api/model"
)

// PetRepository handles pet persistence. Each user has exactly one pet row;
// a species change replaces the row contents, never deletes it.
type PetRepository struct {
	BaseRepository
}

func NewPetRepository(db *gorm.DB) *PetRepository {
	return &PetRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *PetRepository) GetPet(userID string) (*model.Pet, error) {
	var pet model.Pet
	if err := ds.db.Where("user_id = ?", userID).First(&pet).Error; err != nil {
		return nil, err
	}
	return &pet, nil
}

func (ds *PetRepository) CreatePet(userID, name, species string, now time.Time) (*model.Pet, error) {
	id, _ := uuid.NewV7()
	pet := &model.Pet{
		ID:        id.String(),
		UserID:    userID,
		Name:      name,
		Species:   species,
		Health:    model.DefaultPetHealth,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := ds.db.Create(pet).Error; err != nil {
		return nil, err
	}
	return pet, nil
}

func (ds *PetRepository) UpdatePet(pet *model.Pet) error {
	pet.UpdatedAt = time.Now()
	return ds.db.Save(pet).Error
}
