package repositories

import (
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/itsmontel/steppet_api/model"
)

// UserRepository handles user-related database operations
type UserRepository struct {
	BaseRepository
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *UserRepository) GetUser(userID string) (*model.User, error) {
	var user model.User
	if err := ds.db.Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (ds *UserRepository) GetUserByDeviceID(deviceID string) (*model.User, error) {
	var user model.User
	if err := ds.db.Where("device_id = ?", deviceID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (ds *UserRepository) CreateUser(deviceID, deviceSecret, name string, now time.Time) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(deviceSecret), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if name == "" {
		name = model.DefaultUserName
	}

	id, _ := uuid.NewV7()
	user := &model.User{
		ID:            id.String(),
		DeviceID:      deviceID,
		SecretHash:    string(hash),
		Name:          name,
		DailyStepGoal: model.DefaultStepGoal,
		FirstLaunch:   now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := ds.db.Create(user).Error; err != nil {
		log.WithError(err).WithField("device_id", deviceID).Error("Failed to create user")
		return nil, err
	}

	return user, nil
}

func (ds *UserRepository) VerifyDeviceSecret(user *model.User, deviceSecret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.SecretHash), []byte(deviceSecret)) == nil
}

func (ds *UserRepository) UpdateUser(user *model.User) error {
	user.UpdatedAt = time.Now()
	return ds.db.Save(user).Error
}

// MarkSpeciesUsed records a species in the comma-separated used set and
// returns the distinct count.
func (ds *UserRepository) MarkSpeciesUsed(user *model.User, species string) (int, error) {
	used := map[string]bool{}
	for _, s := range strings.Split(user.SpeciesUsed, ",") {
		if s != "" {
			used[s] = true
		}
	}
	used[species] = true

	parts := make([]string, 0, len(used))
	for s := range used {
		parts = append(parts, s)
	}
	user.SpeciesUsed = strings.Join(parts, ",")
	user.PetsUsed = len(used)

	if err := ds.UpdateUser(user); err != nil {
		return 0, err
	}
	return user.PetsUsed, nil
}

// MarkSectionSeen records an app section in the comma-separated seen set and
// returns the distinct count.
func (ds *UserRepository) MarkSectionSeen(user *model.User, section string) (int, error) {
	seen := map[string]bool{}
	for _, s := range strings.Split(user.SectionsSeen, ",") {
		if s != "" {
			seen[s] = true
		}
	}
	seen[section] = true

	parts := make([]string, 0, len(seen))
	for s := range seen {
		parts = append(parts, s)
	}
	user.SectionsSeen = strings.Join(parts, ",")

	if err := ds.UpdateUser(user); err != nil {
		return 0, err
	}
	return len(seen), nil
}
