package repositories

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/itsmontel/steppet_api/model"
)

// CreditRepository persists the per-user credit/boost ledger.
type CreditRepository struct {
	BaseRepository
}

func NewCreditRepository(db *gorm.DB) *CreditRepository {
	return &CreditRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// GetLedger returns the user's ledger, creating it with the daily allowance
// on first use.
func (ds *CreditRepository) GetLedger(userID string) (*model.CreditLedger, error) {
	var ledger model.CreditLedger
	err := ds.db.Where("user_id = ?", userID).First(&ledger).Error
	if err == gorm.ErrRecordNotFound {
		now := time.Now()
		day := model.StartOfDay(now)
		id, _ := uuid.NewV7()
		ledger = model.CreditLedger{
			ID:                   id.String(),
			UserID:               userID,
			DailyFreeCredits:     model.DailyCreditAllowance,
			LastDailyCreditsDate: &day,
			CreatedAt:            now,
			UpdatedAt:            now,
		}
		if err := ds.db.Create(&ledger).Error; err != nil {
			return nil, err
		}
		return &ledger, nil
	}
	if err != nil {
		return nil, err
	}
	return &ledger, nil
}

func (ds *CreditRepository) UpdateLedger(ledger *model.CreditLedger) error {
	ledger.UpdatedAt = time.Now()
	return ds.db.Save(ledger).Error
}

// GetStaleLedgers returns ledgers whose daily state predates the given day.
func (ds *CreditRepository) GetStaleLedgers(day time.Time) ([]model.CreditLedger, error) {
	var ledgers []model.CreditLedger
	err := ds.db.
		Where("last_daily_credits_date IS NULL OR last_daily_credits_date < ?", day).
		Find(&ledgers).Error
	if err != nil {
		return nil, err
	}
	return ledgers, nil
}
