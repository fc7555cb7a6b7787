package services

import (
	"time"

	"github.com/alphabatem/common/context"

	"github.com/itsmontel/steppet_api/dto"
	"github.com/itsmontel/steppet_api/model"
	"github.com/itsmontel/steppet_api/services/repositories"
)

// AchievementService owns the per-user achievement sets: listing, one-shot
// unlocks from client events, bulk evaluation from step updates and the
// daily progress reset.
type AchievementService struct {
	context.DefaultService

	db Storage

	achievements *repositories.AchievementRepository
}

const ACHIEVEMENT_SVC = "achievement_svc"

func (svc AchievementService) Id() string {
	return ACHIEVEMENT_SVC
}

func (svc *AchievementService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *AchievementService) Start() error {
	svc.db = svc.Service(DB_SVC).(Storage)
	svc.achievements = repositories.NewAchievementRepository(svc.db.Db())
	return nil
}

func (svc *AchievementService) ListAchievements(userID string) (*dto.AchievementListResponse, error) {
	set, err := svc.achievements.LoadSet(userID)
	if err != nil {
		return nil, svc.db.HandleError(err)
	}

	all := set.All()
	responses := make([]dto.AchievementResponse, len(all))
	for i, a := range all {
		responses[i] = toAchievementResponse(a)
	}

	return &dto.AchievementListResponse{
		Achievements: responses,
		Unlocked:     set.UnlockedCount(),
		Total:        len(all),
	}, nil
}

func (svc *AchievementService) ListUnlocked(userID string) (*dto.AchievementListResponse, error) {
	set, err := svc.achievements.LoadSet(userID)
	if err != nil {
		return nil, svc.db.HandleError(err)
	}

	unlocked := set.Unlocked()
	responses := make([]dto.AchievementResponse, len(unlocked))
	for i, a := range unlocked {
		responses[i] = toAchievementResponse(a)
	}

	return &dto.AchievementListResponse{
		Achievements: responses,
		Unlocked:     len(unlocked),
		Total:        len(set.All()),
	}, nil
}

// GrantOneShot unlocks a single-trigger achievement and returns it when it
// was not unlocked before.
func (svc *AchievementService) GrantOneShot(userID, achievementID string) ([]model.Achievement, error) {
	set, err := svc.achievements.LoadSet(userID)
	if err != nil {
		return nil, svc.db.HandleError(err)
	}

	set.Unlock(achievementID, time.Now())

	if err := svc.achievements.SaveDirty(userID, set); err != nil {
		return nil, svc.db.HandleError(err)
	}
	return set.UnlockedNow(), nil
}

// SetProgress applies an absolute progress value to one achievement, for
// counters tracked outside the step pipeline (sections seen, species tried).
func (svc *AchievementService) SetProgress(userID, achievementID string, progress int) ([]model.Achievement, error) {
	set, err := svc.achievements.LoadSet(userID)
	if err != nil {
		return nil, svc.db.HandleError(err)
	}

	set.UpdateProgress(achievementID, progress, time.Now())

	if err := svc.achievements.SaveDirty(userID, set); err != nil {
		return nil, svc.db.HandleError(err)
	}
	return set.UnlockedNow(), nil
}

// Evaluate runs the bulk rule check against a metrics snapshot and persists
// the dirty rows. Returns achievements unlocked by this pass.
func (svc *AchievementService) Evaluate(userID string, snapshot model.MetricsSnapshot) ([]model.Achievement, error) {
	set, err := svc.achievements.LoadSet(userID)
	if err != nil {
		return nil, svc.db.HandleError(err)
	}

	set.CheckAchievements(snapshot)

	if err := svc.achievements.SaveDirty(userID, set); err != nil {
		return nil, svc.db.HandleError(err)
	}
	return set.UnlockedNow(), nil
}

// RunDailyReset zeroes the single-day-window progress for one user. Invoked
// by the rollover scheduler after midnight.
func (svc *AchievementService) RunDailyReset(userID string) error {
	set, err := svc.achievements.LoadSet(userID)
	if err != nil {
		return svc.db.HandleError(err)
	}

	set.ResetDailyAchievements()

	if err := svc.achievements.SaveDirty(userID, set); err != nil {
		return svc.db.HandleError(err)
	}
	return nil
}

func toAchievementResponse(a model.Achievement) dto.AchievementResponse {
	return dto.AchievementResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Category:    a.Category,
		Rarity:      a.Rarity,
		Icon:        a.Icon,
		Progress:    a.Progress,
		Target:      a.Target,
		Unlocked:    a.Unlocked,
		UnlockedAt:  a.UnlockedAt,
	}
}
