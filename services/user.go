package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/itsmontel/steppet_api/dto"
	"github.com/itsmontel/steppet_api/model"
	"github.com/itsmontel/steppet_api/services/repositories"
	"github.com/itsmontel/steppet_api/shared"
)

// UserService handles the profile surface and owns the midnight rollover
// that resets day-scoped state across all users.
type UserService struct {
	context.DefaultService

	db             Storage
	achievementSvc *AchievementService
	archiveSvc     *ArchiveService

	users   *repositories.UserRepository
	steps   *repositories.StepRepository
	credits *repositories.CreditRepository

	// One mutex per user. Every read-modify-write of the pet row or the
	// credit ledger must hold it, whichever service performs the write.
	userLocks sync.Map
}

const USER_SVC = "user_svc"

func (svc UserService) Id() string {
	return USER_SVC
}

func (svc *UserService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *UserService) Start() error {
	svc.db = svc.Service(DB_SVC).(Storage)
	svc.achievementSvc = svc.Service(ACHIEVEMENT_SVC).(*AchievementService)
	svc.archiveSvc = svc.Service(ARCHIVE_SVC).(*ArchiveService)

	svc.users = repositories.NewUserRepository(svc.db.Db())
	svc.steps = repositories.NewStepRepository(svc.db.Db())
	svc.credits = repositories.NewCreditRepository(svc.db.Db())

	go svc.startRolloverScheduler()

	return nil
}

// LockUser hands out the mutex serializing mutations for one user.
func (svc *UserService) LockUser(userID string) *sync.Mutex {
	mu, _ := svc.userLocks.LoadOrStore(userID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// ==================== PROFILE METHODS ====================

func (svc *UserService) GetProfile(userID string) (*dto.UserProfileResponse, error) {
	user, err := svc.users.GetUser(userID)
	if err != nil {
		return nil, svc.db.HandleError(err)
	}
	return svc.toProfileResponse(user), nil
}

func (svc *UserService) UpdateProfile(userID string, req dto.UpdateProfileRequest) (*dto.UserProfileResponse, error) {
	user, err := svc.users.GetUser(userID)
	if err != nil {
		return nil, svc.db.HandleError(err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}

	if err := svc.users.UpdateUser(user); err != nil {
		return nil, svc.db.HandleError(err)
	}
	return svc.toProfileResponse(user), nil
}

// UpdateGoal changes the daily step goal. The first explicit goal change
// unlocks the goal setter achievement.
func (svc *UserService) UpdateGoal(userID string, req dto.UpdateGoalRequest) (*dto.UserProfileResponse, []dto.AchievementResponse, error) {
	user, err := svc.users.GetUser(userID)
	if err != nil {
		return nil, nil, svc.db.HandleError(err)
	}

	user.DailyStepGoal = req.DailyStepGoal
	if err := svc.users.UpdateUser(user); err != nil {
		return nil, nil, svc.db.HandleError(err)
	}

	unlocked, err := svc.achievementSvc.GrantOneShot(userID, "goal_setter")
	if err != nil {
		log.WithError(err).WithField("userID", userID).Error("Failed to grant goal setter achievement")
		unlocked = nil
	}

	return svc.toProfileResponse(user), toAchievementResponses(unlocked), nil
}

func (svc *UserService) SetPremium(userID string, req dto.SetPremiumRequest) (*dto.UserProfileResponse, []dto.AchievementResponse, error) {
	user, err := svc.users.GetUser(userID)
	if err != nil {
		return nil, nil, svc.db.HandleError(err)
	}

	user.Premium = req.Premium
	if err := svc.users.UpdateUser(user); err != nil {
		return nil, nil, svc.db.HandleError(err)
	}

	var unlocked []model.Achievement
	if req.Premium {
		unlocked, err = svc.achievementSvc.GrantOneShot(userID, "premium_supporter")
		if err != nil {
			log.WithError(err).WithField("userID", userID).Error("Failed to grant premium achievement")
			unlocked = nil
		}
	}

	return svc.toProfileResponse(user), toAchievementResponses(unlocked), nil
}

// RecordClientEvent feeds single-trigger achievements the server cannot
// observe on its own.
func (svc *UserService) RecordClientEvent(userID string, req dto.ClientEventRequest) ([]dto.AchievementResponse, error) {
	switch req.Event {
	case "section_visited":
		if req.Section == "" {
			return nil, shared.NewBadRequestError(fmt.Errorf("missing section"), "Section is required for section_visited")
		}
		user, err := svc.users.GetUser(userID)
		if err != nil {
			return nil, svc.db.HandleError(err)
		}
		count, err := svc.users.MarkSectionSeen(user, req.Section)
		if err != nil {
			return nil, svc.db.HandleError(err)
		}
		unlocked, err := svc.achievementSvc.SetProgress(userID, "explorer", count)
		if err != nil {
			return nil, err
		}
		return toAchievementResponses(unlocked), nil

	case "notifications_enabled":
		unlocked, err := svc.achievementSvc.GrantOneShot(userID, "notifications_on")
		if err != nil {
			return nil, err
		}
		return toAchievementResponses(unlocked), nil

	case "health_checked":
		unlocked, err := svc.achievementSvc.GrantOneShot(userID, "health_check")
		if err != nil {
			return nil, err
		}
		return toAchievementResponses(unlocked), nil

	default:
		return nil, shared.NewBadRequestError(fmt.Errorf("unknown event %s", req.Event), "Unknown client event")
	}
}

func (svc *UserService) toProfileResponse(user *model.User) *dto.UserProfileResponse {
	return &dto.UserProfileResponse{
		UserID:        user.ID,
		Name:          user.Name,
		DailyStepGoal: user.DailyStepGoal,
		ActivityLevel: model.ActivityLevelForGoal(user.DailyStepGoal),
		Premium:       user.Premium,
		FirstLaunch:   user.FirstLaunch,
		DaysUsed:      user.DaysUsed,
		GoalsAchieved: user.GoalsAchieved,
		TotalSteps:    user.TotalSteps,
	}
}

func toAchievementResponses(unlocked []model.Achievement) []dto.AchievementResponse {
	if len(unlocked) == 0 {
		return nil
	}
	out := make([]dto.AchievementResponse, len(unlocked))
	for i, a := range unlocked {
		out[i] = toAchievementResponse(a)
	}
	return out
}

// ==================== DAY ROLLOVER ====================

func (svc *UserService) startRolloverScheduler() {
	for {
		now := time.Now()
		nextMidnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
		durationUntilMidnight := nextMidnight.Sub(now)

		timer := time.NewTimer(durationUntilMidnight)
		<-timer.C

		svc.RunDailyRollover()

		ticker := time.NewTicker(1 * time.Hour)
		for range ticker.C {
			svc.RunDailyRollover()
		}
	}
}

// RunDailyRollover sweeps every user whose day-scoped state predates today:
// the credit allowance refills, the boost zeroes, partial progress of
// single-day achievements resets and records past retention are archived.
func (svc *UserService) RunDailyRollover() {
	now := time.Now()
	day := model.StartOfDay(now)

	ledgers, err := svc.credits.GetStaleLedgers(day)
	if err != nil {
		log.WithError(err).Error("Failed to list ledgers for rollover")
		return
	}

	for i := range ledgers {
		ledger := &ledgers[i]
		if err := svc.rolloverUser(ledger, now); err != nil {
			log.WithError(err).WithField("userID", ledger.UserID).Error("Rollover failed")
		}
	}
}

func (svc *UserService) rolloverUser(ledger *model.CreditLedger, now time.Time) error {
	mu := svc.LockUser(ledger.UserID)
	mu.Lock()
	defer mu.Unlock()

	// Reload under the lock; a spend may have landed since the sweep listed
	// this ledger.
	ledger, err := svc.credits.GetLedger(ledger.UserID)
	if err != nil {
		return err
	}
	if ledger.DailyReset(now) {
		if err := svc.credits.UpdateLedger(ledger); err != nil {
			return err
		}
	}

	if err := svc.achievementSvc.RunDailyReset(ledger.UserID); err != nil {
		return err
	}

	return svc.pruneOldRecords(ledger.UserID, now)
}

func (svc *UserService) pruneOldRecords(userID string, now time.Time) error {
	cutoff := model.StartOfDay(now).AddDate(0, 0, -model.RetentionDays)

	records, err := svc.steps.GetOlderThan(userID, cutoff)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	// Archive upload is best effort, pruning proceeds either way.
	if err := svc.archiveSvc.ArchiveStepRecords(userID, records); err != nil {
		log.WithError(err).WithField("userID", userID).Warn("Failed to archive step records")
	}

	deleted, err := svc.steps.DeleteOlderThan(userID, cutoff)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{"userID": userID, "deleted": deleted}).Info("Pruned step records past retention")
	return nil
}
