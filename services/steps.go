package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/itsmontel/steppet_api/dto"
	"github.com/itsmontel/steppet_api/model"
	"github.com/itsmontel/steppet_api/services/repositories"
	"github.com/itsmontel/steppet_api/shared"
)

// StepService is the write path of the engine: a step submission updates the
// day record, the pet's health, the streak, lifetime totals and the
// achievement set in one pass.
type StepService struct {
	context.DefaultService

	db             Storage
	userSvc        *UserService
	achievementSvc *AchievementService
	widgetSvc      *WidgetService
	monitoringSvc  *MonitoringService

	users         *repositories.UserRepository
	pets          *repositories.PetRepository
	steps         *repositories.StepRepository
	credits       *repositories.CreditRepository
	notifications *repositories.NotificationRepository
}

const STEP_SVC = "step_svc"

func (svc StepService) Id() string {
	return STEP_SVC
}

func (svc *StepService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *StepService) Start() error {
	svc.db = svc.Service(DB_SVC).(Storage)
	svc.userSvc = svc.Service(USER_SVC).(*UserService)
	svc.achievementSvc = svc.Service(ACHIEVEMENT_SVC).(*AchievementService)
	svc.widgetSvc = svc.Service(WIDGET_SVC).(*WidgetService)
	svc.monitoringSvc = svc.Service(MONITORING_SVC).(*MonitoringService)

	svc.users = repositories.NewUserRepository(svc.db.Db())
	svc.pets = repositories.NewPetRepository(svc.db.Db())
	svc.steps = repositories.NewStepRepository(svc.db.Db())
	svc.credits = repositories.NewCreditRepository(svc.db.Db())
	svc.notifications = repositories.NewNotificationRepository(svc.db.Db())

	return nil
}

// RecordSteps ingests a step total for one day. Submissions are cumulative
// totals, not deltas, so resubmitting the same day overwrites the record.
// A client timestamp is honored for the hour of day but must fall on the
// current day; past days stay immutable.
func (svc *StepService) RecordSteps(userID string, req dto.RecordStepsRequest) (*dto.RecordStepsResponse, error) {
	mu := svc.userSvc.LockUser(userID)
	mu.Lock()
	defer mu.Unlock()

	now := time.Now()
	if req.RecordedAt != nil {
		if !model.StartOfDay(*req.RecordedAt).Equal(model.StartOfDay(now)) {
			return nil, shared.NewBadRequestError(
				fmt.Errorf("recorded_at %s is not today", req.RecordedAt.Format("2006-01-02")),
				"Steps can only be recorded for the current day")
		}
		now = *req.RecordedAt
	}
	day := model.StartOfDay(now)

	user, err := svc.users.GetUser(userID)
	if err != nil {
		return nil, svc.db.HandleError(err)
	}

	// Day-scoped credit state must be current before the composite health
	// formula runs.
	ledger, err := svc.credits.GetLedger(userID)
	if err != nil {
		return nil, svc.db.HandleError(err)
	}
	if ledger.DailyReset(now) {
		if err := svc.credits.UpdateLedger(ledger); err != nil {
			return nil, svc.db.HandleError(err)
		}
	}

	prevSteps := 0
	prevMet := false
	if prev, err := svc.steps.GetRecord(userID, day); err == nil {
		prevSteps = prev.Steps
		prevMet = prev.GoalMet()
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, svc.db.HandleError(err)
	}

	record, err := svc.steps.UpsertRecord(userID, day, req.Steps, user.DailyStepGoal)
	if err != nil {
		return nil, svc.db.HandleError(err)
	}

	goalMet := record.GoalMet()
	goalJustAchieved := goalMet && !prevMet

	pet, err := svc.pets.GetPet(userID)
	if err != nil {
		return nil, svc.db.HandleError(err)
	}
	prevHealth := pet.Health
	pet.SetHealth(model.CompositeHealth(record.Health, ledger.TodayHealthBoost))
	if err := svc.pets.UpdatePet(pet); err != nil {
		return nil, svc.db.HandleError(err)
	}

	streak, err := svc.steps.GetStreak(userID)
	if err != nil {
		return nil, svc.db.HandleError(err)
	}
	prevStreak := streak.CurrentStreak
	streak.Update(goalMet, now)
	if err := svc.steps.UpdateStreak(streak); err != nil {
		return nil, svc.db.HandleError(err)
	}
	milestone := model.CrossedMilestone(prevStreak, streak.CurrentStreak)

	if user.LastSeenDay == nil || !user.LastSeenDay.Equal(day) {
		user.DaysUsed++
		user.LastSeenDay = &day
	}
	user.TotalSteps += int64(record.Steps - prevSteps)
	if goalJustAchieved {
		user.GoalsAchieved++
	}
	if err := svc.users.UpdateUser(user); err != nil {
		return nil, svc.db.HandleError(err)
	}

	weekSteps, err := svc.weekSteps(userID, now)
	if err != nil {
		log.WithError(err).WithField("userID", userID).Warn("Failed to sum week steps")
	}

	snapshot := model.MetricsSnapshot{
		Date:             now,
		TodaySteps:       record.Steps,
		WeekSteps:        weekSteps,
		TotalSteps:       int(user.TotalSteps),
		Streak:           streak.CurrentStreak,
		Health:           pet.Health,
		PrevHealth:       prevHealth,
		GoalSteps:        user.DailyStepGoal,
		GoalsAchieved:    user.GoalsAchieved,
		DaysUsed:         user.DaysUsed,
		PetsUsed:         user.PetsUsed,
		GoalJustAchieved: goalJustAchieved,
	}

	unlocked, err := svc.achievementSvc.Evaluate(userID, snapshot)
	if err != nil {
		log.WithError(err).WithField("userID", userID).Error("Achievement evaluation failed")
		unlocked = nil
	}

	svc.emitEvents(userID, pet.Name, goalJustAchieved, unlocked, milestone)
	svc.widgetSvc.Invalidate(userID)
	svc.monitoringSvc.RecordStepUpdate(len(unlocked))

	return &dto.RecordStepsResponse{
		Record:        toStepRecordResponse(record),
		Pet:           *toPetResponse(pet),
		Streak:        toStreakResponse(streak),
		NewUnlocks:    toAchievementResponses(unlocked),
		GoalAchieved:  goalMet,
		StreakCrossed: milestone,
	}, nil
}

func (svc *StepService) weekSteps(userID string, now time.Time) (int, error) {
	start := model.WeekStart(now)
	records, err := svc.steps.GetRange(userID, start, start.AddDate(0, 0, 7))
	if err != nil {
		return 0, err
	}
	total := 0
	for _, r := range records {
		total += r.Steps
	}
	return total, nil
}

func (svc *StepService) emitEvents(userID, petName string, goalAchieved bool, unlocked []model.Achievement, milestone int) {
	if goalAchieved {
		event := &model.NotificationEvent{UserID: userID, Kind: model.EventGoalAchieved, PetName: petName}
		if err := svc.notifications.CreateEvent(event); err != nil {
			log.WithError(err).WithField("userID", userID).Warn("Failed to emit goal event")
		}
	}

	for _, a := range unlocked {
		event := &model.NotificationEvent{UserID: userID, Kind: model.EventAchievementUnlocked, RefID: a.ID, PetName: petName}
		if err := svc.notifications.CreateEvent(event); err != nil {
			log.WithError(err).WithField("userID", userID).Warn("Failed to emit unlock event")
		}
	}

	if milestone > 0 {
		event := &model.NotificationEvent{UserID: userID, Kind: model.EventStreakMilestone, PetName: petName, Streak: milestone}
		if err := svc.notifications.CreateEvent(event); err != nil {
			log.WithError(err).WithField("userID", userID).Warn("Failed to emit milestone event")
		}
	}
}

// ==================== READ PATH ====================

func (svc *StepService) GetToday(userID string) (*dto.StepRecordResponse, error) {
	day := model.StartOfDay(time.Now())

	record, err := svc.steps.GetRecord(userID, day)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user, err := svc.users.GetUser(userID)
			if err != nil {
				return nil, svc.db.HandleError(err)
			}
			return &dto.StepRecordResponse{Day: day, GoalSteps: user.DailyStepGoal}, nil
		}
		return nil, svc.db.HandleError(err)
	}

	resp := toStepRecordResponse(record)
	return &resp, nil
}

func (svc *StepService) GetHistory(userID string, days int) (*dto.StepHistoryResponse, error) {
	if days <= 0 {
		days = 30
	}
	if days > model.RetentionDays {
		days = model.RetentionDays
	}

	end := model.StartOfDay(time.Now()).AddDate(0, 0, 1)
	records, err := svc.steps.GetRange(userID, end.AddDate(0, 0, -days), end)
	if err != nil {
		return nil, svc.db.HandleError(err)
	}

	out := make([]dto.StepRecordResponse, len(records))
	for i := range records {
		out[i] = toStepRecordResponse(&records[i])
	}
	return &dto.StepHistoryResponse{Records: out, Total: len(out)}, nil
}

func (svc *StepService) GetWeeklySummary(userID string) (*dto.PeriodSummaryResponse, error) {
	start := model.WeekStart(time.Now())
	return svc.summarize(userID, start, start.AddDate(0, 0, 7))
}

func (svc *StepService) GetMonthlySummary(userID string) (*dto.PeriodSummaryResponse, error) {
	start := model.MonthStart(time.Now())
	return svc.summarize(userID, start, start.AddDate(0, 1, 0))
}

func (svc *StepService) summarize(userID string, start, end time.Time) (*dto.PeriodSummaryResponse, error) {
	records, err := svc.steps.GetRange(userID, start, end)
	if err != nil {
		return nil, svc.db.HandleError(err)
	}

	summary := model.Summarize(records, start, end)
	return &dto.PeriodSummaryResponse{
		Start:         summary.Start,
		End:           summary.End,
		TotalSteps:    summary.TotalSteps,
		AverageSteps:  summary.AverageSteps,
		GoalsAchieved: summary.GoalsAchieved,
		BestDay:       summary.BestDay,
		AverageHealth: summary.AverageHealth,
		LongestStreak: summary.LongestStreak,
	}, nil
}

func (svc *StepService) GetLifetimeStats(userID string) (*dto.LifetimeStatsResponse, error) {
	user, err := svc.users.GetUser(userID)
	if err != nil {
		return nil, svc.db.HandleError(err)
	}

	best, err := svc.steps.BestDay(userID)
	if err != nil {
		return nil, svc.db.HandleError(err)
	}

	return &dto.LifetimeStatsResponse{
		TotalSteps:    user.TotalSteps,
		GoalsAchieved: user.GoalsAchieved,
		DaysUsed:      user.DaysUsed,
		BestDay:       best,
	}, nil
}

// GetStreak returns the streak after a lazy re-evaluation: a streak whose
// anchor is more than one day old collapses on read, it does not wait for
// the next submission.
func (svc *StepService) GetStreak(userID string) (*dto.StreakResponse, error) {
	streak, err := svc.steps.GetStreak(userID)
	if err != nil {
		return nil, svc.db.HandleError(err)
	}

	before := streak.CurrentStreak
	streak.Update(false, time.Now())
	if streak.CurrentStreak != before {
		if err := svc.steps.UpdateStreak(streak); err != nil {
			return nil, svc.db.HandleError(err)
		}
	}

	resp := toStreakResponse(streak)
	return &resp, nil
}

func toStepRecordResponse(r *model.DailyStepRecord) dto.StepRecordResponse {
	return dto.StepRecordResponse{
		Day:       r.Day,
		Steps:     r.Steps,
		GoalSteps: r.GoalSteps,
		Health:    r.Health,
		GoalMet:   r.GoalMet(),
	}
}

func toStreakResponse(s *model.StreakData) dto.StreakResponse {
	return dto.StreakResponse{
		CurrentStreak:        s.CurrentStreak,
		LongestStreak:        s.LongestStreak,
		Badge:                s.Badge(),
		LastGoalAchievedDate: s.LastGoalAchievedDate,
	}
}
