package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/alphabatem/common/context"
	"gorm.io/gorm"

	"github.com/itsmontel/steppet_api/dto"
	"github.com/itsmontel/steppet_api/model"
	"github.com/itsmontel/steppet_api/services/repositories"
	"github.com/itsmontel/steppet_api/shared"
)

// CreditService manages the boost credit ledger: the daily free allowance,
// purchased packs and spending credits into today's health boost.
type CreditService struct {
	context.DefaultService

	db            Storage
	userSvc       *UserService
	widgetSvc     *WidgetService
	monitoringSvc *MonitoringService

	pets    *repositories.PetRepository
	steps   *repositories.StepRepository
	credits *repositories.CreditRepository
}

const CREDIT_SVC = "credit_svc"

var creditPackages = map[string]int{
	"small":  3,
	"medium": 5,
	"large":  10,
}

func (svc CreditService) Id() string {
	return CREDIT_SVC
}

func (svc *CreditService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *CreditService) Start() error {
	svc.db = svc.Service(DB_SVC).(Storage)
	svc.userSvc = svc.Service(USER_SVC).(*UserService)
	svc.widgetSvc = svc.Service(WIDGET_SVC).(*WidgetService)
	svc.monitoringSvc = svc.Service(MONITORING_SVC).(*MonitoringService)

	svc.pets = repositories.NewPetRepository(svc.db.Db())
	svc.steps = repositories.NewStepRepository(svc.db.Db())
	svc.credits = repositories.NewCreditRepository(svc.db.Db())

	return nil
}

func (svc *CreditService) GetStatus(userID string) (*dto.CreditStatusResponse, error) {
	mu := svc.userSvc.LockUser(userID)
	mu.Lock()
	defer mu.Unlock()

	ledger, err := svc.currentLedger(userID, time.Now())
	if err != nil {
		return nil, err
	}
	resp := toCreditStatus(ledger)
	return &resp, nil
}

// SpendCredit converts one credit into a pet health boost. Free credits
// drain before purchased ones; a zero balance fails without mutation. The
// whole ledger-then-pet sequence runs under the user's mutex so concurrent
// spends or step submissions cannot interleave.
func (svc *CreditService) SpendCredit(userID string, req dto.SpendCreditRequest) (*dto.SpendCreditResponse, error) {
	mu := svc.userSvc.LockUser(userID)
	mu.Lock()
	defer mu.Unlock()

	now := time.Now()

	ledger, err := svc.currentLedger(userID, now)
	if err != nil {
		return nil, err
	}

	delta, ok := ledger.Spend(req.Kind, now)
	if !ok {
		return nil, shared.NewBadRequestError(fmt.Errorf("no credits for user %s", userID), "No credits available")
	}

	if err := svc.credits.UpdateLedger(ledger); err != nil {
		return nil, svc.db.HandleError(err)
	}

	pet, err := svc.pets.GetPet(userID)
	if err != nil {
		return nil, svc.db.HandleError(err)
	}

	stepHealth := 0
	if record, err := svc.steps.GetRecord(userID, model.StartOfDay(now)); err == nil {
		stepHealth = record.Health
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, svc.db.HandleError(err)
	}

	pet.SetHealth(model.CompositeHealth(stepHealth, ledger.TodayHealthBoost))
	if err := svc.pets.UpdatePet(pet); err != nil {
		return nil, svc.db.HandleError(err)
	}

	svc.widgetSvc.Invalidate(userID)
	svc.monitoringSvc.RecordCreditSpend(req.Kind)

	return &dto.SpendCreditResponse{
		Credits:     toCreditStatus(ledger),
		HealthDelta: delta,
		PetHealth:   pet.Health,
		PetMood:     pet.Mood(),
	}, nil
}

func (svc *CreditService) PurchaseCredits(userID string, req dto.PurchaseCreditsRequest) (*dto.CreditStatusResponse, error) {
	amount, ok := creditPackages[req.Package]
	if !ok {
		return nil, shared.NewBadRequestError(fmt.Errorf("unknown package %s", req.Package), "Unknown credit package")
	}

	mu := svc.userSvc.LockUser(userID)
	mu.Lock()
	defer mu.Unlock()

	ledger, err := svc.currentLedger(userID, time.Now())
	if err != nil {
		return nil, err
	}

	ledger.PurchasedCredits += amount
	if err := svc.credits.UpdateLedger(ledger); err != nil {
		return nil, svc.db.HandleError(err)
	}

	resp := toCreditStatus(ledger)
	return &resp, nil
}

// currentLedger loads the ledger with day-scoped state already rolled over.
func (svc *CreditService) currentLedger(userID string, now time.Time) (*model.CreditLedger, error) {
	ledger, err := svc.credits.GetLedger(userID)
	if err != nil {
		return nil, svc.db.HandleError(err)
	}
	if ledger.DailyReset(now) {
		if err := svc.credits.UpdateLedger(ledger); err != nil {
			return nil, svc.db.HandleError(err)
		}
	}
	return ledger, nil
}

func toCreditStatus(ledger *model.CreditLedger) dto.CreditStatusResponse {
	return dto.CreditStatusResponse{
		DailyFreeCredits: ledger.DailyFreeCredits,
		PurchasedCredits: ledger.PurchasedCredits,
		TotalCredits:     ledger.TotalCredits(),
		TodayHealthBoost: ledger.TodayHealthBoost,
	}
}
