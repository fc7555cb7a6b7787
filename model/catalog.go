package model

const (
	CategoryGettingStarted = "getting_started"
	CategoryStreak         = "streak"
	CategorySteps          = "steps"
	CategoryHealth         = "health"
	CategoryConsistency    = "consistency"
	CategoryMilestones     = "milestones"
	CategorySpecial        = "special"

	RarityCommon    = "common"
	RarityUncommon  = "uncommon"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)

// AchievementDef is a static catalog entry. Title, description and icon are
// presentation data carried for the client; the engine only reads ID and
// Target.
type AchievementDef struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Rarity      string `json:"rarity"`
	Icon        string `json:"icon"`
	Target      int    `json:"target"`
}

// DailyAchievementIDs are the single-day-window achievements whose partial
// progress is zeroed at each day rollover.
var DailyAchievementIDs = []string{
	"step_up", "getting_started", "ten_thousand", "fifteen_k",
	"twenty_k", "marathon_day", "ultra_walker",
	"double_trouble", "triple_threat", "lucky_seven",
}

var catalog = []AchievementDef{
	{ID: "first_step", Title: "First Step", Description: "Complete your first day of step tracking", Category: CategoryGettingStarted, Rarity: RarityCommon, Icon: "star", Target: 1},
	{ID: "step_up", Title: "Step Up", Description: "Reach 1,000 steps in a single day", Category: CategoryGettingStarted, Rarity: RarityCommon, Icon: "shoe", Target: 1000},
	{ID: "getting_started", Title: "Getting Started", Description: "Reach 5,000 steps in a single day", Category: CategoryGettingStarted, Rarity: RarityCommon, Icon: "walk", Target: 5000},
	{ID: "goal_setter", Title: "Goal Setter", Description: "Set your first daily step goal", Category: CategoryGettingStarted, Rarity: RarityCommon, Icon: "target", Target: 1},
	{ID: "pet_parent", Title: "Pet Parent", Description: "Name your pet for the first time", Category: CategoryGettingStarted, Rarity: RarityCommon, Icon: "heart", Target: 1},
	{ID: "health_check", Title: "Health Check", Description: "View your pet's health status", Category: CategoryGettingStarted, Rarity: RarityCommon, Icon: "ecg", Target: 1},
	{ID: "explorer", Title: "Explorer", Description: "Visit all app sections", Category: CategoryGettingStarted, Rarity: RarityCommon, Icon: "map", Target: 5},
	{ID: "first_goal", Title: "First Goal", Description: "Achieve your daily step goal for the first time", Category: CategoryGettingStarted, Rarity: RarityCommon, Icon: "checkmark", Target: 1},
	{ID: "customizer", Title: "Customizer", Description: "Change your pet's appearance", Category: CategoryGettingStarted, Rarity: RarityCommon, Icon: "paintbrush", Target: 1},
	{ID: "notifications_on", Title: "Stay Connected", Description: "Enable notifications", Category: CategoryGettingStarted, Rarity: RarityCommon, Icon: "bell", Target: 1},

	{ID: "on_fire", Title: "On Fire", Description: "Maintain a 3-day goal streak", Category: CategoryStreak, Rarity: RarityCommon, Icon: "flame", Target: 3},
	{ID: "week_warrior", Title: "Week Warrior", Description: "Maintain a 7-day goal streak", Category: CategoryStreak, Rarity: RarityUncommon, Icon: "flame", Target: 7},
	{ID: "two_week_titan", Title: "Two Week Titan", Description: "Maintain a 14-day goal streak", Category: CategoryStreak, Rarity: RarityRare, Icon: "flame", Target: 14},
	{ID: "monthly_master", Title: "Monthly Master", Description: "Maintain a 30-day goal streak", Category: CategoryStreak, Rarity: RarityEpic, Icon: "flame", Target: 30},
	{ID: "streak_legend", Title: "Streak Legend", Description: "Maintain a 100-day goal streak", Category: CategoryStreak, Rarity: RarityLegendary, Icon: "flame", Target: 100},
	{ID: "comeback_kid", Title: "Comeback Kid", Description: "Recover your pet's health from sick to full health", Category: CategoryStreak, Rarity: RarityUncommon, Icon: "heart-up", Target: 1},
	{ID: "never_miss", Title: "Never Miss Monday", Description: "Hit your goal on 4 consecutive Mondays", Category: CategoryStreak, Rarity: RarityRare, Icon: "calendar", Target: 4},
	{ID: "weekend_warrior", Title: "Weekend Warrior", Description: "Hit your goal on 8 consecutive weekend days", Category: CategoryStreak, Rarity: RarityRare, Icon: "sun", Target: 8},
	{ID: "early_bird", Title: "Early Bird", Description: "Reach 50% of your goal before noon for 7 days", Category: CategoryStreak, Rarity: RarityUncommon, Icon: "sunrise", Target: 7},
	{ID: "night_owl", Title: "Night Owl", Description: "Complete your goal after 8 PM for 5 days", Category: CategoryStreak, Rarity: RarityUncommon, Icon: "moon", Target: 5},
	{ID: "consistent_walker", Title: "Consistent Walker", Description: "Hit your goal 5 days in a row", Category: CategoryStreak, Rarity: RarityUncommon, Icon: "repeat", Target: 5},
	{ID: "dedication", Title: "Pure Dedication", Description: "Maintain a 60-day goal streak", Category: CategoryStreak, Rarity: RarityEpic, Icon: "star-circle", Target: 60},

	{ID: "ten_thousand", Title: "10K Club", Description: "Walk 10,000 steps in a single day", Category: CategorySteps, Rarity: RarityCommon, Icon: "walk", Target: 10000},
	{ID: "fifteen_k", Title: "15K Achiever", Description: "Walk 15,000 steps in a single day", Category: CategorySteps, Rarity: RarityUncommon, Icon: "walk", Target: 15000},
	{ID: "twenty_k", Title: "20K Champion", Description: "Walk 20,000 steps in a single day", Category: CategorySteps, Rarity: RarityRare, Icon: "walk", Target: 20000},
	{ID: "marathon_day", Title: "Marathon Day", Description: "Walk 30,000 steps in a single day", Category: CategorySteps, Rarity: RarityEpic, Icon: "run", Target: 30000},
	{ID: "ultra_walker", Title: "Ultra Walker", Description: "Walk 50,000 steps in a single day", Category: CategorySteps, Rarity: RarityLegendary, Icon: "bolt", Target: 50000},
	{ID: "hundred_k_total", Title: "100K Total", Description: "Accumulate 100,000 total steps", Category: CategorySteps, Rarity: RarityCommon, Icon: "sum", Target: 100000},
	{ID: "half_million", Title: "Half Million", Description: "Accumulate 500,000 total steps", Category: CategorySteps, Rarity: RarityUncommon, Icon: "sum", Target: 500000},
	{ID: "millionaire", Title: "Step Millionaire", Description: "Accumulate 1,000,000 total steps", Category: CategorySteps, Rarity: RarityRare, Icon: "dollar", Target: 1000000},
	{ID: "five_million", Title: "Five Million Steps", Description: "Accumulate 5,000,000 total steps", Category: CategorySteps, Rarity: RarityEpic, Icon: "star", Target: 5000000},
	{ID: "ten_million", Title: "Ten Million Steps", Description: "Accumulate 10,000,000 total steps", Category: CategorySteps, Rarity: RarityLegendary, Icon: "crown", Target: 10000000},
	{ID: "weekly_75k", Title: "Weekly 75K", Description: "Walk 75,000 steps in a single week", Category: CategorySteps, Rarity: RarityUncommon, Icon: "calendar-plus", Target: 75000},
	{ID: "weekly_100k", Title: "Weekly 100K", Description: "Walk 100,000 steps in a single week", Category: CategorySteps, Rarity: RarityRare, Icon: "calendar-alert", Target: 100000},

	{ID: "full_health_first", Title: "Thriving", Description: "Reach 100% pet health for the first time", Category: CategoryHealth, Rarity: RarityCommon, Icon: "heart", Target: 1},
	{ID: "perfect_week", Title: "Perfect Week", Description: "Keep pet at 100% health for 7 consecutive days", Category: CategoryHealth, Rarity: RarityRare, Icon: "heart-circle", Target: 7},
	{ID: "perfect_month", Title: "Perfect Month", Description: "Keep pet at 100% health for 30 consecutive days", Category: CategoryHealth, Rarity: RarityLegendary, Icon: "heart-square", Target: 30},
	{ID: "never_sick", Title: "Never Sick", Description: "Never let pet fall to sick status for 14 days", Category: CategoryHealth, Rarity: RarityRare, Icon: "cross-case", Target: 14},
	{ID: "health_recovery", Title: "Health Recovery", Description: "Recover from below 50% to 100% in one day", Category: CategoryHealth, Rarity: RarityUncommon, Icon: "heart-up", Target: 1},
	{ID: "stable_health", Title: "Stable Health", Description: "Keep pet above 60% health for 10 days", Category: CategoryHealth, Rarity: RarityUncommon, Icon: "ecg", Target: 10},
	{ID: "always_happy", Title: "Always Happy", Description: "Keep pet at happy or full health for 5 days", Category: CategoryHealth, Rarity: RarityUncommon, Icon: "smile", Target: 5},
	{ID: "health_champion", Title: "Health Champion", Description: "Average 90%+ health for a month", Category: CategoryHealth, Rarity: RarityEpic, Icon: "trophy", Target: 1},
	{ID: "rescue_mission", Title: "Rescue Mission", Description: "Recover pet from sick status 5 times", Category: CategoryHealth, Rarity: RarityUncommon, Icon: "bandage", Target: 5},
	{ID: "guardian", Title: "Guardian", Description: "Never let pet fall below 40% health for 30 days", Category: CategoryHealth, Rarity: RarityEpic, Icon: "shield", Target: 30},

	{ID: "daily_walker", Title: "Daily Walker", Description: "Walk at least 1,000 steps every day for a week", Category: CategoryConsistency, Rarity: RarityCommon, Icon: "calendar-clock", Target: 7},
	{ID: "monthly_active", Title: "Monthly Active", Description: "Walk at least 1,000 steps every day for a month", Category: CategoryConsistency, Rarity: RarityRare, Icon: "calendar", Target: 30},
	{ID: "morning_routine", Title: "Morning Routine", Description: "Walk 3,000 steps before 9 AM for 7 days", Category: CategoryConsistency, Rarity: RarityUncommon, Icon: "alarm", Target: 7},
	{ID: "lunch_walker", Title: "Lunch Walker", Description: "Walk 2,000 steps during lunch hours for 5 days", Category: CategoryConsistency, Rarity: RarityUncommon, Icon: "fork-knife", Target: 5},
	{ID: "evening_stroll", Title: "Evening Stroll", Description: "Walk 3,000 steps after 6 PM for 7 days", Category: CategoryConsistency, Rarity: RarityUncommon, Icon: "sunset", Target: 7},
	{ID: "all_day_active", Title: "All Day Active", Description: "Walk steps in every 4-hour block for 3 days", Category: CategoryConsistency, Rarity: RarityRare, Icon: "clock", Target: 3},
	{ID: "goal_crusher", Title: "Goal Crusher", Description: "Exceed your daily goal by 50% for 5 days", Category: CategoryConsistency, Rarity: RarityRare, Icon: "bolt-heart", Target: 5},
	{ID: "steady_pace", Title: "Steady Pace", Description: "Hit exactly 10,000 steps (within 500) for 3 days", Category: CategoryConsistency, Rarity: RarityUncommon, Icon: "speedometer", Target: 3},

	{ID: "one_week_user", Title: "One Week User", Description: "Use StepPet for 7 days", Category: CategoryMilestones, Rarity: RarityCommon, Icon: "seven-circle", Target: 7},
	{ID: "one_month_user", Title: "One Month User", Description: "Use StepPet for 30 days", Category: CategoryMilestones, Rarity: RarityUncommon, Icon: "thirty-circle", Target: 30},
	{ID: "three_month_user", Title: "Three Month User", Description: "Use StepPet for 90 days", Category: CategoryMilestones, Rarity: RarityRare, Icon: "calendar-plus", Target: 90},
	{ID: "six_month_user", Title: "Six Month User", Description: "Use StepPet for 180 days", Category: CategoryMilestones, Rarity: RarityEpic, Icon: "calendar-alert", Target: 180},
	{ID: "one_year_user", Title: "One Year User", Description: "Use StepPet for 365 days", Category: CategoryMilestones, Rarity: RarityLegendary, Icon: "star-circle", Target: 365},
	{ID: "hundred_goals", Title: "100 Goals", Description: "Achieve your daily goal 100 times", Category: CategoryMilestones, Rarity: RarityRare, Icon: "hundred-circle", Target: 100},
	{ID: "thousand_goals", Title: "1000 Goals", Description: "Achieve your daily goal 1000 times", Category: CategoryMilestones, Rarity: RarityLegendary, Icon: "crown", Target: 1000},
	{ID: "first_anniversary", Title: "First Anniversary", Description: "Celebrate one year with your pet", Category: CategoryMilestones, Rarity: RarityLegendary, Icon: "gift", Target: 365},

	{ID: "new_years_walk", Title: "New Year's Walk", Description: "Hit your goal on January 1st", Category: CategorySpecial, Rarity: RarityRare, Icon: "party", Target: 1},
	{ID: "holiday_spirit", Title: "Holiday Spirit", Description: "Hit your goal on December 25th", Category: CategorySpecial, Rarity: RarityRare, Icon: "gift", Target: 1},
	{ID: "lucky_seven", Title: "Lucky Seven", Description: "Walk exactly 7,777 steps in a day", Category: CategorySpecial, Rarity: RarityRare, Icon: "seven-circle", Target: 1},
	{ID: "double_trouble", Title: "Double Trouble", Description: "Walk double your daily goal", Category: CategorySpecial, Rarity: RarityUncommon, Icon: "two-circle", Target: 1},
	{ID: "triple_threat", Title: "Triple Threat", Description: "Walk triple your daily goal", Category: CategorySpecial, Rarity: RarityRare, Icon: "three-circle", Target: 1},
	{ID: "photo_finish", Title: "Photo Finish", Description: "Complete your goal with exactly 0 steps remaining", Category: CategorySpecial, Rarity: RarityEpic, Icon: "camera", Target: 1},
	{ID: "close_call", Title: "Close Call", Description: "Complete your goal in the last hour of the day", Category: CategorySpecial, Rarity: RarityUncommon, Icon: "clock-alert", Target: 1},
	{ID: "overachiever", Title: "Overachiever", Description: "Exceed your weekly goal by 25%", Category: CategorySpecial, Rarity: RarityUncommon, Icon: "arrow-up-circle", Target: 1},
	{ID: "pet_lover", Title: "Pet Lover", Description: "Try all 5 different pets", Category: CategorySpecial, Rarity: RarityRare, Icon: "pawprint", Target: 5},
	{ID: "premium_supporter", Title: "Premium Supporter", Description: "Upgrade to StepPet Premium", Category: CategorySpecial, Rarity: RarityEpic, Icon: "crown", Target: 1},
}

// Catalog returns the static achievement definitions in display order.
func Catalog() []AchievementDef {
	out := make([]AchievementDef, len(catalog))
	copy(out, catalog)
	return out
}

func CatalogDef(id string) (AchievementDef, bool) {
	for _, def := range catalog {
		if def.ID == id {
			return def, true
		}
	}
	return AchievementDef{}, false
}
