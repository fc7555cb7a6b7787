package shared

const (
	UserID   = "user_id"
	DeviceID = "device_id"

	SpeciesDog     = "dog"
	SpeciesCat     = "cat"
	SpeciesBunny   = "bunny"
	SpeciesHamster = "hamster"
	SpeciesHorse   = "horse"

	MoodSick       = "sick"
	MoodSad        = "sad"
	MoodContent    = "content"
	MoodHappy      = "happy"
	MoodFullHealth = "fullHealth"

	CreditSourceGame     = "game"
	CreditSourceActivity = "activity"
	CreditSourcePurchase = "purchase"

	BadgeNone     = "none"
	BadgeBronze   = "bronze"
	BadgeSilver   = "silver"
	BadgeGold     = "gold"
	BadgePlatinum = "platinum"
	BadgeDiamond  = "diamond"
)
