package model

import (
	"testing"

	"github.com/itsmontel/steppet_api/shared"
)

func TestMoodFromHealth(t *testing.T) {
	cases := []struct {
		health int
		mood   string
	}{
		{0, shared.MoodSick},
		{20, shared.MoodSick},
		{21, shared.MoodSad},
		{40, shared.MoodSad},
		{41, shared.MoodContent},
		{60, shared.MoodContent},
		{61, shared.MoodHappy},
		{80, shared.MoodHappy},
		{81, shared.MoodFullHealth},
		{100, shared.MoodFullHealth},
	}

	for _, c := range cases {
		if got := MoodFromHealth(c.health); got != c.mood {
			t.Errorf("MoodFromHealth(%d) = %q, want %q", c.health, got, c.mood)
		}
	}
}

func TestMoodFromHealth_OutOfRange(t *testing.T) {
	if got := MoodFromHealth(-5); got != shared.MoodSick {
		t.Errorf("MoodFromHealth(-5) = %q, want %q", got, shared.MoodSick)
	}
	if got := MoodFromHealth(150); got != shared.MoodFullHealth {
		t.Errorf("MoodFromHealth(150) = %q, want %q", got, shared.MoodFullHealth)
	}
}

func TestPetSetHealth_Clamps(t *testing.T) {
	p := Pet{}

	p.SetHealth(120)
	if p.Health != 100 {
		t.Errorf("SetHealth(120): health = %d, want 100", p.Health)
	}

	p.SetHealth(-10)
	if p.Health != 0 {
		t.Errorf("SetHealth(-10): health = %d, want 0", p.Health)
	}
}

func TestValidSpecies(t *testing.T) {
	if !ValidSpecies(DefaultPetKind) {
		t.Errorf("ValidSpecies(%q) = false, want true", DefaultPetKind)
	}
	if ValidSpecies("unicorn") {
		t.Error("ValidSpecies(\"unicorn\") = true, want false")
	}
}

func TestPremiumSpecies(t *testing.T) {
	for _, s := range AllSpecies {
		if PremiumSpecies(s.Species) != s.Premium {
			t.Errorf("PremiumSpecies(%q) = %v, want %v", s.Species, !s.Premium, s.Premium)
		}
	}
}
