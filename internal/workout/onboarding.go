package workout

import "strings"

// OnboardingText is the sample workout shown on first use.
var OnboardingText = strings.Join([]string{
	"Squat r90",
	"5*135*3",
	"5*185*3 // Felt strong",
	"",
	"Bench Press",
	"8*135 r45, 8*155 r60, 6*155",
	"",
	"Pull-ups",
	"10BW",
}, "\n")

// CardioExamples lists cardio lines accepted by the parser, for help output.
var CardioExamples = []string{"3mi 25:00", "15:00", "12:00 c200", "10km 30:00 c350"}
