package services

import "github.com/fertivia/clinic/internal/models"

// DASS subscale labels as sent by the client app. Answers carrying any
// other label are ignored by scoring.
const (
	SubscaleDepression = "depression"
	SubscaleAnxiety    = "anxiety"
	SubscaleStress     = "stress"
)

// Severity bands in ascending order. A subscale sum maps to the first band
// whose upper bound it does not exceed; the bounds are inclusive.
var severityLabels = [5]string{"Normal", "Mild", "Moderate", "Severe", "Extremely Severe"}

var (
	depressionThresholds = [4]int{9, 13, 20, 27}
	anxietyThresholds    = [4]int{7, 9, 14, 19}
	stressThresholds     = [4]int{14, 18, 25, 33}
)

// ScoreDASS sums the answered questions per subscale and maps each sum to
// its severity band. Pure and total: an empty answer list yields all-zero
// scores with "Normal" severities.
func ScoreDASS(answers []models.TestAnswer) models.DASSResult {
	var depression, anxiety, stress int
	for _, answer := range answers {
		switch answer.Subscale {
		case SubscaleDepression:
			depression += answer.Score
		case SubscaleAnxiety:
			anxiety += answer.Score
		case SubscaleStress:
			stress += answer.Score
		}
	}

	return models.DASSResult{
		Depression: models.SubscaleResult{Score: depression, Severity: severityFor(depression, depressionThresholds)},
		Anxiety:    models.SubscaleResult{Score: anxiety, Severity: severityFor(anxiety, anxietyThresholds)},
		Stress:     models.SubscaleResult{Score: stress, Severity: severityFor(stress, stressThresholds)},
	}
}

func severityFor(score int, thresholds [4]int) string {
	for index, limit := range thresholds {
		if score <= limit {
			return severityLabels[index]
		}
	}
	return severityLabels[len(severityLabels)-1]
}
