package reflection

import "github.com/IgorKammerGrahl/MoodTrack/internal/domain"

// ClassifyDomain maps contextual follow-up answers to a psychological
// domain. Priority order, first match wins. Missing or unknown keys
// count as "signal absent", never as an error.
func ClassifyDomain(answers domain.ContextualAnswers) domain.DomainLabel {
	if answers.Bool("interest", false) {
		return domain.DomainAnhedonia
	}
	if answers.Bool("worry", true) {
		return domain.DomainExcessiveWorry
	}
	if e := answers.String("energy"); e == "low" || e == "baixa" {
		return domain.DomainFatigue
	}
	if answers.Bool("concentration", false) {
		return domain.DomainCognitiveDysfunction
	}
	return domain.DomainGeneralLowMood
}
