package suggestion

import (
	"math/rand"
	"time"

	"github.com/IgorKammerGrahl/MoodTrack/internal/domain"
)

// Suggestion is one contextual wellbeing nudge.
type Suggestion struct {
	Type       string `json:"type"`
	Suggestion string `json:"suggestion"`
	Action     string `json:"action,omitempty"`
	Evidence   string `json:"evidence"`
}

// Context is what the engine knows about the user right now.
type Context struct {
	MoodLevel int
	Answers   domain.ContextualAnswers
}

// Engine produces rule-based suggestions from mood, answers and time
// of day. No model call; fully deterministic given a clock.
type Engine struct {
	now func() time.Time
}

func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// Generate picks the first matching rule, falling back to a general
// wellness tip.
func (e *Engine) Generate(userCtx Context) Suggestion {
	hour := e.now().Hour()

	if hour >= 6 && hour < 12 && userCtx.MoodLevel >= 1 && userCtx.MoodLevel <= 2 {
		return Suggestion{
			Type:       "behavioral_activation",
			Suggestion: "☀️ Bom dia! Que tal 5 minutos de sol pela janela? A luz matinal ajuda o humor.",
			Action:     "set_reminder",
			Evidence:   "Exposição à luz solar matinal reduz sintomas depressivos",
		}
	}

	if hour >= 12 && hour < 14 {
		if en := userCtx.Answers.String("energy"); en == "low" || en == "baixa" {
			return Suggestion{
				Type:       "energy_boost",
				Suggestion: "🚶 Uma caminhada de 10 minutos pode dar energia sem café.",
				Action:     "start_timer",
				Evidence:   "Exercício leve aumenta energia mais que cafeína",
			}
		}
	}

	if hour >= 20 && userCtx.Answers.Bool("worry", true) {
		return Suggestion{
			Type:       "sleep_hygiene",
			Suggestion: "🌙 Preocupações à noite? Tente anotar tudo num papel para tirar da cabeça.",
			Action:     "wind_down_mode",
			Evidence:   "Técnica de 'worry time' melhora latência do sono",
		}
	}

	if userCtx.MoodLevel >= 1 && userCtx.MoodLevel <= 2 {
		return Suggestion{
			Type:       "problem_solving",
			Suggestion: "💭 Dia difícil? Vamos dividir um problema em passos menores?",
			Action:     "open_problem_solver",
			Evidence:   "Problem-Solving Therapy eficaz para depressão",
		}
	}

	return generalWellnessTip()
}

var wellnessTips = []Suggestion{
	{
		Type:       "general_wellness",
		Suggestion: "💧 Já bebeu água hoje? A hidratação afeta diretamente o humor.",
		Evidence:   "Desidratação leve pode causar fadiga e ansiedade",
	},
	{
		Type:       "general_wellness",
		Suggestion: "🫁 Tente a respiração 4-7-8: inspire 4s, segure 7s, expire 8s.",
		Evidence:   "Ativa o sistema parassimpático e reduz estresse",
	},
	{
		Type:       "general_wellness",
		Suggestion: "📝 Escrever 3 coisas boas do dia pode mudar seu foco.",
		Evidence:   "Diário de gratidão aumenta bem-estar subjetivo",
	},
}

func generalWellnessTip() Suggestion {
	return wellnessTips[rand.Intn(len(wellnessTips))]
}
