// Package assessment holds the static daily mood question catalog
// (WHO-5 primary scale plus PHQ-9/GAD-7 inspired follow-ups) that the
// client renders. The follow-up ids are the keys the domain classifier
// reads back from contextual answers.
package assessment

type ScaleOption struct {
	Value int    `json:"value"`
	Emoji string `json:"emoji"`
	Label string `json:"label"`
	Color string `json:"color"`
}

type PrimaryQuestion struct {
	Question string        `json:"question"`
	Scale    []ScaleOption `json:"scale"`
}

type ContextualQuestion struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Type     string `json:"type"` // "boolean" or "scale_3"
	Domain   string `json:"psychological_domain"`
}

type OpenQuestion struct {
	Question  string `json:"question"`
	MaxLength int    `json:"max_length"`
}

type QuestionSet struct {
	Primary     PrimaryQuestion                 `json:"primary"`
	Contextual  map[string][]ContextualQuestion `json:"contextual"`
	OpenEnded   OpenQuestion                    `json:"open_ended"`
	Disclaimers []string                        `json:"disclaimers"`
}

// Disclaimers shown on first launch.
var Disclaimers = []string{
	"✅ Este app NÃO substitui psicólogo ou psiquiatra",
	"✅ Não fazemos diagnósticos clínicos",
	"✅ Em crise, ligue CVV 188 (gratuito, 24h)",
	"✅ Seus dados são privados e criptografados",
}

// DailyQuestions is the full catalog served to clients.
var DailyQuestions = QuestionSet{
	Primary: PrimaryQuestion{
		Question: "Como você se sentiu hoje?",
		Scale: []ScaleOption{
			{Value: 1, Emoji: "😢", Label: "Muito mal", Color: "#FF5459"},
			{Value: 2, Emoji: "😔", Label: "Mal", Color: "#E68161"},
			{Value: 3, Emoji: "😐", Label: "Neutro", Color: "#77797C"},
			{Value: 4, Emoji: "😊", Label: "Bem", Color: "#32B8C6"},
			{Value: 5, Emoji: "😄", Label: "Muito bem", Color: "#218D8D"},
		},
	},
	Contextual: map[string][]ContextualQuestion{
		// Shown when mood <= 2.
		"depression": {
			{ID: "interest", Question: "Você teve interesse ou prazer em fazer as coisas hoje?", Type: "boolean", Domain: "anhedonia"},
			{ID: "energy", Question: "Como estava sua energia hoje?", Type: "scale_3", Domain: "fatigue"},
			{ID: "concentration", Question: "Conseguiu se concentrar nas tarefas?", Type: "boolean", Domain: "cognitive_function"},
		},
		// Shown when mood <= 2 or the user reports anxiety.
		"anxiety": {
			{ID: "worry", Question: "Você se preocupou excessivamente hoje?", Type: "boolean", Domain: "excessive_worry"},
			{ID: "restlessness", Question: "Se sentiu inquieto(a) ou com dificuldade para relaxar?", Type: "boolean", Domain: "restlessness"},
		},
	},
	OpenEnded: OpenQuestion{
		Question:  "Quer contar mais sobre seu dia? (opcional)",
		MaxLength: 500,
	},
	Disclaimers: Disclaimers,
}
