package reflection

import "github.com/IgorKammerGrahl/MoodTrack/internal/domain"

// techniques maps every domain label to its CBT technique. The table
// is total over the labels ClassifyDomain can produce; TechniqueFor
// falls back to general_low_mood for anything else.
var techniques = map[domain.DomainLabel]domain.Technique{
	domain.DomainAnhedonia: {
		Name:        "Ativação Comportamental",
		Description: "Aumentar atividades prazerosas",
		Fallback:    "Estou com dificuldades para conectar agora. Que tal escolher uma pequena atividade que costumava te dar prazer e reservar dez minutos para ela hoje?",
	},
	domain.DomainExcessiveWorry: {
		Name:        "Reestruturação Cognitiva",
		Description: "Desafiar pensamentos catastróficos",
		Fallback:    "Estou com dificuldades para conectar agora. Quando a preocupação apertar, tente se perguntar: qual a evidência real de que o pior vai acontecer?",
	},
	domain.DomainFatigue: {
		Name:        "Ativação Comportamental + Higiene do Sono",
		Description: "Pequenas atividades + rotina de sono",
		Fallback:    "Estou com dificuldades para conectar agora. Seu corpo pode estar pedindo descanso: um passo pequeno, como uma caminhada curta ou dormir um pouco mais cedo, já conta.",
	},
	domain.DomainCognitiveDysfunction: {
		Name:        "Resolução de Problemas",
		Description: "Dividir tarefas em micro-passos",
		Fallback:    "Estou com dificuldades para conectar agora. Tente dividir a próxima tarefa em passos bem pequenos e comece só pelo primeiro.",
	},
	domain.DomainGeneralLowMood: {
		Name:        "Autocompaixão (Mindful Self-Compassion)",
		Description: "Autocompaixão e validação emocional",
		Fallback:    "Estou com dificuldades para conectar agora, mas lembre-se que seus sentimentos são válidos. Tente respirar fundo.",
	},
}

// TechniqueFor resolves the coping technique for a domain label.
func TechniqueFor(label domain.DomainLabel) domain.Technique {
	if t, ok := techniques[label]; ok {
		return t
	}
	return techniques[domain.DomainGeneralLowMood]
}
