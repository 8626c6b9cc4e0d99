package reflection

import (
	"fmt"

	"github.com/IgorKammerGrahl/MoodTrack/internal/domain"
)

const reflectionSystemPrompt = `Você é um assistente de bem-estar emocional treinado em Terapia Cognitivo-Comportamental (TCC). Você DEVE responder em Português (pt-BR).

Regras:
1. Valide os sentimentos do usuário (empatia).
2. Ofereça UMA reflexão baseada em %s.
3. Sugira UMA ação concreta e pequena (micro-passo).
4. Use linguagem acolhedora e não-julgadora.
5. NUNCA diagnostique ou use termos clínicos.

Restrições:
- Máximo 150 palavras.
- Evite: "você tem depressão", "transtorno", "diagnóstico".
- Foque em: ações práticas, validação emocional, esperança realista.

Formato da Resposta:
💙 [Validação Empática]

💡 [Reflexão TCC Específica]

🌱 [Micro-ação Sugerida]`

// Prompt represents the system prompt + the content to send as "user".
type Prompt struct {
	System string
	User   string
}

// BuildPrompt builds the structured prompt for one reflection request.
// An absent note becomes an explicit placeholder, never an empty
// interpolation.
func BuildPrompt(req domain.ReflectionRequest, label domain.DomainLabel, tech domain.Technique) Prompt {
	note := req.Note
	if note == "" {
		note = "Nenhuma nota fornecida"
	}

	user := fmt.Sprintf("Nível de Humor: %d/5\nDomínio Afetado: %s\nTécnica TCC Recomendada: %s\nNota do Usuário: %q",
		req.MoodLevel, label, tech.Name, note)

	return Prompt{
		System: fmt.Sprintf(reflectionSystemPrompt, tech.Name),
		User:   user,
	}
}
