package chat

import (
	"context"
	"fmt"

	"github.com/IgorKammerGrahl/MoodTrack/internal/app/reflection"
	"github.com/IgorKammerGrahl/MoodTrack/internal/domain"
)

const chatSystemPrompt = `Você é um assistente de bem-estar emocional treinado em Terapia Cognitivo-Comportamental (TCC). Você DEVE responder em Português (pt-BR).

Regras:
1. Responda de forma empática e acolhedora.
2. Use princípios da TCC quando relevante (validação emocional, reestruturação cognitiva, ações práticas).
3. Faça perguntas reflexivas quando apropriado.
4. Sugira micro-ações práticas quando o usuário demonstrar necessidade.
5. NUNCA diagnostique ou use termos clínicos.

Restrições:
- Máximo 100 palavras.
- Evite: "você tem depressão", "transtorno", "diagnóstico".
- Foque em: validação, esperança realista, ações práticas.
- Tom: conversacional, gentil, não-julgador.

Responda de forma natural, como um amigo compassivo e bem informado sobre saúde mental.`

const chatFallback = "Estou tendo dificuldades para conectar agora, mas estou aqui para ouvir. Como você está se sentindo?"

// Service answers free-form wellbeing chat messages. Crisis language
// takes the same hard precedence as in the reflection pipeline.
type Service struct {
	completer domain.Completer
}

func NewService(completer domain.Completer) *Service {
	return &Service{completer: completer}
}

// Respond returns the assistant reply for a chat message. recentMood
// of zero means "unknown" and adds no context line.
func (s *Service) Respond(ctx context.Context, message string, recentMood int) string {
	if reflection.DetectCrisis(message) {
		return reflection.CrisisMessage
	}

	userContent := message
	if recentMood >= 1 && recentMood <= 5 {
		userContent = fmt.Sprintf("Humor recente do usuário: %d/5\n\n%s", recentMood, message)
	}

	return s.completer.Complete(ctx, chatSystemPrompt, userContent, chatFallback)
}
