package reflection

import "strings"

// crisisKeywords are matched as case-insensitive substrings anywhere in
// the note. Kept lowercase; DetectCrisis lowercases the input.
var crisisKeywords = []string{
	"suicídio", "me matar", "acabar com tudo",
	"não aguento mais", "quero morrer", "desesperado",
	"sem saída", "tirar minha vida",
}

// CrisisMessage is persisted verbatim as the reflection whenever risk
// language is detected. No model is ever called on that path.
const CrisisMessage = `🆘 **Você não está sozinho**

Se você está pensando em se machucar, busque ajuda AGORA:

📞 **CVV - 188** (24h, gratuito, sigiloso)
🏥 **SAMU - 192** (emergências)
💙 Sua vida importa. Profissionais podem ajudar.`

// DetectCrisis reports whether the note contains risk language.
// An empty note is never a crisis.
func DetectCrisis(note string) bool {
	if note == "" {
		return false
	}
	lower := strings.ToLower(note)
	for _, kw := range crisisKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
