package assistant

import "fmt"

// Sentinel is the exact string the grounded prompt instructs the model to
// emit when the supplied context cannot answer the question. It is an
// internal control signal and must never reach the user.
const Sentinel = "NO_CONTEXT"

// WelcomeMessage seeds every new chat as the first assistant turn.
const WelcomeMessage = "Hi! I’m your AI Health Assistant. Ask me about symptoms, diseases, prevention, diet, and healthy habits."

// RefusalMessage is the fixed reply for out-of-domain questions. It is
// returned without any generation call.
const RefusalMessage = "⚠️ I am a medical awareness assistant.\n" +
	"Ask health/medicine questions.\n" +
	"If you uploaded a file, ask: 'Explain this pdf' / 'What medicine is in this image?'"

func systemPrompt(lang Language) string {
	return fmt.Sprintf(`You are a medical awareness assistant (NOT a doctor).
Safety rules:
- Answer only health/medical awareness queries.
- Do NOT diagnose.
- Do NOT give dosages.
- Give safe general guidance.
- Clearly say when to consult a doctor.
- If emergency signs, advise immediate medical help.

LANGUAGE RULE (VERY IMPORTANT):
- Selected language: %s (%s)
- %s
- If the user writes in a different language, still respond ONLY in %s.`,
		lang.Name, lang.Code, lang.Rule, lang.Name)
}

func groundedPrompt(context, question string) string {
	return fmt.Sprintf(`You MUST answer strictly from the context below.

IMPORTANT RULES:
- If medicine name appears → mention it clearly.
- If tablet/drug info present → explain its use.
- Do NOT give generic medicine examples.
- Do NOT guess.
- If answer missing → reply EXACTLY: %s

Context:
%s

User question:
%s

Answer:`, Sentinel, context, question)
}

func fallbackPrompt(question string) string {
	return fmt.Sprintf(`The user asked a medical question, but reliable book context was missing.

Give SAFE, GENERAL medical guidance only.

Instructions:
- Suggest 3–5 basic home remedies if applicable
- Mention common OTC medicines (example: paracetamol) — but NO dosage
- Clearly say when to consult a doctor
- Do NOT diagnose
- Be calm and reassuring

User Question:
%s

Answer:`, question)
}

func classifierPrompt(question string) string {
	return fmt.Sprintf(`You are a strict classifier.

Is the following question related to medicine, health, disease,
symptoms, diagnosis, treatment, drugs, prevention, or healthcare?

Question: %q

Reply with ONLY one word:
YES or NO`, question)
}

func titlePrompt(firstMessage string) string {
	return fmt.Sprintf(`Create a short chat title (max 6 words) based on this first user message.
Return ONLY the title text (no quotes, no extra words).

User message: %s`, firstMessage)
}
