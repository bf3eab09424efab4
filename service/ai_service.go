package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"econ-analyzer/domain"
)

type AIService struct {
	apiKey     string
	apiURL     string
	enabled    bool
	httpClient *http.Client
}

type OpenAIRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type OpenAIResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

func NewAIService() *AIService {
	apiKey := os.Getenv("OPENAI_API_KEY")
	enabled := apiKey != ""

	return &AIService{
		apiKey:  apiKey,
		apiURL:  "https://api.openai.com/v1/chat/completions",
		enabled: enabled,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GenerateRecommendationExplanation genera una explicación inteligente de por
// qué el proyecto ganador es la mejor alternativa de inversión.
func (s *AIService) GenerateRecommendationExplanation(
	winnerName string,
	winnerNPV float64,
	studyPeriod int,
	marrPercent float64,
	alternatives []domain.ProjectResult,
) string {
	if !s.enabled {
		return s.generateFallbackExplanation(winnerName, winnerNPV, studyPeriod, marrPercent)
	}

	prompt := fmt.Sprintf(`Analiza esta comparación de proyectos de inversión y genera una explicación clara y educativa de la recomendación.

CONTEXTO DEL ANÁLISIS:
- Proyecto recomendado: %s
- Valor Presente Neto (VPN): $%.2f
- Período de estudio: %d años (mínimo común múltiplo de las vidas útiles)
- Tasa mínima atractiva de retorno (MARR): %.2f%% anual

ALTERNATIVAS EVALUADAS:
%s

INSTRUCCIONES:
1. Explica de manera clara y sencilla por qué el proyecto %s es la mejor opción según su VPN sobre el horizonte común de %d años.
2. Menciona que el método del MCM permite comparar alternativas con vidas útiles distintas como ciclos completos repetidos.
3. Si hay alternativas, compara brevemente sus VPN con el del proyecto recomendado.
4. Sé preciso con los números y evita jerga innecesaria.

Genera una explicación de 3-4 oraciones que sea fácil de entender para cualquier persona.`,
		winnerName, winnerNPV, studyPeriod, marrPercent,
		s.formatAlternatives(alternatives),
		winnerName, studyPeriod)

	explanation, err := s.callLLM(prompt)
	if err != nil {
		log.Printf("Error calling AI service for recommendation: %v", err)
		return s.generateFallbackExplanation(winnerName, winnerNPV, studyPeriod, marrPercent)
	}

	return explanation
}

func (s *AIService) callLLM(prompt string) (string, error) {
	reqBody := OpenAIRequest{
		Model: "gpt-4o-mini",
		Messages: []Message{
			{
				Role:    "system",
				Content: "Eres un asesor experto en ingeniería económica. Explicas comparaciones de proyectos de inversión por Valor Presente Neto de forma clara, precisa y educativa en español. Conoces el método del mínimo común múltiplo para comparar alternativas con vidas útiles desiguales y siempre presentas los montos en dólares estadounidenses. Tus explicaciones ayudan a tomar decisiones de inversión informadas.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens: 300,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var openAIResp OpenAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&openAIResp); err != nil {
		return "", err
	}

	if len(openAIResp.Choices) == 0 {
		return "", fmt.Errorf("no response from AI")
	}

	return openAIResp.Choices[0].Message.Content, nil
}

func (s *AIService) formatAlternatives(alternatives []domain.ProjectResult) string {
	if len(alternatives) == 0 {
		return "- (sin alternativas adicionales)"
	}
	var result strings.Builder
	for _, alt := range alternatives {
		result.WriteString(fmt.Sprintf("- %s: VPN $%.2f, vida útil %d años\n",
			alt.ProjectName, alt.NPV, alt.LifeSpan))
	}
	return result.String()
}

func (s *AIService) generateFallbackExplanation(
	winnerName string,
	winnerNPV float64,
	studyPeriod int,
	marrPercent float64,
) string {
	return fmt.Sprintf("El proyecto %s obtiene el mayor Valor Presente Neto ($%.2f) al descontar sus flujos al %.2f%% anual sobre el horizonte común de %d años. El período de estudio es el mínimo común múltiplo de las vidas útiles, lo que permite comparar alternativas con ciclos de reemplazo distintos como ciclos completos repetidos. Bajo estos supuestos, es la opción que hace un uso más eficiente del capital.",
		winnerName, winnerNPV, marrPercent, studyPeriod)
}
