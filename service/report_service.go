package service

import (
	"fmt"
	"time"

	"econ-analyzer/domain"
)

type ReportService struct {
	analysisService *AnalysisService
	aiService       *AIService
}

func NewReportService(analysisService *AnalysisService) *ReportService {
	return &ReportService{
		analysisService: analysisService,
		aiService:       NewAIService(),
	}
}

// GenerateReport corre el análisis y arma el reporte académico completo:
// metodología, parámetros de entrada, cálculo paso a paso por proyecto,
// tabla comparativa y resumen ejecutivo con la recomendación.
func (s *ReportService) GenerateReport(
	input domain.AnalysisInput,
) (domain.AnalysisReport, error) {

	result, err := s.analysisService.RunAnalysis(input)
	if err != nil {
		return domain.AnalysisReport{}, err
	}

	projects := NormalizeProjectNames(input.Projects)
	byName := make(map[string]domain.Project, len(projects))
	for _, p := range projects {
		byName[p.Name] = p
	}

	breakdowns := make([]domain.ProjectBreakdown, 0, len(result.Results))
	for _, r := range result.Results {
		p := byName[r.ProjectName]
		netAnnual := p.AnnualRevenue - p.AnnualOpCost + p.AnnualSavings

		breakdowns = append(breakdowns, domain.ProjectBreakdown{
			ProjectName:   r.ProjectName,
			LifeSpan:      r.LifeSpan,
			NetAnnualFlow: netAnnual,
			CycleSummary: fmt.Sprintf(
				"Every %d years, the asset is retired (Salvage +$%.0f) and replaced (Cost -$%.0f). At the end of the study period, only Salvage is applied.",
				p.LifeSpanYears, p.SalvageValue, p.ReplacementCost),
			NPV: r.NPV,
		})
	}

	// Alternativas para contexto de la explicación (hasta 3 no ganadoras)
	alternatives := []domain.ProjectResult{}
	maxAlternatives := 3
	for _, r := range result.Results {
		if r.ProjectName == result.Winner.ProjectName {
			continue
		}
		if len(alternatives) >= maxAlternatives {
			break
		}
		alternatives = append(alternatives, r)
	}

	explanation := s.aiService.GenerateRecommendationExplanation(
		result.Winner.ProjectName,
		result.Winner.NPV,
		result.StudyPeriod,
		result.MARRPercent,
		alternatives,
	)

	return domain.AnalysisReport{
		Title:       "Industrial Economics Analysis Report",
		GeneratedAt: time.Now().UTC(),
		StudyPeriod: result.StudyPeriod,
		MARRPercent: result.MARRPercent,
		Methodology: fmt.Sprintf(
			"This analysis employs the Least Common Multiple (LCM) method to compare investment alternatives with unequal life spans. All projects are evaluated over a common study period of %d years. Future cash flows are discounted to their present value using the defined Minimum Attractive Rate of Return (MARR).",
			result.StudyPeriod),
		Formulas: []string{
			fmt.Sprintf("MARR (i) = %.2f%%", result.MARRPercent),
			"NPV      = Sum [ CF_t / (1 + i)^t ]",
			"Net Flow = Revenue - Op. Cost + Savings",
		},
		Inputs:         projects,
		Breakdowns:     breakdowns,
		Comparison:     result.Results,
		Recommendation: result.Winner,
		Summary: fmt.Sprintf(
			"Based on the analysis, %s yields the highest Net Present Value (NPV) of $%.2f over the %d-year horizon. This indicates it is the most capital-efficient choice given the constraints.",
			result.Winner.ProjectName, result.Winner.NPV, result.StudyPeriod),
		Explanation: explanation,
	}, nil
}
