package service

import (
	"strings"
	"testing"

	"econ-analyzer/domain"
	"econ-analyzer/repository"
)

func TestGenerateReport_OK(t *testing.T) {

	// Sin API key la explicación usa el texto determinista de respaldo
	t.Setenv("OPENAI_API_KEY", "")

	analysisService := NewAnalysisService(&MockAnalysisRepository{}, repository.NewMockCache(), 0)
	service := NewReportService(analysisService)

	report, err := service.GenerateReport(domain.AnalysisInput{
		Projects:    twoProjects(),
		MARRPercent: 10,
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.StudyPeriod != 12 {
		t.Errorf("expected study period 12, got %d", report.StudyPeriod)
	}

	if len(report.Inputs) != 2 {
		t.Errorf("expected 2 input projects echoed, got %d", len(report.Inputs))
	}

	if len(report.Breakdowns) != 2 {
		t.Fatalf("expected 2 breakdowns, got %d", len(report.Breakdowns))
	}

	// Flujo neto anual del proyecto A: 25000 - 6000 + 0
	if report.Breakdowns[0].NetAnnualFlow != 19000 {
		t.Errorf("expected net annual flow 19000, got %f", report.Breakdowns[0].NetAnnualFlow)
	}

	if !strings.Contains(report.Summary, report.Recommendation.ProjectName) {
		t.Errorf("expected summary to mention the recommended project")
	}

	if report.Explanation == "" {
		t.Errorf("expected a non-empty explanation")
	}

	if len(report.Formulas) == 0 || !strings.Contains(report.Formulas[0], "MARR") {
		t.Errorf("expected MARR formula line, got %v", report.Formulas)
	}
}

func TestGenerateReport_PropagatesAnalysisError(t *testing.T) {

	t.Setenv("OPENAI_API_KEY", "")

	analysisService := NewAnalysisService(&MockAnalysisRepository{}, repository.NewMockCache(), 0)
	service := NewReportService(analysisService)

	_, err := service.GenerateReport(domain.AnalysisInput{MARRPercent: 10})

	if err == nil {
		t.Errorf("expected error for empty project list")
	}
}
