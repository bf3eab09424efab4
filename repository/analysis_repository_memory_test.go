package repository

import (
	"testing"

	"econ-analyzer/domain"
)

func TestAnalysisRepositoryMemory_SaveAndHistory(t *testing.T) {

	repo := NewAnalysisRepositoryMemory()

	first := domain.AnalysisResult{AnalysisID: "a-1", StudyPeriod: 12}
	second := domain.AnalysisResult{AnalysisID: "a-2", StudyPeriod: 6}

	if err := repo.Save(domain.AnalysisInput{}, first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Save(domain.AnalysisInput{}, second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	history := repo.History()

	if len(history) != 2 {
		t.Fatalf("expected 2 stored results, got %d", len(history))
	}
	if history[0].AnalysisID != "a-1" || history[1].AnalysisID != "a-2" {
		t.Errorf("expected results in insertion order, got %s, %s",
			history[0].AnalysisID, history[1].AnalysisID)
	}

	// History retorna una copia: mutarla no debe tocar lo almacenado
	history[0].AnalysisID = "mutado"
	if repo.History()[0].AnalysisID != "a-1" {
		t.Errorf("expected stored results to be unaffected by caller mutation")
	}
}
