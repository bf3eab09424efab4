package repository

import (
	"sync"

	"econ-analyzer/domain"
)

// AnalysisRepositoryMemory is an in-memory implementation of AnalysisRepository.
type AnalysisRepositoryMemory struct {
	mu   sync.Mutex
	data []domain.AnalysisResult
}

// NewAnalysisRepositoryMemory creates a new in-memory analysis repository.
func NewAnalysisRepositoryMemory() *AnalysisRepositoryMemory {
	return &AnalysisRepositoryMemory{
		data: []domain.AnalysisResult{},
	}
}

// Save stores the analysis result in memory.
func (r *AnalysisRepositoryMemory) Save(
	input domain.AnalysisInput,
	result domain.AnalysisResult,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, result)
	return nil
}

// History returns a copy of every stored result, oldest first.
func (r *AnalysisRepositoryMemory) History() []domain.AnalysisResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AnalysisResult, len(r.data))
	copy(out, r.data)
	return out
}
