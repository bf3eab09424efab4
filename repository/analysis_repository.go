package repository

import "econ-analyzer/domain"

type AnalysisRepository interface {
	Save(input domain.AnalysisInput, result domain.AnalysisResult) error
}
