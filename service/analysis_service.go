package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"econ-analyzer/domain"
	"econ-analyzer/repository"
)

type AnalysisService struct {
	repo           repository.AnalysisRepository
	cache          repository.CacheRepository
	maxStudyPeriod int
}

// NewAnalysisService creates a new AnalysisService with the given repository.
// A maxStudyPeriod of 0 falls back to MaxStudyPeriodYears.
func NewAnalysisService(repo repository.AnalysisRepository,
	cache repository.CacheRepository,
	maxStudyPeriod int,
) *AnalysisService {
	if maxStudyPeriod <= 0 {
		maxStudyPeriod = MaxStudyPeriodYears
	}
	return &AnalysisService{repo: repo, cache: cache, maxStudyPeriod: maxStudyPeriod}
}

// RunAnalysis compara los proyectos sobre el horizonte común (MCM de las
// vidas útiles), descuenta los flujos a la tasa MARR y recomienda el de
// mayor VPN. Los resultados idénticos se memoizan por hash de la entrada.
func (s *AnalysisService) RunAnalysis(
	input domain.AnalysisInput,
) (domain.AnalysisResult, error) {

	// Validar entrada
	if len(input.Projects) == 0 {
		return domain.AnalysisResult{}, errors.New("no se proporcionaron proyectos")
	}
	if len(input.Projects) > MaxProjectsPerRequest {
		return domain.AnalysisResult{}, fmt.Errorf("número de proyectos excede el máximo de %d", MaxProjectsPerRequest)
	}
	if input.MARRPercent <= MinDiscountRate {
		return domain.AnalysisResult{}, fmt.Errorf("la tasa MARR debe ser mayor que %.0f%%", MinDiscountRate)
	}
	if input.MARRPercent > MaxDiscountRate {
		return domain.AnalysisResult{}, fmt.Errorf("la tasa MARR excede el máximo permitido de %.2f%%", MaxDiscountRate)
	}

	projects := NormalizeProjectNames(input.Projects)

	// Validar nombres únicos y montos por proyecto
	seen := make(map[string]bool)
	for _, p := range projects {
		if seen[p.Name] {
			return domain.AnalysisResult{}, fmt.Errorf("nombre de proyecto duplicado: %s", p.Name)
		}
		seen[p.Name] = true

		if p.LifeSpanYears > MaxLifeSpanYears {
			return domain.AnalysisResult{}, fmt.Errorf("vida útil de %s excede el máximo de %d años", p.Name, MaxLifeSpanYears)
		}
		amounts := []float64{
			p.InitialInvestment, p.AnnualRevenue, p.AnnualOpCost,
			p.AnnualSavings, p.SalvageValue, p.ReplacementCost,
		}
		for _, amount := range amounts {
			if math.Abs(amount) > MaxMonetaryAmount {
				return domain.AnalysisResult{}, fmt.Errorf("monto de %s excede el máximo permitido de $%.2f", p.Name, MaxMonetaryAmount)
			}
		}
	}

	// Revisar cache (la pureza del cálculo hace segura la memoización)
	key := s.cacheKey(projects, input.MARRPercent)
	if key != "" {
		if cached, ok := s.cache.Get(key); ok {
			var result domain.AnalysisResult
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				return result, nil
			}
			log.Printf("Warning: failed to decode cached analysis for key %s", key)
		}
	}

	// Filtrar proyectos sin vida útil válida (degradación silenciosa)
	valid := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		if p.LifeSpanYears <= 0 {
			log.Printf("Warning: project %q excluded from analysis: non-positive life span", p.Name)
			continue
		}
		valid = append(valid, p)
	}
	if len(valid) == 0 {
		return domain.AnalysisResult{}, errors.New("ningún proyecto tiene vida útil válida")
	}

	lives := make([]int, len(valid))
	for i, p := range valid {
		lives[i] = p.LifeSpanYears
	}

	studyPeriod := CalculateLCMBounded(lives, s.maxStudyPeriod)
	if studyPeriod == 0 {
		return domain.AnalysisResult{}, errors.New("no se pudo determinar el período de estudio")
	}
	if studyPeriod > s.maxStudyPeriod {
		return domain.AnalysisResult{}, fmt.Errorf("el período de estudio excede el máximo de %d años", s.maxStudyPeriod)
	}

	results := make([]domain.ProjectResult, 0, len(valid))
	order := make([]string, 0, len(valid))
	series := make([][]float64, 0, len(valid))

	for _, p := range valid {
		flows := GenerateCashFlows(p, studyPeriod)
		npv := CalculateNPV(flows, input.MARRPercent)

		results = append(results, domain.ProjectResult{
			ProjectName: p.Name,
			NPV:         npv,
			LifeSpan:    p.LifeSpanYears,
		})
		order = append(order, p.Name)
		series = append(series, flows)
	}

	// Matriz de flujos: filas = años 0..N, columnas = proyectos
	matrix := make([][]float64, studyPeriod+1)
	for t := range matrix {
		row := make([]float64, len(series))
		for j := range series {
			row[j] = series[j][t]
		}
		matrix[t] = row
	}

	w := SelectWinner(results)

	result := domain.AnalysisResult{
		AnalysisID:  uuid.New().String(),
		StudyPeriod: studyPeriod,
		MARRPercent: input.MARRPercent,
		Results:     results,
		Winner: domain.Recommendation{
			ProjectName: results[w].ProjectName,
			NPV:         results[w].NPV,
		},
		ProjectOrder:   order,
		CashFlowMatrix: matrix,
	}

	// Memoizar (no crítico si falla)
	if key != "" {
		if data, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(key, string(data)); err != nil {
				log.Printf("Warning: failed to cache analysis result: %v", err)
			}
		}
	}

	// Guardar el resultado (no crítico si falla)
	if err := s.repo.Save(input, result); err != nil {
		log.Printf("Warning: failed to save analysis: %v", err)
	}

	return result, nil
}

// NormalizeProjectNames copia la lista asignando un nombre posicional a los
// proyectos sin nombre ("Proyecto N" según su posición de entrada).
func NormalizeProjectNames(projects []domain.Project) []domain.Project {
	out := make([]domain.Project, len(projects))
	copy(out, projects)
	for i := range out {
		if out[i].Name == "" {
			out[i].Name = fmt.Sprintf("Proyecto %d", i+1)
		}
	}
	return out
}

// cacheKey deriva la llave de memoización del hash de la entrada canónica.
func (s *AnalysisService) cacheKey(projects []domain.Project, marr float64) string {
	data, err := json.Marshal(domain.AnalysisInput{
		Projects:    projects,
		MARRPercent: marr,
	})
	if err != nil {
		return ""
	}
	return fmt.Sprintf("analysis:%x", xxhash.Sum64(data))
}
