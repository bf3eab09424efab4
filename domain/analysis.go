package domain

type ProjectResult struct {
	ProjectName string
	NPV         float64
	LifeSpan    int
}

type Recommendation struct {
	ProjectName string
	NPV         float64
}

// AnalysisResult es el resultado completo de una corrida de análisis.
// CashFlowMatrix tiene una fila por año (0..StudyPeriod) y una columna por
// proyecto, en el orden de ProjectOrder. Los valores no se redondean.
type AnalysisResult struct {
	AnalysisID     string
	StudyPeriod    int
	MARRPercent    float64
	Results        []ProjectResult
	Winner         Recommendation
	ProjectOrder   []string
	CashFlowMatrix [][]float64
}
