package domain

import "time"

// ProjectBreakdown es el cálculo paso a paso de un proyecto dentro del
// reporte (flujo neto anual, política de ciclo de vida y VPN resultante).
type ProjectBreakdown struct {
	ProjectName   string
	LifeSpan      int
	NetAnnualFlow float64
	CycleSummary  string
	NPV           float64
}

// AnalysisReport es la versión estructurada del reporte académico: las
// secciones que antes se maquetaban en PDF, ahora como datos planos para
// que el consumidor las renderice como quiera.
type AnalysisReport struct {
	Title          string
	GeneratedAt    time.Time
	StudyPeriod    int
	MARRPercent    float64
	Methodology    string
	Formulas       []string
	Inputs         []Project
	Breakdowns     []ProjectBreakdown
	Comparison     []ProjectResult
	Recommendation Recommendation
	Summary        string
	Explanation    string `json:",omitempty"` // Explicación generada por IA
}
