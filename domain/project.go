package domain

// Project representa una alternativa de inversión a evaluar.
// Los montos se expresan como magnitudes positivas; la inversión inicial
// se aplica como egreso en el año 0.
type Project struct {
	Name              string
	InitialInvestment float64
	LifeSpanYears     int
	AnnualRevenue     float64
	AnnualOpCost      float64
	AnnualSavings     float64
	SalvageValue      float64
	ReplacementCost   float64
}

type AnalysisInput struct {
	Projects    []Project
	MARRPercent float64
}
