package service

const (
	MaxProjectsPerRequest = 20              // máximo de proyectos por análisis
	MaxMonetaryAmount     = 1_000_000_000.0 // 1 billón por campo monetario
	MaxLifeSpanYears      = 100
	MaxDiscountRate       = 1000.0 // 1000% anual
	MinDiscountRate       = -100.0 // tasas <= -100% producen singularidad en (1+i)^t

	// Límite del período de estudio: vidas útiles coprimas disparan el MCM
	// y con él el tamaño de cada serie de flujos.
	MaxStudyPeriodYears = 600
)
