package service

import (
	"math"

	"econ-analyzer/domain"
)

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// CalculateLCM calcula el mínimo común múltiplo de las vidas útiles, en
// aritmética entera exacta. Valores <= 0 se descartan; si no queda ninguno
// retorna 0 (centinela de "no hay proyectos válidos").
func CalculateLCM(lifeSpans []int) int {
	return CalculateLCMBounded(lifeSpans, math.MaxInt)
}

// CalculateLCMBounded es CalculateLCM con corte temprano: apenas el MCM
// parcial supera max, retorna ese parcial sin seguir plegando. Vidas útiles
// coprimas hacen crecer el MCM de forma multiplicativa y el plegado completo
// desbordaría int mucho antes de que el servicio pudiera validar el límite;
// el corte garantiza que el valor retornado nunca pasó por un desborde.
// El parcial retornado es una cota inferior del MCM real: para el caso
// excedido solo importa que ya superó max.
func CalculateLCMBounded(lifeSpans []int, max int) int {
	result := 0
	for _, n := range lifeSpans {
		if n <= 0 {
			continue
		}
		if result == 0 {
			result = n
		} else {
			result = result / gcd(result, n) * n
		}
		if result > max {
			return result
		}
	}
	return result
}

// GenerateCashFlows genera la serie de flujos de caja del proyecto para todo
// el período de estudio: índices 0..studyPeriod, longitud studyPeriod+1.
// Si la vida útil no es positiva retorna una serie en ceros.
func GenerateCashFlows(p domain.Project, studyPeriod int) []float64 {
	flows := make([]float64, studyPeriod+1)
	if p.LifeSpanYears <= 0 {
		return flows
	}

	netAnnual := p.AnnualRevenue - p.AnnualOpCost + p.AnnualSavings

	// Año 0: inversión inicial (siempre negativa)
	flows[0] = -math.Abs(p.InitialInvestment)

	for t := 1; t <= studyPeriod; t++ {
		// 1. Operación regular
		flows[t] += netAnnual

		// 2. Fin de ciclo de vida
		if t%p.LifeSpanYears == 0 {
			// Se retira el activo y se recupera el valor de salvamento
			flows[t] += p.SalvageValue

			// Se compra el reemplazo, salvo en el último año del estudio
			if t != studyPeriod {
				flows[t] -= p.ReplacementCost
			}
		}
	}

	return flows
}

// CalculateNPV descuenta la serie de flujos al año 0 a la tasa MARR dada
// en porcentaje. Una tasa 0 degenera en la suma simple de los flujos.
func CalculateNPV(flows []float64, marrPercent float64) float64 {
	r := marrPercent / 100.0
	npv := 0.0
	for t, cf := range flows {
		npv += cf / math.Pow(1+r, float64(t))
	}
	return npv
}

// SelectWinner retorna el índice del resultado con mayor VPN. Los empates
// los gana el primero en orden de entrada (comparación estricta).
// Retorna -1 si la lista está vacía.
func SelectWinner(results []domain.ProjectResult) int {
	winner := -1
	for i, r := range results {
		if winner == -1 || r.NPV > results[winner].NPV {
			winner = i
		}
	}
	return winner
}
