package appointment

import "math"

// AverageRating calcula a média das notas arredondada para 1 casa
// decimal (half-up no dígito dos décimos). Retorna 0 para lista vazia.
func AverageRating(scores []int) float64 {
	if len(scores) == 0 {
		return 0
	}

	sum := 0
	for _, s := range scores {
		sum += s
	}

	avg := float64(sum) / float64(len(scores))
	return math.Floor(avg*10+0.5) / 10
}
