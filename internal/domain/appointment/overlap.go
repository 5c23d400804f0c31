package appointment

// Overlaps aplica o teste de sobreposição de intervalos semiabertos
// [s1,e1) x [s2,e2): s1 < e2 && e1 > s2. Horários iguais nas bordas
// (um termina onde o outro começa) não conflitam.
func Overlaps(s1, e1, s2, e2 string) (bool, error) {
	start1, err := ParseHHMM(s1)
	if err != nil {
		return false, err
	}
	end1, err := ParseHHMM(e1)
	if err != nil {
		return false, err
	}
	start2, err := ParseHHMM(s2)
	if err != nil {
		return false, err
	}
	end2, err := ParseHHMM(e2)
	if err != nil {
		return false, err
	}

	return start1 < end2 && end1 > start2, nil
}
