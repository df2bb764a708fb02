package pwm2base_api

// Resolves IUPAC ambiguity codes into concrete bases
type IupacResolver struct {
	alphabet Alphabet
	picker   *RandomPicker
}

func NewIupacResolver(alphabet Alphabet, picker *RandomPicker) *IupacResolver {
	return &IupacResolver{alphabet: alphabet, picker: picker}
}

// Replace every ambiguity code of the sequence by one of the bases it stands for
func (resolver *IupacResolver) Convert(id string, sequence string) (string, error) {
	result := []byte(sequence)
	for i, c := range result {
		result[i] = resolver.resolve(c)
	}
	return string(result), nil
}

func (resolver *IupacResolver) resolve(c byte) byte {
	dna := resolver.alphabet == DNA
	pick := resolver.picker.Pick

	switch c {
	case 'R':
		return pick("AG")
	case 'Y':
		return pick(choose(dna, "CT", "CU"))
	case 'S':
		return pick("GC")
	case 'W':
		return pick(choose(dna, "AT", "AU"))
	case 'K':
		return pick(choose(dna, "GT", "GU"))
	case 'M':
		return pick("AC")
	case 'B':
		return pick(choose(dna, "CGT", "CGU"))
	case 'D':
		return pick(choose(dna, "AGT", "AGU"))
	case 'H':
		return pick(choose(dna, "ACT", "ACU"))
	case 'V':
		return pick("ACG")
	case 'N':
		return pick(choose(dna, "ATGC", "AUGC"))
	case 'T', 'U':
		return NumberToBase(3, resolver.alphabet)
	default:
		// A, C, G, the gaps '.' and '-' and anything unknown stay as they are
		return c
	}
}

func choose(dna bool, dnaSet string, rnaSet string) string {
	if dna {
		return dnaSet
	}
	return rnaSet
}
