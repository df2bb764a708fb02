package pwm2base_api

// Turns the sequence or matrix text of one record into a concrete base sequence
type Resolver interface {
	Convert(id string, text string) (string, error)
}

// The resolvers of one run, they all share the same random picker
type Resolvers struct {
	// Whether the input consists of weight matrices instead of IUPAC sequences
	Matrix bool

	Iupac     Resolver
	Weights   Resolver
	Frequency Resolver
}

func NewResolvers(matrix bool, alphabet Alphabet, picker *RandomPicker) *Resolvers {
	return &Resolvers{
		Matrix:    matrix,
		Iupac:     NewIupacResolver(alphabet, picker),
		Weights:   NewWeightResolver(alphabet, picker),
		Frequency: NewFrequencyResolver(alphabet, picker),
	}
}

// Select the resolver for an input file
// JASPAR .pfm files always hold frequencies, other files hold weights in
// matrix mode and IUPAC sequences otherwise.
func (resolvers *Resolvers) ForFile(path string) Resolver {
	switch {
	case Extension(path) == "pfm":
		return resolvers.Frequency
	case resolvers.Matrix:
		return resolvers.Weights
	default:
		return resolvers.Iupac
	}
}
