package pwm2base_api

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/carbocation/pfx"
)

// Extracts the ordered weight tuples from the raw text of one record
type TupleExtractor func(text string) ([]Tuple, error)

// Resolves a weight or frequency matrix into one base per tuple
type MatrixResolver struct {
	alphabet Alphabet
	picker   *RandomPicker
	extract  TupleExtractor
}

func NewMatrixResolver(alphabet Alphabet, picker *RandomPicker, extract TupleExtractor) *MatrixResolver {
	return &MatrixResolver{alphabet: alphabet, picker: picker, extract: extract}
}

// Resolver for tab delimited weight matrices
func NewWeightResolver(alphabet Alphabet, picker *RandomPicker) *MatrixResolver {
	return NewMatrixResolver(alphabet, picker, TabWeights)
}

// Resolver for bracket delimited (JASPAR .pfm) frequency matrices
func NewFrequencyResolver(alphabet Alphabet, picker *RandomPicker) *MatrixResolver {
	return NewMatrixResolver(alphabet, picker, BracketFrequencies)
}

func (resolver *MatrixResolver) Convert(id string, text string) (string, error) {
	tuples, err := resolver.extract(text)
	if err != nil {
		return "", pfx.Err(fmt.Errorf("record '%s': %w", id, err))
	}

	result := make([]byte, len(tuples))
	for i, weights := range tuples {
		result[i] = NumberToBase(resolver.pick(weights), resolver.alphabet)
	}
	return string(result), nil
}

// Select the index of the highest weight
// Only weights above zero count and the first one wins a tie. Without any
// positive weight a random base is selected.
func (resolver *MatrixResolver) pick(weights Tuple) int8 {
	maxWeight := 0.0
	argMax := NoBase
	for i, weight := range weights {
		if weight > maxWeight {
			argMax = int8(i)
			maxWeight = weight
		}
	}

	if argMax == NoBase {
		return BaseToNumber(resolver.picker.Pick(resolver.alphabet.Bases()))
	}
	return argMax
}

// Read decimal weights four at a time, regardless of line boundaries
// An incomplete tuple at the end of the text is dropped.
func TabWeights(text string) ([]Tuple, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\t' || r == '\n' || r == '\r'
	})

	tuples := []Tuple{}
	var tuple Tuple
	i := 0
	for _, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		weight, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, err
		}
		tuple[i] = weight
		i++
		if i == 4 {
			tuples = append(tuples, tuple)
			i = 0
		}
	}
	return tuples, nil
}

// Read four runs of frequencies (A, C, G and T) and combine them into columns
//
// A run is a list of space separated numbers, optionally preceded by a label
// and wrapped in brackets:
//
//	A  [ 4 19  0  0 ]
//	C  [16  0 20  0 ]
//
// A ']' ends the current run. A run that was not opened with '[' ends at the
// end of its line, which supports the layout without brackets. A record
// without any run resolves to an empty sequence.
func BracketFrequencies(text string) ([]Tuple, error) {
	runs := [][]float64{}
	var current []float64
	bracketed := false
	closeRun := func() {
		runs = append(runs, current)
		current = nil
		bracketed = false
	}

	for _, line := range strings.Split(text, "\n") {
		for _, token := range strings.Fields(line) {
			if len(token) == 1 && unicode.IsLetter(rune(token[0])) {
				continue
			}
			if token[0] == '[' {
				bracketed = true
				token = token[1:]
			}
			end := strings.HasSuffix(token, "]")
			token = strings.TrimSuffix(token, "]")

			if token != "" {
				frequency, err := strconv.ParseFloat(token, 64)
				if err != nil {
					return nil, err
				}
				current = append(current, frequency)
			}
			if end {
				closeRun()
			}
		}
		if !bracketed && len(current) > 0 {
			closeRun()
		}
	}
	if len(current) > 0 {
		closeRun()
	}

	if len(runs) == 0 {
		return []Tuple{}, nil
	}
	if len(runs) < 4 {
		return nil, fmt.Errorf("expected 4 frequency runs, found %d", len(runs))
	}
	for base, run := range runs[1:4] {
		if len(run) != len(runs[0]) {
			return nil, fmt.Errorf("the %c run has %d values, the A run has %d", "CGT"[base], len(run), len(runs[0]))
		}
	}

	tuples := make([]Tuple, len(runs[0]))
	for i := range tuples {
		tuples[i] = Tuple{runs[0][i], runs[1][i], runs[2][i], runs[3][i]}
	}
	return tuples, nil
}
