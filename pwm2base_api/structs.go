package pwm2base_api

// The alphabet used to write the resolved sequences
type Alphabet int

const (
	// Output T for index 3
	DNA Alphabet = iota

	// Output U for index 3
	RNA
)

func (alphabet Alphabet) String() string {
	if alphabet == RNA {
		return "RNA"
	}
	return "DNA"
}

// The four concrete bases in index order, written in the given alphabet
func (alphabet Alphabet) Bases() string {
	if alphabet == RNA {
		return "ACGU"
	}
	return "ACGT"
}

// The weights of one sequence position
// Slot 0 to 3 hold the weight of A, C, G and T respectively
type Tuple [4]float64

// A struct representing one input record
type Record struct {
	// The ID of the record, the first word of a FASTA header
	Id string

	// The rest of the header line, can be empty
	Desc string

	// The IUPAC sequence or the raw matrix text of the record
	Seq string
}

// The name of the record as it is written to the output file
func (record *Record) Name() string {
	if record.Desc == "" {
		return record.Id
	}
	return record.Id + " " + record.Desc
}

//
// Config structs
//

// The struct representing the configuration file
// The config file is a YAML file, all fields are optional
type Config struct {
	// The output alphabet, "dna" or "rna"
	Alphabet string `yaml:"alphabet"`

	// The file extensions that are picked up when a directory is given as input
	Extensions []string `yaml:"extensions"`

	// The suffix added to the input name to create the default output name
	OutputSuffix string `yaml:"output_suffix"`

	// Print the random seed and the progress per file
	Verbose bool `yaml:"verbose"`

	// Always override the output file
	Force bool `yaml:"force"`

	// The parsed version of Alphabet, set by ReadConfig
	OutputAlphabet Alphabet `yaml:"-"`
}
