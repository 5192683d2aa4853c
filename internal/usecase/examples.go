package usecase

var sampleStatements = []string{
	"The golden ratio is irrational.",
	"There are no perfect squares strictly between m² and (m+1)²",
	"The only numbers with empty prime factorization are 0 and 1",
	"Odd Bernoulli numbers (greater than 1) are zero.",
	"A natural number is odd iff it has residue 1 or 3 mod 4",
}

// SampleStatements returns the pre-filled informal statements offered on the
// page, each individually submittable.
func SampleStatements() []string {
	out := make([]string, len(sampleStatements))
	copy(out, sampleStatements)
	return out
}
