package common

type Statuser interface {
	Status() Status
}

// CheckStatus checks the status of a variadic number of statusers
// and returns the first one that is not Continue
func CheckStatus(cs ...Statuser) Status {
	for _, val := range cs {
		c := val.Status()
		if c != Continue {
			return c
		}
	}
	return Continue
}

var statusStrings map[Status]string

func init() {
	statusStrings = make(map[Status]string)
	statusStrings[Continue] = "Continue"
	statusStrings[IterationLimit] = "IterationLimit"
}

// Status is a type for expressing if the optimizer has finished or not.
// Zero signifies the optimizer should continue. Positive values indicate
// a normal end of the run. Failures are reported as errors, not statuses.
type Status int

func (s Status) String() string {
	str, ok := statusStrings[s]
	if !ok {
		return "UnregisteredStatus"
	}
	return str
}

const (
	Continue Status = iota
	// IterationLimit is the normal end of a fixed-iteration run
	IterationLimit
)
