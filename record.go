package calldispatch

import "iter"

// Category is the classification tag of a caller record.
type Category string

const (
	Unknown Category = ""
	Waiting Category = "waiting"
	Missed  Category = "missed"
)

// ParseCategory returns the Category named by tag. Tags are matched
// exactly; anything other than "waiting" or "missed" is Unknown.
func ParseCategory(tag string) Category {
	switch c := Category(tag); c {
	case Waiting, Missed:
		return c
	default:
		return Unknown
	}
}

// Record is one caller read from a record source. Only Category and
// Duration matter to the dispatcher.
type Record struct {
	Name     string
	Category Category
	Duration int
}

// Counts reports how many records Classify put in each structure and
// how many it skipped.
type Counts struct {
	Waiting int
	Missed  int
	Ignored int
}

// Classify enqueues the duration of every waiting record and pushes the
// duration of every missed record. Records with any other category are
// skipped.
func Classify(records iter.Seq[Record], waiting *Queue[int], missed *Stack[int]) (c Counts) {
	for r := range records {
		switch r.Category {
		case Waiting:
			waiting.Enqueue(r.Duration)
			c.Waiting++
		case Missed:
			missed.Push(r.Duration)
			c.Missed++
		default:
			c.Ignored++
		}
	}
	return c
}
