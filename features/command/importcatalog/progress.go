package importcatalog

const (
	// KindGenre labels genre records in progress reports.
	KindGenre = "genre"

	// KindAuthor labels author records in progress reports.
	KindAuthor = "author"

	// KindBook labels book records in progress reports.
	KindBook = "book"

	// KindInstance labels book instance records in progress reports.
	KindInstance = "instance"
)

// Progress is notified once per processed record.
type Progress interface {
	Step(kind string, created bool)
}

// Report counts the processed records. It implements Progress.
type Report struct {
	Created map[string]int
	Skipped map[string]int
}

// NewReport creates an empty Report.
func NewReport() *Report {
	return &Report{
		Created: make(map[string]int),
		Skipped: make(map[string]int),
	}
}

// Step implements Progress.
func (r *Report) Step(kind string, created bool) {
	if created {
		r.Created[kind]++
		return
	}

	r.Skipped[kind]++
}

// TotalCreated returns the number of created records of all kinds.
func (r *Report) TotalCreated() int {
	total := 0
	for _, n := range r.Created {
		total += n
	}

	return total
}

type multiProgress []Progress

func (m multiProgress) Step(kind string, created bool) {
	for _, p := range m {
		p.Step(kind, created)
	}
}
