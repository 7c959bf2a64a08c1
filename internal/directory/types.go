package directory

// Metadata lists the departments and countries available as analysis
// filters.
type Metadata struct {
	Departments []string `json:"departments"`
	Countries   []string `json:"countries"`
}
