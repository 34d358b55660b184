package catalogsummary

// Summary represents the query result with the catalog counts.
type Summary struct {
	NumBooks             int
	NumInstances         int
	NumInstancesAvail    int
	NumAuthors           int
	NumGenres            int
	NumBooksTitleDead    int
	NumBooksByDeadAuthor int
}
