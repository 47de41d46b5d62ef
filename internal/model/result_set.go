package model

// ResultSet holds the movies currently shown in the result list together
// with the query that produced them
type ResultSet struct {
	TaskID string
	Query  string
	Movies []Movie
}

// NewResultSet creates a result set for the given query
func NewResultSet(taskID, query string, movies []Movie) *ResultSet {
	return &ResultSet{
		TaskID: taskID,
		Query:  query,
		Movies: movies,
	}
}

// Len returns the number of movies in the set
func (rs *ResultSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.Movies)
}

// At returns the movie at index i
func (rs *ResultSet) At(i int) (Movie, bool) {
	if rs == nil || i < 0 || i >= len(rs.Movies) {
		return Movie{}, false
	}
	return rs.Movies[i], true
}

// DisplayStrings returns the list entries in the order received
func (rs *ResultSet) DisplayStrings() []string {
	if rs == nil {
		return nil
	}
	items := make([]string, 0, len(rs.Movies))
	for _, m := range rs.Movies {
		items = append(items, m.DisplayString())
	}
	return items
}
