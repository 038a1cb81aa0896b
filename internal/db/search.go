package db

// MaxSearchResults bounds the FT.SEARCH window requested for unrestricted queries.
// Matches the MAXSEARCHRESULTS default of the Redis 8 query engine.
const MaxSearchResults = 10000

// Query is the input for a plain FT.SEARCH.
type Query struct {
	IndexName    string
	Query        string
	Offset       int
	Limit        int
	ReturnFields []string
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit from a search.
type SearchEntry struct {
	Key    string
	Fields map[string]string
}
