package query

import "github.com/kailas-cloud/storefront/internal/db"

// Defaults applied by New when an option is left zero.
const (
	DefaultKeywordSuffix       = "_keyword"
	DefaultCaseSensitiveSuffix = "_cs"
	DefaultTermsPageSize       = 100
)

// Options configures how query specs are translated for one collection.
type Options struct {
	// KeyPrefix is the storage namespace shared by every collection.
	KeyPrefix string
	// KeywordSuffix names the exact-match TAG sibling of a field.
	KeywordSuffix string
	// CaseSensitiveSuffix is appended to KeywordSuffix for the CASESENSITIVE sibling.
	CaseSensitiveSuffix string
	// CaseSensitive is used for term, terms and prefix queries that state no intent.
	CaseSensitive bool
	// PageSize caps term, prefix and range results. Zero means unrestricted.
	PageSize int
	// TermsPageSize caps multi-term results.
	TermsPageSize int
}

func (o Options) withDefaults() Options {
	if o.KeywordSuffix == "" {
		o.KeywordSuffix = DefaultKeywordSuffix
	}
	if o.CaseSensitiveSuffix == "" {
		o.CaseSensitiveSuffix = DefaultCaseSensitiveSuffix
	}
	if o.TermsPageSize <= 0 {
		o.TermsPageSize = DefaultTermsPageSize
	}
	if o.TermsPageSize > db.MaxSearchResults {
		o.TermsPageSize = db.MaxSearchResults
	}
	if o.PageSize <= 0 || o.PageSize > db.MaxSearchResults {
		o.PageSize = db.MaxSearchResults
	}
	return o
}
