package index

import (
	"fmt"

	"github.com/kailas-cloud/storefront/internal/db"
	"github.com/kailas-cloud/storefront/internal/domain/ecommerce"
	"github.com/kailas-cloud/storefront/internal/domain/product"
)

// Naming carries the key and attribute naming shared with the query repository.
type Naming struct {
	KeyPrefix           string
	KeywordSuffix       string
	CaseSensitiveSuffix string
}

// ProductIndex returns the index definition for the product collection.
func ProductIndex(n Naming) (*db.IndexDefinition, error) {
	b := newJSONIndex(n, product.Collection).
		TextAs("$.name", product.FieldName).
		Keyword("$.name", product.FieldName, n.KeywordSuffix, n.CaseSensitiveSuffix).
		NumericAs("$.price", product.FieldPrice).Sortable().
		NumericAs("$.stock", product.FieldStock).
		TagAs("$.feature.color", "feature_color", false)

	def, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("product index: %w", err)
	}
	return def, nil
}

// ECommerceIndex returns the index definition for the sample order collection.
func ECommerceIndex(n Naming) (*db.IndexDefinition, error) {
	b := newJSONIndex(n, ecommerce.Collection)
	for _, f := range []string{
		ecommerce.FieldCustomerFirstName,
		ecommerce.FieldCustomerLastName,
		ecommerce.FieldCustomerFullName,
		ecommerce.FieldCustomerGender,
		ecommerce.FieldDayOfWeek,
	} {
		b.Keyword("$."+f, f, n.KeywordSuffix, n.CaseSensitiveSuffix)
	}
	b.TextAs("$."+ecommerce.FieldCustomerFullName, ecommerce.FieldCustomerFullName).
		Keyword("$."+ecommerce.FieldCategory+"[*]", ecommerce.FieldCategory, n.KeywordSuffix, n.CaseSensitiveSuffix).
		NumericAs("$."+ecommerce.FieldTaxfulTotalPrice, ecommerce.FieldTaxfulTotalPrice).Sortable().
		NumericAs("$."+ecommerce.FieldTotalQuantity, ecommerce.FieldTotalQuantity)

	def, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("ecommerce index: %w", err)
	}
	return def, nil
}

// All returns every index definition the service owns.
func All(n Naming) ([]*db.IndexDefinition, error) {
	p, err := ProductIndex(n)
	if err != nil {
		return nil, err
	}
	e, err := ECommerceIndex(n)
	if err != nil {
		return nil, err
	}
	return []*db.IndexDefinition{p, e}, nil
}

func newJSONIndex(n Naming, collection string) *db.IndexBuilder {
	return db.NewIndex(db.IndexName(n.KeyPrefix, collection)).
		OnJSON().
		Prefix(db.KeyspacePrefix(n.KeyPrefix, collection))
}
