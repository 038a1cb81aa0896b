package db

import (
	"strings"
	"testing"
)

func mustBuild(t *testing.T, b *IndexBuilder) *IndexDefinition {
	t.Helper()
	def, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return def
}

func TestIndexBuilder_DefaultsToHash(t *testing.T) {
	idx := mustBuild(t, NewIndex("test-idx").
		Prefix("doc:").
		TagAs("category", "", false).
		NumericAs("price", ""))

	if idx.StorageType != StorageHash {
		t.Errorf("storage = %q, want HASH", idx.StorageType)
	}
	if len(idx.Fields) != 2 {
		t.Fatalf("fields count = %d, want 2", len(idx.Fields))
	}
	if idx.Fields[0].Attribute() != "category" || idx.Fields[0].Type != IndexFieldTag {
		t.Errorf("field[0] = %+v, want category TAG", idx.Fields[0])
	}
	if idx.Fields[1].Attribute() != "price" || idx.Fields[1].Type != IndexFieldNumeric {
		t.Errorf("field[1] = %+v, want price NUMERIC", idx.Fields[1])
	}
}

func TestIndexBuilder_JSON(t *testing.T) {
	idx := mustBuild(t, NewIndex("json-idx").
		OnJSON().
		Prefix("shop:products:").
		TextAs("$.name", "name").
		NumericAs("$.price", "price").Sortable())

	if idx.StorageType != StorageJSON {
		t.Errorf("storage = %q, want JSON", idx.StorageType)
	}
	if !idx.Fields[1].Sortable {
		t.Error("expected price to be SORTABLE")
	}
	if idx.Fields[0].Attribute() != "name" {
		t.Errorf("attribute = %q, want name", idx.Fields[0].Attribute())
	}
}

func TestIndexBuilder_JSONRequiresAlias(t *testing.T) {
	_, err := NewIndex("json-idx").OnJSON().TextAs("$.name", "").Build()
	if err == nil {
		t.Fatal("expected error for JSON field without alias")
	}
}

func TestIndexBuilder_Keyword(t *testing.T) {
	idx := mustBuild(t, NewIndex("kw-idx").
		OnJSON().
		Keyword("$.customer_first_name", "customer_first_name", "_keyword", "_cs"))

	if len(idx.Fields) != 2 {
		t.Fatalf("fields count = %d, want 2", len(idx.Fields))
	}
	insensitive, sensitive := idx.Fields[0], idx.Fields[1]
	if insensitive.Alias != "customer_first_name_keyword" || insensitive.TagCaseSensitive {
		t.Errorf("field[0] = %+v, want case-insensitive customer_first_name_keyword", insensitive)
	}
	if sensitive.Alias != "customer_first_name_keyword_cs" || !sensitive.TagCaseSensitive {
		t.Errorf("field[1] = %+v, want CASESENSITIVE customer_first_name_keyword_cs", sensitive)
	}
	if insensitive.Name != sensitive.Name {
		t.Error("keyword siblings must index the same path")
	}
	for _, f := range idx.Fields {
		if f.TagSeparator != KeywordSeparator {
			t.Errorf("%s: separator = %q, want %q", f.Alias, f.TagSeparator, KeywordSeparator)
		}
	}
	if !strings.Contains(idx.String(), `AS customer_first_name_keyword TAG SEPARATOR "\x1f"`) {
		t.Errorf("String() lacks separator: %s", idx.String())
	}
}

func TestIndexBuilder_SeparatorValidation(t *testing.T) {
	tests := []struct {
		name string
		b    *IndexBuilder
	}{
		{"multi-byte", NewIndex("idx").OnJSON().TagAs("$.a", "a", false).Separator("||")},
		{"numeric field", NewIndex("idx").OnJSON().NumericAs("$.p", "p").Separator(",")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.b.Build(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestIndexBuilder_MultiplePrefixes(t *testing.T) {
	idx := mustBuild(t, NewIndex("multi-idx").
		Prefix("a:", "b:", "c:").
		TagAs("x", "", false))

	if len(idx.Prefixes) != 3 {
		t.Errorf("prefix count = %d, want 3", len(idx.Prefixes))
	}
}

func TestIndexBuilder_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		builder func() (*IndexDefinition, error)
		wantErr string
	}{
		{
			name: "empty name",
			builder: func() (*IndexDefinition, error) {
				return NewIndex("").TagAs("x", "", false).Build()
			},
			wantErr: "index name is required",
		},
		{
			name: "no fields",
			builder: func() (*IndexDefinition, error) {
				return NewIndex("idx").Build()
			},
			wantErr: "at least one field",
		},
		{
			name: "duplicate keyword alias",
			builder: func() (*IndexDefinition, error) {
				return NewIndex("idx").OnJSON().
					TagAs("$.a", "a_keyword", false).
					Keyword("$.a", "a", "_keyword", "_cs").
					Build()
			},
			wantErr: "duplicate field name",
		},
		{
			name: "invalid characters",
			builder: func() (*IndexDefinition, error) {
				return NewIndex("idx with spaces").TagAs("x", "", false).Build()
			},
			wantErr: "invalid characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("got error %q, want containing %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestIndexDefinition_String(t *testing.T) {
	idx := mustBuild(t, NewIndex("my-idx").
		OnJSON().
		Prefix("doc:").
		TagAs("$.cat", "cat_keyword_cs", true).
		NumericAs("$.price", "price").Sortable())

	s := idx.String()
	if !strings.HasPrefix(s, "FT.CREATE ") {
		t.Errorf("expected FT.CREATE prefix, got %q", s)
	}
	for _, want := range []string{"my-idx", "ON JSON", "AS cat_keyword_cs TAG CASESENSITIVE", "NUMERIC SORTABLE"} {
		if !strings.Contains(s, want) {
			t.Errorf("missing %q in %q", want, s)
		}
	}
}

func TestIndexBuilder_DuplicateFields(t *testing.T) {
	idx := &IndexDefinition{
		Name: "dup-idx",
		Fields: []IndexField{
			{Name: "field1", Type: IndexFieldTag},
			{Name: "field1", Type: IndexFieldNumeric},
		},
	}

	if err := idx.Validate(); err == nil {
		t.Fatal("expected error for duplicate fields")
	}
}

func TestKeys(t *testing.T) {
	if got := DocKey("shop:", "products", "abc"); got != "shop:products:abc" {
		t.Errorf("DocKey = %q", got)
	}
	if got := IndexName("shop:", "products"); got != "shop:products:idx" {
		t.Errorf("IndexName = %q", got)
	}
	if got := HitID("shop:", "products", "shop:products:abc"); got != "abc" {
		t.Errorf("HitID = %q", got)
	}
	if got := HitID("shop:", "products", "other:key"); got != "other:key" {
		t.Errorf("HitID for foreign key = %q, want unchanged", got)
	}
}
