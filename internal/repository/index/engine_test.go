package index

import (
	"context"
	"errors"
	"testing"
)

type mockConfigSetter struct {
	set   map[string]string
	errOn string
}

func (m *mockConfigSetter) ConfigSet(_ context.Context, name, value string) error {
	if name == m.errOn {
		return errors.New("ERR CONFIG SET failed")
	}
	if m.set == nil {
		m.set = map[string]string{}
	}
	m.set[name] = value
	return nil
}

func TestConfigureEngine(t *testing.T) {
	m := &mockConfigSetter{}
	if err := ConfigureEngine(context.Background(), m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := m.set["search-min-prefix"]; got != "1" {
		t.Errorf("search-min-prefix = %q, want 1", got)
	}
	if got := m.set["search-max-prefix-expansions"]; got != "10000" {
		t.Errorf("search-max-prefix-expansions = %q, want 10000", got)
	}
}

func TestConfigureEngine_Error(t *testing.T) {
	m := &mockConfigSetter{errOn: "search-min-prefix"}
	err := ConfigureEngine(context.Background(), m)
	if err == nil {
		t.Fatal("expected error")
	}
	if len(m.set) != 0 {
		t.Errorf("expected to stop at the first failure, applied %v", m.set)
	}
}
