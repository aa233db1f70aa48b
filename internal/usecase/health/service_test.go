package health

import (
	"context"
	"errors"
	"testing"
)

// --- Mocks ---

type mockCachePinger struct {
	err error
}

func (m *mockCachePinger) Ping(_ context.Context) error { return m.err }

type mockSuggestionChecker struct {
	err error
}

func (m *mockSuggestionChecker) HealthCheck(_ context.Context) error { return m.err }

// --- Tests ---

func TestCheck_AllHealthy(t *testing.T) {
	svc := New(&mockCachePinger{}, &mockSuggestionChecker{})
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if r.Checks["cache"] != CheckOK {
		t.Errorf("expected cache %q, got %q", CheckOK, r.Checks["cache"])
	}
	if r.Checks["suggestion"] != CheckOK {
		t.Errorf("expected suggestion %q, got %q", CheckOK, r.Checks["suggestion"])
	}
}

func TestCheck_CacheError(t *testing.T) {
	svc := New(&mockCachePinger{err: errors.New("conn refused")}, &mockSuggestionChecker{})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["cache"] != CheckError {
		t.Errorf("expected cache %q, got %q", CheckError, r.Checks["cache"])
	}
	if r.Checks["suggestion"] != CheckOK {
		t.Errorf("expected suggestion %q, got %q", CheckOK, r.Checks["suggestion"])
	}
}

func TestCheck_SuggestionError(t *testing.T) {
	svc := New(&mockCachePinger{}, &mockSuggestionChecker{err: errors.New("timeout")})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["cache"] != CheckOK {
		t.Errorf("expected cache %q, got %q", CheckOK, r.Checks["cache"])
	}
	if r.Checks["suggestion"] != CheckError {
		t.Errorf("expected suggestion %q, got %q", CheckError, r.Checks["suggestion"])
	}
}

func TestCheck_BothFail(t *testing.T) {
	svc := New(
		&mockCachePinger{err: errors.New("cache down")},
		&mockSuggestionChecker{err: errors.New("ai down")},
	)
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["cache"] != CheckError {
		t.Error("expected cache error")
	}
	if r.Checks["suggestion"] != CheckError {
		t.Error("expected suggestion error")
	}
}

func TestCheck_NothingConfigured(t *testing.T) {
	svc := New(nil, nil)
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if len(r.Checks) != 0 {
		t.Errorf("expected no checks, got %v", r.Checks)
	}
}

func TestCheck_NoSuggestion_CacheError(t *testing.T) {
	svc := New(&mockCachePinger{err: errors.New("fail")}, nil)
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["cache"] != CheckError {
		t.Error("expected cache error")
	}
	if _, ok := r.Checks["suggestion"]; ok {
		t.Error("suggestion check should be absent when not configured")
	}
}
