package health

import (
	"context"
	"errors"
	"testing"
)

// --- Mocks ---

type mockStorePinger struct {
	err error
}

func (m *mockStorePinger) Ping(_ context.Context) error { return m.err }

type mockICPinger struct {
	err error
}

func (m *mockICPinger) Ping(_ context.Context) error { return m.err }

// --- Tests ---

func TestCheck_AllHealthy(t *testing.T) {
	svc := New(&mockStorePinger{}, &mockICPinger{})
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if r.Checks["store"] != CheckOK {
		t.Errorf("expected store %q, got %q", CheckOK, r.Checks["store"])
	}
	if r.Checks["ic_source"] != CheckOK {
		t.Errorf("expected ic_source %q, got %q", CheckOK, r.Checks["ic_source"])
	}
}

func TestCheck_StoreError(t *testing.T) {
	svc := New(&mockStorePinger{err: errors.New("conn refused")}, &mockICPinger{})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["store"] != CheckError {
		t.Errorf("expected store %q, got %q", CheckError, r.Checks["store"])
	}
	if r.Checks["ic_source"] != CheckOK {
		t.Errorf("expected ic_source %q, got %q", CheckOK, r.Checks["ic_source"])
	}
}

func TestCheck_ICError(t *testing.T) {
	svc := New(&mockStorePinger{}, &mockICPinger{err: errors.New("timeout")})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["store"] != CheckOK {
		t.Errorf("expected store %q, got %q", CheckOK, r.Checks["store"])
	}
	if r.Checks["ic_source"] != CheckError {
		t.Errorf("expected ic_source %q, got %q", CheckError, r.Checks["ic_source"])
	}
}

func TestCheck_BothFail(t *testing.T) {
	svc := New(
		&mockStorePinger{err: errors.New("store down")},
		&mockICPinger{err: errors.New("ic down")},
	)
	r := svc.Check(context.Background())

	if r.Status != Unhealthy {
		t.Errorf("expected %q, got %q", Unhealthy, r.Status)
	}
	if r.Checks["store"] != CheckError {
		t.Error("expected store error")
	}
	if r.Checks["ic_source"] != CheckError {
		t.Error("expected ic_source error")
	}
}

func TestCheck_NoIC(t *testing.T) {
	svc := New(&mockStorePinger{}, nil)
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if r.Checks["store"] != CheckOK {
		t.Errorf("expected store %q, got %q", CheckOK, r.Checks["store"])
	}
	if _, ok := r.Checks["ic_source"]; ok {
		t.Error("ic_source check should be absent when no IC source is configured")
	}
}

func TestCheck_NoIC_StoreError(t *testing.T) {
	svc := New(&mockStorePinger{err: errors.New("fail")}, nil)
	r := svc.Check(context.Background())

	if r.Status != Unhealthy {
		t.Errorf("expected %q, got %q", Unhealthy, r.Status)
	}
	if r.Checks["store"] != CheckError {
		t.Error("expected store error")
	}
	if _, ok := r.Checks["ic_source"]; ok {
		t.Error("ic_source check should be absent when no IC source is configured")
	}
}
