package ndarray

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerDefaultsToNop(t *testing.T) {
	if Logger() == nil {
		t.Fatal("Logger() must never return nil")
	}
}

func TestLifetimeMisuseLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	a, err := New(Shape{2}, Int64, RowMajor)
	if err != nil {
		t.Fatal(err)
	}
	a.ReleaseView() // misuse: owner through the view path

	v, err := a.Alias()
	if err != nil {
		t.Fatal(err)
	}
	v.Release() // misuse: view through the owner path

	if logs.Len() != 2 {
		t.Errorf("expected 2 warnings, got %d: %v", logs.Len(), logs.All())
	}
}
