package log

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewWithLevel(t *testing.T) {
	l, err := NewWithLevel("debug")
	if err != nil {
		t.Fatal(err)
	}
	if lr, ok := l.(*logrus.Logger); !ok || lr.GetLevel() != logrus.DebugLevel {
		t.Errorf("expected a logrus logger at debug level, got %T", l)
	}

	if _, err := NewWithLevel("loud"); err == nil {
		t.Errorf("expected an error for an unknown level")
	}
}
