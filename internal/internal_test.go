package internal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestHandlePanicRecover(t *testing.T) {
	run := func(f func()) (err error) {
		defer func() {
			err = HandlePanicRecover(recover())
		}()
		f()
		return nil
	}

	err := run(func() { Fatalf("vertex %d does not resolve", 7) })
	require.Error(t, err)
	assert.Equal(t, "vertex 7 does not resolve", err.Error())

	assert.NoError(t, run(func() {}))

	assert.Panics(t, func() {
		run(func() { panic("something else") })
	})
	err = run(func() { panic(errors.New("boom")) })
	assert.EqualError(t, err, "boom")
}

func TestLogger(t *testing.T) {
	defer SetLogger(nil)

	core, logs := observer.New(zap.WarnLevel)
	SetLogger(zap.New(core))
	Logger().Warn("hello")
	Logger().Debug("filtered")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "hello", logs.All()[0].Message)

	SetLogger(nil)
	assert.NotNil(t, Logger())
}
