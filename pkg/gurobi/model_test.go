package gurobi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optgo/gurobi-go/internal/capi"
)

func TestCloseIdempotent(t *testing.T) {
	f := newFakeAPI()
	m := newFakeModel(f)

	require.NoError(t, m.Close())
	require.NoError(t, m.Close())
	require.NoError(t, m.Close())
	assert.Equal(t, 1, f.count("FreeModel"),
		"only the first Close may perform the foreign deallocation")
	assert.Equal(t, capi.Handle(0), m.handle)
}

func TestCopy(t *testing.T) {
	f := newFakeAPI()
	m := newFakeModel(f)
	orig := m.handle

	clone, err := m.Copy()
	require.NoError(t, err)
	assert.Equal(t, 1, f.count("CopyModel"))
	assert.NotEqual(t, capi.Handle(0), clone.handle)
	assert.NotEqual(t, m.handle, clone.handle)
	assert.Equal(t, orig, m.handle, "copying must not disturb the source")
	assert.Same(t, m.env, clone.env)
}

func TestCopyClosedModel(t *testing.T) {
	f := newFakeAPI()
	m := newFakeModel(f)
	require.NoError(t, m.Close())

	clone, err := m.Copy()
	require.NoError(t, err)
	assert.Equal(t, capi.Handle(0), clone.handle)
	assert.Zero(t, f.count("CopyModel"),
		"cloning a closed model must not call the solver")
}

func TestCopyFailure(t *testing.T) {
	f := newFakeAPI()
	f.copyFails = true
	m := newFakeModel(f)
	orig := m.handle

	_, err := m.Copy()
	require.Error(t, err)

	var solverErr *Error
	require.ErrorAs(t, err, &solverErr)
	assert.Equal(t, capi.CodeCopyFailed, solverErr.Code)
	assert.Equal(t, orig, m.handle, "a failed copy must leave the source valid")
}

func TestUpdate(t *testing.T) {
	f := newFakeAPI()
	m := newFakeModel(f)

	require.NoError(t, m.Update())
	assert.Equal(t, 1, f.count("UpdateModel"))

	f.failOp, f.failCode = "UpdateModel", 10005
	var solverErr *Error
	require.ErrorAs(t, m.Update(), &solverErr)
	assert.Equal(t, capi.Code(10005), solverErr.Code)
}

func TestUseAfterClosePanics(t *testing.T) {
	f := newFakeAPI()
	m := newFakeModel(f)
	require.NoError(t, m.Close())

	require.Panics(t, func() { _ = m.Update() })
	require.Panics(t, func() { _ = m.AddVars([]float64{1}) })
	require.Panics(t, func() { _, _ = m.NumVars() })
}

func TestOptimize(t *testing.T) {
	f := newFakeAPI()
	m := newFakeModel(f)

	require.NoError(t, m.Optimize())
	assert.Equal(t, 1, f.count("Optimize"))
}

func TestNewModelRequiresLiveEnv(t *testing.T) {
	_, err := NewModel(nil, "m")
	require.ErrorIs(t, err, ErrInvalidArgument)

	f := newFakeAPI()
	env := &Env{api: f, handle: 1}
	require.NoError(t, env.Close())
	_, err = NewModel(env, "m")
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.Zero(t, f.count("NewModel"))
}

func TestNewModel(t *testing.T) {
	f := newFakeAPI()
	env := &Env{api: f, handle: 1}

	m, err := NewModel(env, "production-plan")
	require.NoError(t, err)
	assert.NotEqual(t, capi.Handle(0), m.handle)
	assert.Same(t, env, m.env)
}

func TestEnvCloseIdempotent(t *testing.T) {
	f := newFakeAPI()
	env := &Env{api: f, handle: 1}

	require.NoError(t, env.Close())
	require.NoError(t, env.Close())
	assert.Equal(t, 1, f.count("FreeEnv"))
}
