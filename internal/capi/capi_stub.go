//go:build !cgo || windows

package capi

// Stub implementation for builds without cgo or on Windows. The package
// compiles everywhere; every call reports CodeNotBuilt, which the public
// layer remaps to ErrNotBuilt.

// New returns the stub call surface.
func New() API {
	return stub{}
}

type stub struct{}

func (stub) LoadEnv(string) (Handle, Code) { return 0, CodeNotBuilt }
func (stub) FreeEnv(Handle)                {}
func (stub) ErrorMessage(Handle) string    { return ErrNotBuilt.Error() }

func (stub) Version() (int, int, int) { return 0, 0, 0 }

func (stub) SetIntParam(Handle, string, int) Code        { return CodeNotBuilt }
func (stub) GetIntParam(Handle, string) (int, Code)      { return 0, CodeNotBuilt }
func (stub) SetDoubleParam(Handle, string, float64) Code { return CodeNotBuilt }
func (stub) GetDoubleParam(Handle, string) (float64, Code) {
	return 0, CodeNotBuilt
}
func (stub) SetStringParam(Handle, string, string) Code { return CodeNotBuilt }
func (stub) GetStringParam(Handle, string) (string, Code) {
	return "", CodeNotBuilt
}

func (stub) NewModel(Handle, string) (Handle, Code) { return 0, CodeNotBuilt }
func (stub) CopyModel(Handle) Handle                { return 0 }
func (stub) FreeModel(Handle) Code                  { return CodeNotBuilt }
func (stub) UpdateModel(Handle) Code                { return CodeNotBuilt }
func (stub) Optimize(Handle) Code                   { return CodeNotBuilt }

func (stub) GetIntAttr(Handle, string) (int, Code)        { return 0, CodeNotBuilt }
func (stub) GetDoubleAttr(Handle, string) (float64, Code) { return 0, CodeNotBuilt }
func (stub) GetStringAttr(Handle, string) (string, Code)  { return "", CodeNotBuilt }
func (stub) SetIntAttr(Handle, string, int) Code          { return CodeNotBuilt }
func (stub) SetDoubleAttr(Handle, string, float64) Code   { return CodeNotBuilt }
func (stub) SetStringAttr(Handle, string, string) Code    { return CodeNotBuilt }
func (stub) GetDoubleAttrArray(Handle, string, int, int) ([]float64, Code) {
	return nil, CodeNotBuilt
}

func (stub) AddVars(Handle, int, []float64, []float64, []float64, []byte) Code {
	return CodeNotBuilt
}
func (stub) AddConstr(Handle, []int32, []float64, byte, float64, string) Code {
	return CodeNotBuilt
}
func (stub) AddConstrs(Handle, int, []int32, []int32, []float64, []byte, []float64) Code {
	return CodeNotBuilt
}
