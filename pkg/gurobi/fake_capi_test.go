package gurobi

import "github.com/optgo/gurobi-go/internal/capi"

// fakeAPI is an in-memory stand-in for the native call surface. It records
// every foreign call with its exact buffers so tests can assert both on what
// was marshaled and on how many calls were made.
type fakeAPI struct {
	calls []string

	// per-attribute canned values
	intAttrs    map[string]int
	doubleAttrs map[string]float64
	stringAttrs map[string]string
	arrays      map[string][]float64

	// failNext makes the next call of the named op return this code
	failOp   string
	failCode capi.Code

	// recorded arguments
	addVars     []addVarsCall
	addConstrs  []addConstrsCall
	arrayReads  []arrayReadCall
	setIntAttrs map[string]int

	envMsg     string
	copyFails  bool
	nextHandle capi.Handle
}

type addVarsCall struct {
	n           int
	obj, lb, ub []float64
	vtypes      []byte
}

type addConstrsCall struct {
	rows       int
	cbeg, cind []int32
	cval       []float64
	senses     []byte
	rhs        []float64
}

type arrayReadCall struct {
	name          string
	first, length int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		intAttrs:    map[string]int{},
		doubleAttrs: map[string]float64{},
		stringAttrs: map[string]string{},
		arrays:      map[string][]float64{},
		setIntAttrs: map[string]int{},
		nextHandle:  100,
	}
}

// newFakeModel wires a live Env and Model around the fake without going
// through LoadEnv/NewModel, which would hit the real backend.
func newFakeModel(f *fakeAPI) *Model {
	env := &Env{api: f, handle: 1}
	return &Model{env: env, api: f, handle: 2}
}

func (f *fakeAPI) record(op string) capi.Code {
	f.calls = append(f.calls, op)
	if f.failOp == op && f.failCode != capi.CodeOK {
		code := f.failCode
		f.failCode = capi.CodeOK
		return code
	}
	return capi.CodeOK
}

func (f *fakeAPI) count(op string) int {
	n := 0
	for _, c := range f.calls {
		if c == op {
			n++
		}
	}
	return n
}

func (f *fakeAPI) LoadEnv(string) (capi.Handle, capi.Code) {
	code := f.record("LoadEnv")
	if code != capi.CodeOK {
		return 0, code
	}
	f.nextHandle++
	return f.nextHandle, capi.CodeOK
}

func (f *fakeAPI) FreeEnv(capi.Handle) { f.record("FreeEnv") }

func (f *fakeAPI) ErrorMessage(capi.Handle) string { return f.envMsg }

func (f *fakeAPI) Version() (int, int, int) { return 11, 0, 3 }

func (f *fakeAPI) SetIntParam(capi.Handle, string, int) capi.Code {
	return f.record("SetIntParam")
}

func (f *fakeAPI) GetIntParam(capi.Handle, string) (int, capi.Code) {
	return 0, f.record("GetIntParam")
}

func (f *fakeAPI) SetDoubleParam(capi.Handle, string, float64) capi.Code {
	return f.record("SetDoubleParam")
}

func (f *fakeAPI) GetDoubleParam(capi.Handle, string) (float64, capi.Code) {
	return 0, f.record("GetDoubleParam")
}

func (f *fakeAPI) SetStringParam(capi.Handle, string, string) capi.Code {
	return f.record("SetStringParam")
}

func (f *fakeAPI) GetStringParam(capi.Handle, string) (string, capi.Code) {
	return "", f.record("GetStringParam")
}

func (f *fakeAPI) NewModel(capi.Handle, string) (capi.Handle, capi.Code) {
	code := f.record("NewModel")
	if code != capi.CodeOK {
		return 0, code
	}
	f.nextHandle++
	return f.nextHandle, capi.CodeOK
}

func (f *fakeAPI) CopyModel(capi.Handle) capi.Handle {
	f.record("CopyModel")
	if f.copyFails {
		return 0
	}
	f.nextHandle++
	return f.nextHandle
}

func (f *fakeAPI) FreeModel(capi.Handle) capi.Code { return f.record("FreeModel") }

func (f *fakeAPI) UpdateModel(capi.Handle) capi.Code { return f.record("UpdateModel") }

func (f *fakeAPI) Optimize(capi.Handle) capi.Code { return f.record("Optimize") }

func (f *fakeAPI) GetIntAttr(_ capi.Handle, name string) (int, capi.Code) {
	return f.intAttrs[name], f.record("GetIntAttr")
}

func (f *fakeAPI) GetDoubleAttr(_ capi.Handle, name string) (float64, capi.Code) {
	return f.doubleAttrs[name], f.record("GetDoubleAttr")
}

func (f *fakeAPI) GetStringAttr(_ capi.Handle, name string) (string, capi.Code) {
	return f.stringAttrs[name], f.record("GetStringAttr")
}

func (f *fakeAPI) SetIntAttr(_ capi.Handle, name string, value int) capi.Code {
	f.setIntAttrs[name] = value
	return f.record("SetIntAttr")
}

func (f *fakeAPI) SetDoubleAttr(capi.Handle, string, float64) capi.Code {
	return f.record("SetDoubleAttr")
}

func (f *fakeAPI) SetStringAttr(capi.Handle, string, string) capi.Code {
	return f.record("SetStringAttr")
}

func (f *fakeAPI) GetDoubleAttrArray(_ capi.Handle, name string, first, length int) ([]float64, capi.Code) {
	f.arrayReads = append(f.arrayReads, arrayReadCall{name: name, first: first, length: length})
	code := f.record("GetDoubleAttrArray")
	if code != capi.CodeOK {
		return nil, code
	}
	arr := f.arrays[name]
	if first < 0 || first+length > len(arr) {
		return nil, 10006 // index out of range, as the solver would report
	}
	out := make([]float64, length)
	copy(out, arr[first:first+length])
	return out, capi.CodeOK
}

func (f *fakeAPI) AddVars(_ capi.Handle, n int, obj, lb, ub []float64, vtypes []byte) capi.Code {
	f.addVars = append(f.addVars, addVarsCall{n: n, obj: obj, lb: lb, ub: ub, vtypes: vtypes})
	return f.record("AddVars")
}

func (f *fakeAPI) AddConstr(_ capi.Handle, inds []int32, vals []float64, sense byte, rhs float64, _ string) capi.Code {
	f.addConstrs = append(f.addConstrs, addConstrsCall{
		rows: 1, cbeg: []int32{0}, cind: inds, cval: vals,
		senses: []byte{sense}, rhs: []float64{rhs},
	})
	return f.record("AddConstr")
}

func (f *fakeAPI) AddConstrs(_ capi.Handle, rows int, cbeg, cind []int32, cval []float64, senses []byte, rhs []float64) capi.Code {
	f.addConstrs = append(f.addConstrs, addConstrsCall{
		rows: rows, cbeg: cbeg, cind: cind, cval: cval, senses: senses, rhs: rhs,
	})
	return f.record("AddConstrs")
}
