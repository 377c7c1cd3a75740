//go:build cgo && !windows

package capi

/*
#cgo CFLAGS: -I${SRCDIR}/../../gurobi/include
#cgo LDFLAGS: -L${SRCDIR}/../../gurobi/lib -lgurobi110
#cgo linux LDFLAGS: -Wl,-rpath,${SRCDIR}/../../gurobi/lib
#include <stdlib.h>
#include <gurobi_c.h>
*/
import "C"

import "unsafe"

// New returns the cgo-backed call surface.
func New() API {
	return native{}
}

type native struct{}

// Handles hold C pointers that the Go runtime never moves, so round-tripping
// them through uintptr is safe here. See https://pkg.go.dev/cmd/cgo.
func envPtr(h Handle) *C.GRBenv {
	return (*C.GRBenv)(unsafe.Pointer(uintptr(h)))
}

func modelPtr(h Handle) *C.GRBmodel {
	return (*C.GRBmodel)(unsafe.Pointer(uintptr(h)))
}

func (native) LoadEnv(logfile string) (Handle, Code) {
	var cLog *C.char
	if logfile != "" {
		cLog = C.CString(logfile)
		defer C.free(unsafe.Pointer(cLog))
	}
	var env *C.GRBenv
	code := Code(C.GRBloadenv(&env, cLog))
	return Handle(uintptr(unsafe.Pointer(env))), code
}

func (native) FreeEnv(env Handle) {
	C.GRBfreeenv(envPtr(env))
}

func (native) ErrorMessage(env Handle) string {
	if env == 0 {
		return ""
	}
	return C.GoString(C.GRBgeterrormsg(envPtr(env)))
}

func (native) Version() (major, minor, technical int) {
	var maj, min, tech C.int
	C.GRBversion(&maj, &min, &tech)
	return int(maj), int(min), int(tech)
}

func (native) SetIntParam(env Handle, name string, value int) Code {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	return Code(C.GRBsetintparam(envPtr(env), cName, C.int(value)))
}

func (native) GetIntParam(env Handle, name string) (int, Code) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	var val C.int
	code := Code(C.GRBgetintparam(envPtr(env), cName, &val))
	return int(val), code
}

func (native) SetDoubleParam(env Handle, name string, value float64) Code {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	return Code(C.GRBsetdblparam(envPtr(env), cName, C.double(value)))
}

func (native) GetDoubleParam(env Handle, name string) (float64, Code) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	var val C.double
	code := Code(C.GRBgetdblparam(envPtr(env), cName, &val))
	return float64(val), code
}

func (native) SetStringParam(env Handle, name, value string) Code {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	cVal := C.CString(value)
	defer C.free(unsafe.Pointer(cVal))
	return Code(C.GRBsetstrparam(envPtr(env), cName, cVal))
}

func (native) GetStringParam(env Handle, name string) (string, Code) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	buf := make([]C.char, C.GRB_MAX_STRLEN)
	code := Code(C.GRBgetstrparam(envPtr(env), cName, &buf[0]))
	return C.GoString(&buf[0]), code
}

func (native) NewModel(env Handle, name string) (Handle, Code) {
	var cName *C.char
	if name != "" {
		cName = C.CString(name)
		defer C.free(unsafe.Pointer(cName))
	}
	var model *C.GRBmodel
	code := Code(C.GRBnewmodel(envPtr(env), &model, cName,
		0, nil, nil, nil, nil, nil))
	return Handle(uintptr(unsafe.Pointer(model))), code
}

func (native) CopyModel(model Handle) Handle {
	clone := C.GRBcopymodel(modelPtr(model))
	return Handle(uintptr(unsafe.Pointer(clone)))
}

func (native) FreeModel(model Handle) Code {
	return Code(C.GRBfreemodel(modelPtr(model)))
}

func (native) UpdateModel(model Handle) Code {
	return Code(C.GRBupdatemodel(modelPtr(model)))
}

func (native) Optimize(model Handle) Code {
	return Code(C.GRBoptimize(modelPtr(model)))
}

func (native) GetIntAttr(model Handle, name string) (int, Code) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	var val C.int
	code := Code(C.GRBgetintattr(modelPtr(model), cName, &val))
	return int(val), code
}

func (native) GetDoubleAttr(model Handle, name string) (float64, Code) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	var val C.double
	code := Code(C.GRBgetdblattr(modelPtr(model), cName, &val))
	return float64(val), code
}

func (native) GetStringAttr(model Handle, name string) (string, Code) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	var val *C.char
	code := Code(C.GRBgetstrattr(modelPtr(model), cName, &val))
	if code != CodeOK {
		return "", code
	}
	return C.GoString(val), code
}

func (native) SetIntAttr(model Handle, name string, value int) Code {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	return Code(C.GRBsetintattr(modelPtr(model), cName, C.int(value)))
}

func (native) SetDoubleAttr(model Handle, name string, value float64) Code {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	return Code(C.GRBsetdblattr(modelPtr(model), cName, C.double(value)))
}

func (native) SetStringAttr(model Handle, name, value string) Code {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	cVal := C.CString(value)
	defer C.free(unsafe.Pointer(cVal))
	return Code(C.GRBsetstrattr(modelPtr(model), cName, cVal))
}

func (native) GetDoubleAttrArray(model Handle, name string, first, length int) ([]float64, Code) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	if length == 0 {
		code := Code(C.GRBgetdblattrarray(modelPtr(model), cName, C.int(first), 0, nil))
		return nil, code
	}
	out := make([]float64, length)
	code := Code(C.GRBgetdblattrarray(modelPtr(model), cName,
		C.int(first), C.int(length), (*C.double)(&out[0])))
	if code != CodeOK {
		return nil, code
	}
	return out, code
}

func (native) AddVars(model Handle, numVars int, obj, lb, ub []float64, vtypes []byte) Code {
	var pObj, pLB, pUB *C.double
	if len(obj) > 0 {
		pObj = (*C.double)(&obj[0])
	}
	if len(lb) > 0 {
		pLB = (*C.double)(&lb[0])
	}
	if len(ub) > 0 {
		pUB = (*C.double)(&ub[0])
	}
	var pTypes *C.char
	if len(vtypes) > 0 {
		pTypes = (*C.char)(unsafe.Pointer(&vtypes[0]))
	}
	return Code(C.GRBaddvars(modelPtr(model),
		C.int(numVars), 0, nil, nil, nil,
		pObj, pLB, pUB, pTypes, nil))
}

func (native) AddConstr(model Handle, inds []int32, vals []float64, sense byte, rhs float64, name string) Code {
	var cName *C.char
	if name != "" {
		cName = C.CString(name)
		defer C.free(unsafe.Pointer(cName))
	}
	var pInds *C.int
	var pVals *C.double
	if len(inds) > 0 {
		pInds = (*C.int)(unsafe.Pointer(&inds[0]))
		pVals = (*C.double)(&vals[0])
	}
	return Code(C.GRBaddconstr(modelPtr(model),
		C.int(len(inds)), pInds, pVals, C.char(sense), C.double(rhs), cName))
}

func (native) AddConstrs(model Handle, numConstrs int, cbeg, cind []int32, cval []float64, senses []byte, rhs []float64) Code {
	var pBeg, pInd *C.int
	var pVal, pRHS *C.double
	var pSense *C.char
	if len(cbeg) > 0 {
		pBeg = (*C.int)(unsafe.Pointer(&cbeg[0]))
	}
	if len(cind) > 0 {
		pInd = (*C.int)(unsafe.Pointer(&cind[0]))
		pVal = (*C.double)(&cval[0])
	}
	if len(senses) > 0 {
		pSense = (*C.char)(unsafe.Pointer(&senses[0]))
	}
	if len(rhs) > 0 {
		pRHS = (*C.double)(&rhs[0])
	}
	return Code(C.GRBaddconstrs(modelPtr(model),
		C.int(numConstrs), C.int(len(cind)), pBeg, pInd, pVal, pSense, pRHS, nil))
}
