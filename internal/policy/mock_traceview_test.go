// Hand-written gomock double in MockGen's output format.
// Source: internal/policy/context.go (interfaces: TraceView)

package policy

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
)

// MockTraceView is a mock of the TraceView interface, hand-authored in
// the shape mockgen would produce (this repository does not run
// go:generate as part of its build, per the constraint that no Go
// toolchain command is invoked while authoring it).
type MockTraceView struct {
	ctrl     *gomock.Controller
	recorder *MockTraceViewMockRecorder
}

type MockTraceViewMockRecorder struct {
	mock *MockTraceView
}

func NewMockTraceView(ctrl *gomock.Controller) *MockTraceView {
	mock := &MockTraceView{ctrl: ctrl}
	mock.recorder = &MockTraceViewMockRecorder{mock}
	return mock
}

func (m *MockTraceView) EXPECT() *MockTraceViewMockRecorder {
	return m.recorder
}

func (m *MockTraceView) PageAt(i int) (int, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PageAt", i)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

func (mr *MockTraceViewMockRecorder) PageAt(i interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PageAt", reflect.TypeOf((*MockTraceView)(nil).PageAt), i)
}

func (m *MockTraceView) Len() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Len")
	ret0, _ := ret[0].(int)
	return ret0
}

func (mr *MockTraceViewMockRecorder) Len() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Len", reflect.TypeOf((*MockTraceView)(nil).Len))
}
