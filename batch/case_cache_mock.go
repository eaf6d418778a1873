// Copyright 2026 The Ranktau Authors
// This file is part of Ranktau.
//
// Ranktau is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Ranktau is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Ranktau. If not, see <http://www.gnu.org/licenses/>.

// Package batch is a generated GoMock package.
package batch

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockCaseCache is a mock of CaseCache interface.
type MockCaseCache struct {
	ctrl     *gomock.Controller
	recorder *MockCaseCacheMockRecorder
}

// MockCaseCacheMockRecorder is the mock recorder for MockCaseCache.
type MockCaseCacheMockRecorder struct {
	mock *MockCaseCache
}

// NewMockCaseCache creates a new mock instance.
func NewMockCaseCache(ctrl *gomock.Controller) *MockCaseCache {
	mock := &MockCaseCache{ctrl: ctrl}
	mock.recorder = &MockCaseCacheMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCaseCache) EXPECT() *MockCaseCacheMockRecorder {
	return m.recorder
}

// Get mocks base method.
func (m *MockCaseCache) Get(key string) (CachedBounds, bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", key)
	ret0, _ := ret[0].(CachedBounds)
	ret1, _ := ret[1].(bool)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// Get indicates an expected call of Get.
func (mr *MockCaseCacheMockRecorder) Get(key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockCaseCache)(nil).Get), key)
}

// Put mocks base method.
func (m *MockCaseCache) Put(key string, v CachedBounds) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Put", key, v)
	ret0, _ := ret[0].(error)
	return ret0
}

// Put indicates an expected call of Put.
func (mr *MockCaseCacheMockRecorder) Put(key, v any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Put", reflect.TypeOf((*MockCaseCache)(nil).Put), key, v)
}
