package mocks

import (
	"context"
	"net/http"

	"github.com/google/go-github/v66/github"
	"github.com/stretchr/testify/mock"
)

type RawService struct {
	mock.Mock
}

func (_m *RawService) NewRequest(method string, urlStr string, body interface{}, opts ...github.RequestOption) (*http.Request, error) {
	_va := make([]interface{}, len(opts))
	for _i := range opts {
		_va[_i] = opts[_i]
	}
	var _ca []interface{}
	_ca = append(_ca, method, urlStr, body)
	_ca = append(_ca, _va...)
	ret := _m.Called(_ca...)

	var r0 *http.Request
	if rf, ok := ret.Get(0).(func(string, string, interface{}, ...github.RequestOption) *http.Request); ok {
		r0 = rf(method, urlStr, body, opts...)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*http.Request)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(string, string, interface{}, ...github.RequestOption) error); ok {
		r1 = rf(method, urlStr, body, opts...)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *RawService) Do(ctx context.Context, req *http.Request, v interface{}) (*github.Response, error) {
	ret := _m.Called(ctx, req, v)

	var r0 *github.Response
	if rf, ok := ret.Get(0).(func(context.Context, *http.Request, interface{}) *github.Response); ok {
		r0 = rf(ctx, req, v)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*github.Response)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *http.Request, interface{}) error); ok {
		r1 = rf(ctx, req, v)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
