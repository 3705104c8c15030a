package db

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type SessionMock struct {
	mock.Mock
}

func NewSessionMock() *SessionMock {
	return &SessionMock{}
}

func (o *SessionMock) ExecuteIter(ctx context.Context, query string, options *QueryOptions, values ...interface{}) (ResultSet, error) {
	args := o.Called(ctx, query, options, values)
	result, _ := args.Get(0).(ResultSet)
	return result, args.Error(1)
}

func (o *SessionMock) Close() {
	o.Called()
}

type ResultMock struct {
	mock.Mock
}

func (o *ResultMock) Columns() []string {
	return o.Called().Get(0).([]string)
}

func (o *ResultMock) Values() []map[string]interface{} {
	args := o.Called()
	return args.Get(0).([]map[string]interface{})
}

// NewResultMock returns a result set with the given columns and rows
func NewResultMock(columns []string, values ...map[string]interface{}) *ResultMock {
	result := &ResultMock{}
	result.On("Columns").Return(columns)
	result.On("Values").Return(values)
	return result
}
