package rest

import (
	"context"
	"sync"

	"github.com/legolocker/backend/internal/domain"
	"github.com/legolocker/backend/internal/service/document"
)

var _ documentService = &documentServiceMock{}

type documentServiceMock struct {
	ListFunc   func(ctx context.Context, input document.ListInput) ([]domain.Document, error)
	GetFunc    func(ctx context.Context, input document.GetInput) (*domain.Document, error)
	CreateFunc func(ctx context.Context, input document.CreateInput) (*domain.Document, error)
	UpsertFunc func(ctx context.Context, input document.UpsertInput) (*domain.Document, error)
	DeleteFunc func(ctx context.Context, input document.DeleteInput) error

	calls struct {
		List []struct {
			Ctx   context.Context
			Input document.ListInput
		}
		Get []struct {
			Ctx   context.Context
			Input document.GetInput
		}
		Create []struct {
			Ctx   context.Context
			Input document.CreateInput
		}
		Upsert []struct {
			Ctx   context.Context
			Input document.UpsertInput
		}
		Delete []struct {
			Ctx   context.Context
			Input document.DeleteInput
		}
	}
	lockList   sync.RWMutex
	lockGet    sync.RWMutex
	lockCreate sync.RWMutex
	lockUpsert sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *documentServiceMock) List(ctx context.Context, input document.ListInput) ([]domain.Document, error) {
	if mock.ListFunc == nil {
		panic("documentServiceMock.ListFunc: method is nil but documentService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input document.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *documentServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input document.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *documentServiceMock) Get(ctx context.Context, input document.GetInput) (*domain.Document, error) {
	if mock.GetFunc == nil {
		panic("documentServiceMock.GetFunc: method is nil but documentService.Get was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input document.GetInput
	}{Ctx: ctx, Input: input}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, input)
}

func (mock *documentServiceMock) GetCalls() []struct {
	Ctx   context.Context
	Input document.GetInput
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *documentServiceMock) Create(ctx context.Context, input document.CreateInput) (*domain.Document, error) {
	if mock.CreateFunc == nil {
		panic("documentServiceMock.CreateFunc: method is nil but documentService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input document.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *documentServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input document.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *documentServiceMock) Upsert(ctx context.Context, input document.UpsertInput) (*domain.Document, error) {
	if mock.UpsertFunc == nil {
		panic("documentServiceMock.UpsertFunc: method is nil but documentService.Upsert was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input document.UpsertInput
	}{Ctx: ctx, Input: input}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, input)
}

func (mock *documentServiceMock) UpsertCalls() []struct {
	Ctx   context.Context
	Input document.UpsertInput
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *documentServiceMock) Delete(ctx context.Context, input document.DeleteInput) error {
	if mock.DeleteFunc == nil {
		panic("documentServiceMock.DeleteFunc: method is nil but documentService.Delete was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input document.DeleteInput
	}{Ctx: ctx, Input: input}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, input)
}

func (mock *documentServiceMock) DeleteCalls() []struct {
	Ctx   context.Context
	Input document.DeleteInput
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
