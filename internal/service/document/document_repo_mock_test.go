package document

import (
	"context"
	"encoding/json"
	"sync"

	repo "github.com/legolocker/backend/internal/adapter/postgres/document"
	"github.com/legolocker/backend/internal/domain"
)

var _ documentRepo = &documentRepoMock{}

type documentRepoMock struct {
	ListFunc   func(ctx context.Context, collection string, opts repo.ListOptions) ([]domain.Document, error)
	GetFunc    func(ctx context.Context, collection, id string) (*domain.Document, error)
	CreateFunc func(ctx context.Context, collection string, data json.RawMessage) (*domain.Document, error)
	UpsertFunc func(ctx context.Context, collection, id string, data json.RawMessage) (*domain.Document, error)
	DeleteFunc func(ctx context.Context, collection, id string) error

	calls struct {
		List []struct {
			Collection string
			Opts       repo.ListOptions
		}
		Get []struct {
			Collection string
			ID         string
		}
		Create []struct {
			Collection string
			Data       json.RawMessage
		}
		Upsert []struct {
			Collection string
			ID         string
			Data       json.RawMessage
		}
		Delete []struct {
			Collection string
			ID         string
		}
	}
	lockList   sync.RWMutex
	lockGet    sync.RWMutex
	lockCreate sync.RWMutex
	lockUpsert sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *documentRepoMock) List(ctx context.Context, collection string, opts repo.ListOptions) ([]domain.Document, error) {
	if mock.ListFunc == nil {
		panic("documentRepoMock.ListFunc: method is nil but documentRepo.List was just called")
	}
	callInfo := struct {
		Collection string
		Opts       repo.ListOptions
	}{Collection: collection, Opts: opts}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, collection, opts)
}

func (mock *documentRepoMock) ListCalls() []struct {
	Collection string
	Opts       repo.ListOptions
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *documentRepoMock) Get(ctx context.Context, collection, id string) (*domain.Document, error) {
	if mock.GetFunc == nil {
		panic("documentRepoMock.GetFunc: method is nil but documentRepo.Get was just called")
	}
	callInfo := struct {
		Collection string
		ID         string
	}{Collection: collection, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, collection, id)
}

func (mock *documentRepoMock) GetCalls() []struct {
	Collection string
	ID         string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *documentRepoMock) Create(ctx context.Context, collection string, data json.RawMessage) (*domain.Document, error) {
	if mock.CreateFunc == nil {
		panic("documentRepoMock.CreateFunc: method is nil but documentRepo.Create was just called")
	}
	callInfo := struct {
		Collection string
		Data       json.RawMessage
	}{Collection: collection, Data: data}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, collection, data)
}

func (mock *documentRepoMock) CreateCalls() []struct {
	Collection string
	Data       json.RawMessage
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *documentRepoMock) Upsert(ctx context.Context, collection, id string, data json.RawMessage) (*domain.Document, error) {
	if mock.UpsertFunc == nil {
		panic("documentRepoMock.UpsertFunc: method is nil but documentRepo.Upsert was just called")
	}
	callInfo := struct {
		Collection string
		ID         string
		Data       json.RawMessage
	}{Collection: collection, ID: id, Data: data}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, collection, id, data)
}

func (mock *documentRepoMock) UpsertCalls() []struct {
	Collection string
	ID         string
	Data       json.RawMessage
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *documentRepoMock) Delete(ctx context.Context, collection, id string) error {
	if mock.DeleteFunc == nil {
		panic("documentRepoMock.DeleteFunc: method is nil but documentRepo.Delete was just called")
	}
	callInfo := struct {
		Collection string
		ID         string
	}{Collection: collection, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, collection, id)
}

func (mock *documentRepoMock) DeleteCalls() []struct {
	Collection string
	ID         string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
