package links

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/topicwiki-backend/internal/domain"
)

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
	GetByNameFunc       func(ctx context.Context, lcName string) (*domain.Topic, error)
	UpdateFormattedFunc func(ctx context.Context, id uuid.UUID, formatted string) error

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		GetByName []struct {
			LCName string
		}
		UpdateFormatted []struct {
			ID        uuid.UUID
			Formatted string
		}
	}
	lockGetByID         sync.RWMutex
	lockGetByName       sync.RWMutex
	lockUpdateFormatted sync.RWMutex
}

func (mock *topicRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	if mock.GetByIDFunc == nil {
		panic("topicRepoMock.GetByIDFunc: method is nil but topicRepo.GetByID was just called")
	}
	callInfo := struct {
		ID uuid.UUID
	}{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *topicRepoMock) GetByIDCalls() []struct {
	ID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *topicRepoMock) GetByName(ctx context.Context, lcName string) (*domain.Topic, error) {
	if mock.GetByNameFunc == nil {
		panic("topicRepoMock.GetByNameFunc: method is nil but topicRepo.GetByName was just called")
	}
	callInfo := struct {
		LCName string
	}{LCName: lcName}
	mock.lockGetByName.Lock()
	mock.calls.GetByName = append(mock.calls.GetByName, callInfo)
	mock.lockGetByName.Unlock()
	return mock.GetByNameFunc(ctx, lcName)
}

func (mock *topicRepoMock) GetByNameCalls() []struct {
	LCName string
} {
	mock.lockGetByName.RLock()
	calls := mock.calls.GetByName
	mock.lockGetByName.RUnlock()
	return calls
}

func (mock *topicRepoMock) UpdateFormatted(ctx context.Context, id uuid.UUID, formatted string) error {
	if mock.UpdateFormattedFunc == nil {
		panic("topicRepoMock.UpdateFormattedFunc: method is nil but topicRepo.UpdateFormatted was just called")
	}
	callInfo := struct {
		ID        uuid.UUID
		Formatted string
	}{ID: id, Formatted: formatted}
	mock.lockUpdateFormatted.Lock()
	mock.calls.UpdateFormatted = append(mock.calls.UpdateFormatted, callInfo)
	mock.lockUpdateFormatted.Unlock()
	return mock.UpdateFormattedFunc(ctx, id, formatted)
}

func (mock *topicRepoMock) UpdateFormattedCalls() []struct {
	ID        uuid.UUID
	Formatted string
} {
	mock.lockUpdateFormatted.RLock()
	calls := mock.calls.UpdateFormatted
	mock.lockUpdateFormatted.RUnlock()
	return calls
}

var _ renderer = &rendererMock{}

type rendererMock struct {
	RenderFunc func(raw string) (string, []string, error)

	calls struct {
		Render []struct {
			Raw string
		}
	}
	lockRender sync.RWMutex
}

func (mock *rendererMock) Render(raw string) (string, []string, error) {
	if mock.RenderFunc == nil {
		panic("rendererMock.RenderFunc: method is nil but renderer.Render was just called")
	}
	callInfo := struct {
		Raw string
	}{Raw: raw}
	mock.lockRender.Lock()
	mock.calls.Render = append(mock.calls.Render, callInfo)
	mock.lockRender.Unlock()
	return mock.RenderFunc(raw)
}

func (mock *rendererMock) RenderCalls() []struct {
	Raw string
} {
	mock.lockRender.RLock()
	calls := mock.calls.Render
	mock.lockRender.RUnlock()
	return calls
}
