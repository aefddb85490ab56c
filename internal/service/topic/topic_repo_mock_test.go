package topic

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/topicwiki-backend/internal/domain"
)

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	CreateFunc        func(ctx context.Context, t *domain.Topic) error
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
	GetByNameFunc     func(ctx context.Context, lcName string) (*domain.Topic, error)
	UpdateContentFunc func(ctx context.Context, id uuid.UUID, raw, formatted, author, reason string, modifiedAt time.Time) error
	UpdateNameFunc    func(ctx context.Context, id uuid.UUID, name, lcName, author, reason string, modifiedAt time.Time) error
	MarkDeletedFunc   func(ctx context.Context, id uuid.UUID, author, reason string, modifiedAt time.Time) error
	SetFlagsFunc      func(ctx context.Context, id uuid.UUID, locked, restricted bool) error
	ListFunc          func(ctx context.Context, f domain.TopicFilter) ([]domain.Topic, error)

	calls struct {
		Create []struct {
			T *domain.Topic
		}
		GetByID []struct {
			ID uuid.UUID
		}
		GetByName []struct {
			LCName string
		}
		UpdateContent []struct {
			ID         uuid.UUID
			Raw        string
			Formatted  string
			Author     string
			Reason     string
			ModifiedAt time.Time
		}
		UpdateName []struct {
			ID         uuid.UUID
			Name       string
			LCName     string
			Author     string
			Reason     string
			ModifiedAt time.Time
		}
		MarkDeleted []struct {
			ID         uuid.UUID
			Author     string
			Reason     string
			ModifiedAt time.Time
		}
		SetFlags []struct {
			ID         uuid.UUID
			Locked     bool
			Restricted bool
		}
		List []struct {
			F domain.TopicFilter
		}
	}
	lockCreate        sync.RWMutex
	lockGetByID       sync.RWMutex
	lockGetByName     sync.RWMutex
	lockUpdateContent sync.RWMutex
	lockUpdateName    sync.RWMutex
	lockMarkDeleted   sync.RWMutex
	lockSetFlags      sync.RWMutex
	lockList          sync.RWMutex
}

func (mock *topicRepoMock) Create(ctx context.Context, t *domain.Topic) error {
	if mock.CreateFunc == nil {
		panic("topicRepoMock.CreateFunc: method is nil but topicRepo.Create was just called")
	}
	callInfo := struct {
		T *domain.Topic
	}{T: t}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *topicRepoMock) CreateCalls() []struct {
	T *domain.Topic
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
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

func (mock *topicRepoMock) UpdateContent(ctx context.Context, id uuid.UUID, raw, formatted, author, reason string, modifiedAt time.Time) error {
	if mock.UpdateContentFunc == nil {
		panic("topicRepoMock.UpdateContentFunc: method is nil but topicRepo.UpdateContent was just called")
	}
	callInfo := struct {
		ID         uuid.UUID
		Raw        string
		Formatted  string
		Author     string
		Reason     string
		ModifiedAt time.Time
	}{ID: id, Raw: raw, Formatted: formatted, Author: author, Reason: reason, ModifiedAt: modifiedAt}
	mock.lockUpdateContent.Lock()
	mock.calls.UpdateContent = append(mock.calls.UpdateContent, callInfo)
	mock.lockUpdateContent.Unlock()
	return mock.UpdateContentFunc(ctx, id, raw, formatted, author, reason, modifiedAt)
}

func (mock *topicRepoMock) UpdateContentCalls() []struct {
	ID         uuid.UUID
	Raw        string
	Formatted  string
	Author     string
	Reason     string
	ModifiedAt time.Time
} {
	mock.lockUpdateContent.RLock()
	calls := mock.calls.UpdateContent
	mock.lockUpdateContent.RUnlock()
	return calls
}

func (mock *topicRepoMock) UpdateName(ctx context.Context, id uuid.UUID, name, lcName, author, reason string, modifiedAt time.Time) error {
	if mock.UpdateNameFunc == nil {
		panic("topicRepoMock.UpdateNameFunc: method is nil but topicRepo.UpdateName was just called")
	}
	callInfo := struct {
		ID         uuid.UUID
		Name       string
		LCName     string
		Author     string
		Reason     string
		ModifiedAt time.Time
	}{ID: id, Name: name, LCName: lcName, Author: author, Reason: reason, ModifiedAt: modifiedAt}
	mock.lockUpdateName.Lock()
	mock.calls.UpdateName = append(mock.calls.UpdateName, callInfo)
	mock.lockUpdateName.Unlock()
	return mock.UpdateNameFunc(ctx, id, name, lcName, author, reason, modifiedAt)
}

func (mock *topicRepoMock) UpdateNameCalls() []struct {
	ID         uuid.UUID
	Name       string
	LCName     string
	Author     string
	Reason     string
	ModifiedAt time.Time
} {
	mock.lockUpdateName.RLock()
	calls := mock.calls.UpdateName
	mock.lockUpdateName.RUnlock()
	return calls
}

func (mock *topicRepoMock) MarkDeleted(ctx context.Context, id uuid.UUID, author, reason string, modifiedAt time.Time) error {
	if mock.MarkDeletedFunc == nil {
		panic("topicRepoMock.MarkDeletedFunc: method is nil but topicRepo.MarkDeleted was just called")
	}
	callInfo := struct {
		ID         uuid.UUID
		Author     string
		Reason     string
		ModifiedAt time.Time
	}{ID: id, Author: author, Reason: reason, ModifiedAt: modifiedAt}
	mock.lockMarkDeleted.Lock()
	mock.calls.MarkDeleted = append(mock.calls.MarkDeleted, callInfo)
	mock.lockMarkDeleted.Unlock()
	return mock.MarkDeletedFunc(ctx, id, author, reason, modifiedAt)
}

func (mock *topicRepoMock) MarkDeletedCalls() []struct {
	ID         uuid.UUID
	Author     string
	Reason     string
	ModifiedAt time.Time
} {
	mock.lockMarkDeleted.RLock()
	calls := mock.calls.MarkDeleted
	mock.lockMarkDeleted.RUnlock()
	return calls
}

func (mock *topicRepoMock) SetFlags(ctx context.Context, id uuid.UUID, locked, restricted bool) error {
	if mock.SetFlagsFunc == nil {
		panic("topicRepoMock.SetFlagsFunc: method is nil but topicRepo.SetFlags was just called")
	}
	callInfo := struct {
		ID         uuid.UUID
		Locked     bool
		Restricted bool
	}{ID: id, Locked: locked, Restricted: restricted}
	mock.lockSetFlags.Lock()
	mock.calls.SetFlags = append(mock.calls.SetFlags, callInfo)
	mock.lockSetFlags.Unlock()
	return mock.SetFlagsFunc(ctx, id, locked, restricted)
}

func (mock *topicRepoMock) SetFlagsCalls() []struct {
	ID         uuid.UUID
	Locked     bool
	Restricted bool
} {
	mock.lockSetFlags.RLock()
	calls := mock.calls.SetFlags
	mock.lockSetFlags.RUnlock()
	return calls
}

func (mock *topicRepoMock) List(ctx context.Context, f domain.TopicFilter) ([]domain.Topic, error) {
	if mock.ListFunc == nil {
		panic("topicRepoMock.ListFunc: method is nil but topicRepo.List was just called")
	}
	callInfo := struct {
		F domain.TopicFilter
	}{F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *topicRepoMock) ListCalls() []struct {
	F domain.TopicFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
