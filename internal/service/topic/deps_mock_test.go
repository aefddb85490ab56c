package topic

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ linkService = &linkServiceMock{}

type linkServiceMock struct {
	ReconcileFunc     func(ctx context.Context, topicID uuid.UUID, author string, refs []string) error
	AdoptNascentFunc  func(ctx context.Context, name string) error
	ReferencingFunc   func(ctx context.Context, lcName string) ([]uuid.UUID, error)
	RerenderTopicFunc func(ctx context.Context, topicID uuid.UUID) error

	calls struct {
		Reconcile []struct {
			TopicID uuid.UUID
			Author  string
			Refs    []string
		}
		AdoptNascent []struct {
			Name string
		}
		Referencing []struct {
			LCName string
		}
		RerenderTopic []struct {
			TopicID uuid.UUID
		}
	}
	lockReconcile     sync.RWMutex
	lockAdoptNascent  sync.RWMutex
	lockReferencing   sync.RWMutex
	lockRerenderTopic sync.RWMutex
}

func (mock *linkServiceMock) Reconcile(ctx context.Context, topicID uuid.UUID, author string, refs []string) error {
	if mock.ReconcileFunc == nil {
		panic("linkServiceMock.ReconcileFunc: method is nil but linkService.Reconcile was just called")
	}
	callInfo := struct {
		TopicID uuid.UUID
		Author  string
		Refs    []string
	}{TopicID: topicID, Author: author, Refs: refs}
	mock.lockReconcile.Lock()
	mock.calls.Reconcile = append(mock.calls.Reconcile, callInfo)
	mock.lockReconcile.Unlock()
	return mock.ReconcileFunc(ctx, topicID, author, refs)
}

func (mock *linkServiceMock) ReconcileCalls() []struct {
	TopicID uuid.UUID
	Author  string
	Refs    []string
} {
	mock.lockReconcile.RLock()
	calls := mock.calls.Reconcile
	mock.lockReconcile.RUnlock()
	return calls
}

func (mock *linkServiceMock) AdoptNascent(ctx context.Context, name string) error {
	if mock.AdoptNascentFunc == nil {
		panic("linkServiceMock.AdoptNascentFunc: method is nil but linkService.AdoptNascent was just called")
	}
	callInfo := struct {
		Name string
	}{Name: name}
	mock.lockAdoptNascent.Lock()
	mock.calls.AdoptNascent = append(mock.calls.AdoptNascent, callInfo)
	mock.lockAdoptNascent.Unlock()
	return mock.AdoptNascentFunc(ctx, name)
}

func (mock *linkServiceMock) AdoptNascentCalls() []struct {
	Name string
} {
	mock.lockAdoptNascent.RLock()
	calls := mock.calls.AdoptNascent
	mock.lockAdoptNascent.RUnlock()
	return calls
}

func (mock *linkServiceMock) Referencing(ctx context.Context, lcName string) ([]uuid.UUID, error) {
	if mock.ReferencingFunc == nil {
		panic("linkServiceMock.ReferencingFunc: method is nil but linkService.Referencing was just called")
	}
	callInfo := struct {
		LCName string
	}{LCName: lcName}
	mock.lockReferencing.Lock()
	mock.calls.Referencing = append(mock.calls.Referencing, callInfo)
	mock.lockReferencing.Unlock()
	return mock.ReferencingFunc(ctx, lcName)
}

func (mock *linkServiceMock) ReferencingCalls() []struct {
	LCName string
} {
	mock.lockReferencing.RLock()
	calls := mock.calls.Referencing
	mock.lockReferencing.RUnlock()
	return calls
}

func (mock *linkServiceMock) RerenderTopic(ctx context.Context, topicID uuid.UUID) error {
	if mock.RerenderTopicFunc == nil {
		panic("linkServiceMock.RerenderTopicFunc: method is nil but linkService.RerenderTopic was just called")
	}
	callInfo := struct {
		TopicID uuid.UUID
	}{TopicID: topicID}
	mock.lockRerenderTopic.Lock()
	mock.calls.RerenderTopic = append(mock.calls.RerenderTopic, callInfo)
	mock.lockRerenderTopic.Unlock()
	return mock.RerenderTopicFunc(ctx, topicID)
}

func (mock *linkServiceMock) RerenderTopicCalls() []struct {
	TopicID uuid.UUID
} {
	mock.lockRerenderTopic.RLock()
	calls := mock.calls.RerenderTopic
	mock.lockRerenderTopic.RUnlock()
	return calls
}

var _ lockService = &lockServiceMock{}

type lockServiceMock struct {
	AcquireFunc func(ctx context.Context, topicID uuid.UUID, user string) (bool, error)
	SeizeFunc   func(ctx context.Context, topicID uuid.UUID, user string) error
	ReleaseFunc func(ctx context.Context, topicID uuid.UUID, user string, force bool) error

	calls struct {
		Acquire []struct {
			TopicID uuid.UUID
			User    string
		}
		Seize []struct {
			TopicID uuid.UUID
			User    string
		}
		Release []struct {
			TopicID uuid.UUID
			User    string
			Force   bool
		}
	}
	lockAcquire sync.RWMutex
	lockSeize   sync.RWMutex
	lockRelease sync.RWMutex
}

func (mock *lockServiceMock) Acquire(ctx context.Context, topicID uuid.UUID, user string) (bool, error) {
	if mock.AcquireFunc == nil {
		panic("lockServiceMock.AcquireFunc: method is nil but lockService.Acquire was just called")
	}
	callInfo := struct {
		TopicID uuid.UUID
		User    string
	}{TopicID: topicID, User: user}
	mock.lockAcquire.Lock()
	mock.calls.Acquire = append(mock.calls.Acquire, callInfo)
	mock.lockAcquire.Unlock()
	return mock.AcquireFunc(ctx, topicID, user)
}

func (mock *lockServiceMock) AcquireCalls() []struct {
	TopicID uuid.UUID
	User    string
} {
	mock.lockAcquire.RLock()
	calls := mock.calls.Acquire
	mock.lockAcquire.RUnlock()
	return calls
}

func (mock *lockServiceMock) Seize(ctx context.Context, topicID uuid.UUID, user string) error {
	if mock.SeizeFunc == nil {
		panic("lockServiceMock.SeizeFunc: method is nil but lockService.Seize was just called")
	}
	callInfo := struct {
		TopicID uuid.UUID
		User    string
	}{TopicID: topicID, User: user}
	mock.lockSeize.Lock()
	mock.calls.Seize = append(mock.calls.Seize, callInfo)
	mock.lockSeize.Unlock()
	return mock.SeizeFunc(ctx, topicID, user)
}

func (mock *lockServiceMock) SeizeCalls() []struct {
	TopicID uuid.UUID
	User    string
} {
	mock.lockSeize.RLock()
	calls := mock.calls.Seize
	mock.lockSeize.RUnlock()
	return calls
}

func (mock *lockServiceMock) Release(ctx context.Context, topicID uuid.UUID, user string, force bool) error {
	if mock.ReleaseFunc == nil {
		panic("lockServiceMock.ReleaseFunc: method is nil but lockService.Release was just called")
	}
	callInfo := struct {
		TopicID uuid.UUID
		User    string
		Force   bool
	}{TopicID: topicID, User: user, Force: force}
	mock.lockRelease.Lock()
	mock.calls.Release = append(mock.calls.Release, callInfo)
	mock.lockRelease.Unlock()
	return mock.ReleaseFunc(ctx, topicID, user, force)
}

func (mock *lockServiceMock) ReleaseCalls() []struct {
	TopicID uuid.UUID
	User    string
	Force   bool
} {
	mock.lockRelease.RLock()
	calls := mock.calls.Release
	mock.lockRelease.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

// txManagerMock runs the transaction body on the caller's context.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lockRunInTx.Unlock()
	if mock.RunInTxFunc != nil {
		return mock.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
