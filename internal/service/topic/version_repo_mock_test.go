package topic

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/topicwiki-backend/internal/domain"
)

var _ versionRepo = &versionRepoMock{}

type versionRepoMock struct {
	AppendFunc        func(ctx context.Context, v *domain.TopicVersion) error
	LatestFunc        func(ctx context.Context, topicID uuid.UUID) (*domain.TopicVersion, error)
	GetAtOrBeforeFunc func(ctx context.Context, topicID uuid.UUID, ts time.Time) (*domain.TopicVersion, error)
	ListByTopicFunc   func(ctx context.Context, topicID uuid.UUID) ([]domain.TopicVersion, error)

	calls struct {
		Append []struct {
			V *domain.TopicVersion
		}
		Latest []struct {
			TopicID uuid.UUID
		}
		GetAtOrBefore []struct {
			TopicID uuid.UUID
			TS      time.Time
		}
		ListByTopic []struct {
			TopicID uuid.UUID
		}
	}
	lockAppend        sync.RWMutex
	lockLatest        sync.RWMutex
	lockGetAtOrBefore sync.RWMutex
	lockListByTopic   sync.RWMutex
}

func (mock *versionRepoMock) Append(ctx context.Context, v *domain.TopicVersion) error {
	if mock.AppendFunc == nil {
		panic("versionRepoMock.AppendFunc: method is nil but versionRepo.Append was just called")
	}
	callInfo := struct {
		V *domain.TopicVersion
	}{V: v}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, v)
}

func (mock *versionRepoMock) AppendCalls() []struct {
	V *domain.TopicVersion
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *versionRepoMock) Latest(ctx context.Context, topicID uuid.UUID) (*domain.TopicVersion, error) {
	if mock.LatestFunc == nil {
		panic("versionRepoMock.LatestFunc: method is nil but versionRepo.Latest was just called")
	}
	callInfo := struct {
		TopicID uuid.UUID
	}{TopicID: topicID}
	mock.lockLatest.Lock()
	mock.calls.Latest = append(mock.calls.Latest, callInfo)
	mock.lockLatest.Unlock()
	return mock.LatestFunc(ctx, topicID)
}

func (mock *versionRepoMock) LatestCalls() []struct {
	TopicID uuid.UUID
} {
	mock.lockLatest.RLock()
	calls := mock.calls.Latest
	mock.lockLatest.RUnlock()
	return calls
}

func (mock *versionRepoMock) GetAtOrBefore(ctx context.Context, topicID uuid.UUID, ts time.Time) (*domain.TopicVersion, error) {
	if mock.GetAtOrBeforeFunc == nil {
		panic("versionRepoMock.GetAtOrBeforeFunc: method is nil but versionRepo.GetAtOrBefore was just called")
	}
	callInfo := struct {
		TopicID uuid.UUID
		TS      time.Time
	}{TopicID: topicID, TS: ts}
	mock.lockGetAtOrBefore.Lock()
	mock.calls.GetAtOrBefore = append(mock.calls.GetAtOrBefore, callInfo)
	mock.lockGetAtOrBefore.Unlock()
	return mock.GetAtOrBeforeFunc(ctx, topicID, ts)
}

func (mock *versionRepoMock) GetAtOrBeforeCalls() []struct {
	TopicID uuid.UUID
	TS      time.Time
} {
	mock.lockGetAtOrBefore.RLock()
	calls := mock.calls.GetAtOrBefore
	mock.lockGetAtOrBefore.RUnlock()
	return calls
}

func (mock *versionRepoMock) ListByTopic(ctx context.Context, topicID uuid.UUID) ([]domain.TopicVersion, error) {
	if mock.ListByTopicFunc == nil {
		panic("versionRepoMock.ListByTopicFunc: method is nil but versionRepo.ListByTopic was just called")
	}
	callInfo := struct {
		TopicID uuid.UUID
	}{TopicID: topicID}
	mock.lockListByTopic.Lock()
	mock.calls.ListByTopic = append(mock.calls.ListByTopic, callInfo)
	mock.lockListByTopic.Unlock()
	return mock.ListByTopicFunc(ctx, topicID)
}

func (mock *versionRepoMock) ListByTopicCalls() []struct {
	TopicID uuid.UUID
} {
	mock.lockListByTopic.RLock()
	calls := mock.calls.ListByTopic
	mock.lockListByTopic.RUnlock()
	return calls
}
