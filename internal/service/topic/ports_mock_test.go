package topic

import (
	"context"
	"io"
	"sync"

	"github.com/heartmarshall/topicwiki-backend/internal/domain"
)

var _ Renderer = &rendererMock{}

type rendererMock struct {
	RenderFunc       func(raw string) (string, []string, error)
	RewriteLinksFunc func(raw, oldName, newName string) (string, bool)

	calls struct {
		Render []struct {
			Raw string
		}
		RewriteLinks []struct {
			Raw     string
			OldName string
			NewName string
		}
	}
	lockRender       sync.RWMutex
	lockRewriteLinks sync.RWMutex
}

func (mock *rendererMock) Render(raw string) (string, []string, error) {
	if mock.RenderFunc == nil {
		panic("rendererMock.RenderFunc: method is nil but Renderer.Render was just called")
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

func (mock *rendererMock) RewriteLinks(raw, oldName, newName string) (string, bool) {
	if mock.RewriteLinksFunc == nil {
		panic("rendererMock.RewriteLinksFunc: method is nil but Renderer.RewriteLinks was just called")
	}
	callInfo := struct {
		Raw     string
		OldName string
		NewName string
	}{Raw: raw, OldName: oldName, NewName: newName}
	mock.lockRewriteLinks.Lock()
	mock.calls.RewriteLinks = append(mock.calls.RewriteLinks, callInfo)
	mock.lockRewriteLinks.Unlock()
	return mock.RewriteLinksFunc(raw, oldName, newName)
}

func (mock *rendererMock) RewriteLinksCalls() []struct {
	Raw     string
	OldName string
	NewName string
} {
	mock.lockRewriteLinks.RLock()
	calls := mock.calls.RewriteLinks
	mock.lockRewriteLinks.RUnlock()
	return calls
}

var _ Authorizer = &authorizerMock{}

type authorizerMock struct {
	PermittedFunc     func(user domain.User, topic *domain.Topic) bool
	HasPermissionFunc func(user domain.User, permission string) bool
}

func (mock *authorizerMock) Permitted(user domain.User, topic *domain.Topic) bool {
	if mock.PermittedFunc == nil {
		panic("authorizerMock.PermittedFunc: method is nil but Authorizer.Permitted was just called")
	}
	return mock.PermittedFunc(user, topic)
}

func (mock *authorizerMock) HasPermission(user domain.User, permission string) bool {
	if mock.HasPermissionFunc == nil {
		panic("authorizerMock.HasPermissionFunc: method is nil but Authorizer.HasPermission was just called")
	}
	return mock.HasPermissionFunc(user, permission)
}

var _ Notifier = &notifierMock{}

type notifierMock struct {
	NotifyFunc func(ctx context.Context, n Notification)

	calls struct {
		Notify []struct {
			N Notification
		}
	}
	lockNotify sync.RWMutex
}

func (mock *notifierMock) Notify(ctx context.Context, n Notification) {
	mock.lockNotify.Lock()
	mock.calls.Notify = append(mock.calls.Notify, struct {
		N Notification
	}{N: n})
	mock.lockNotify.Unlock()
	if mock.NotifyFunc != nil {
		mock.NotifyFunc(ctx, n)
	}
}

func (mock *notifierMock) NotifyCalls() []struct {
	N Notification
} {
	mock.lockNotify.RLock()
	calls := mock.calls.Notify
	mock.lockNotify.RUnlock()
	return calls
}

var _ Differ = &differMock{}

type differMock struct {
	DiffFunc func(oldText, newText string) (string, error)
}

func (mock *differMock) Diff(oldText, newText string) (string, error) {
	if mock.DiffFunc == nil {
		panic("differMock.DiffFunc: method is nil but Differ.Diff was just called")
	}
	return mock.DiffFunc(oldText, newText)
}

var _ AttachmentStore = &attachmentStoreMock{}

type attachmentStoreMock struct {
	SaveFunc   func(ctx context.Context, topicLCName, filename string, r io.Reader) error
	DeleteFunc func(ctx context.Context, topicLCName, filename string) error
	ListFunc   func(ctx context.Context, topicLCName string) ([]string, error)

	calls struct {
		Save []struct {
			TopicLCName string
			Filename    string
		}
		Delete []struct {
			TopicLCName string
			Filename    string
		}
		List []struct {
			TopicLCName string
		}
	}
	lockSave   sync.RWMutex
	lockDelete sync.RWMutex
	lockList   sync.RWMutex
}

func (mock *attachmentStoreMock) Save(ctx context.Context, topicLCName, filename string, r io.Reader) error {
	if mock.SaveFunc == nil {
		panic("attachmentStoreMock.SaveFunc: method is nil but AttachmentStore.Save was just called")
	}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, struct {
		TopicLCName string
		Filename    string
	}{TopicLCName: topicLCName, Filename: filename})
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, topicLCName, filename, r)
}

func (mock *attachmentStoreMock) SaveCalls() []struct {
	TopicLCName string
	Filename    string
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

func (mock *attachmentStoreMock) Delete(ctx context.Context, topicLCName, filename string) error {
	if mock.DeleteFunc == nil {
		panic("attachmentStoreMock.DeleteFunc: method is nil but AttachmentStore.Delete was just called")
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		TopicLCName string
		Filename    string
	}{TopicLCName: topicLCName, Filename: filename})
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, topicLCName, filename)
}

func (mock *attachmentStoreMock) DeleteCalls() []struct {
	TopicLCName string
	Filename    string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *attachmentStoreMock) List(ctx context.Context, topicLCName string) ([]string, error) {
	if mock.ListFunc == nil {
		panic("attachmentStoreMock.ListFunc: method is nil but AttachmentStore.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		TopicLCName string
	}{TopicLCName: topicLCName})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, topicLCName)
}

func (mock *attachmentStoreMock) ListCalls() []struct {
	TopicLCName string
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
