// Package testutil содержит подделки платформенного слоя для тестов ядра.
package testutil

import (
	"go-sea-battle/internal/component"
	"go-sea-battle/internal/interfaces"
	"go-sea-battle/internal/types"
	"sync"
)

// FakeModels — ModelProvider, которым управляет тест.
// При Immediate модели отдаются сразу, иначе ждут Deliver или Fail.
type FakeModels struct {
	Immediate bool

	mu       sync.Mutex
	requests map[string][]chan component.Model
	Clones   int
}

func NewFakeModels(immediate bool) *FakeModels {
	return &FakeModels{Immediate: immediate, requests: make(map[string][]chan component.Model)}
}

func (f *FakeModels) LoadModel(id string) <-chan component.Model {
	ch := make(chan component.Model, 1)
	if f.Immediate {
		ch <- id
		return ch
	}
	f.mu.Lock()
	f.requests[id] = append(f.requests[id], ch)
	f.mu.Unlock()
	return ch
}

func (f *FakeModels) Clone(model component.Model) component.Model {
	f.mu.Lock()
	f.Clones++
	f.mu.Unlock()
	return model
}

// Deliver завершает все ожидающие загрузки id.
func (f *FakeModels) Deliver(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ch := range f.requests[id] {
		ch <- id
	}
	delete(f.requests, id)
}

// Fail закрывает ожидающие загрузки id без результата.
func (f *FakeModels) Fail(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ch := range f.requests[id] {
		close(ch)
	}
	delete(f.requests, id)
}

// RecordingScene запоминает подключённые модели и последний снимок.
type RecordingScene struct {
	Attached map[types.EntityID]interfaces.Visual
	Detached []interfaces.Visual
	Renders  int
	Last     *interfaces.Snapshot
}

func NewRecordingScene() *RecordingScene {
	return &RecordingScene{Attached: make(map[types.EntityID]interfaces.Visual)}
}

func (s *RecordingScene) Attach(v interfaces.Visual, _ component.Transform) {
	s.Attached[v.ID] = v
}

func (s *RecordingScene) Detach(v interfaces.Visual) {
	delete(s.Attached, v.ID)
	s.Detached = append(s.Detached, v)
}

func (s *RecordingScene) Render(snapshot *interfaces.Snapshot) {
	s.Renders++
	s.Last = snapshot
}

// SnapshotRecorder — SnapshotSink, сохраняющий все снимки.
type SnapshotRecorder struct {
	Snapshots []*interfaces.Snapshot
}

func (r *SnapshotRecorder) Publish(snapshot *interfaces.Snapshot) {
	r.Snapshots = append(r.Snapshots, snapshot)
}
