package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"maps"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"castingagency/internal/data"
)

// memStore is an in-memory stand-in for ActorModel and MovieModel.
type memStore[T any] struct {
	mu        sync.Mutex
	records   map[int]T
	nextID    int
	mutations int
	err       error // returned by every call when set

	getID func(*T) int
	setID func(*T, int)
}

func newMemStore[T any](getID func(*T) int, setID func(*T, int)) *memStore[T] {
	return &memStore[T]{records: make(map[int]T), getID: getID, setID: setID}
}

func newActorStore() *memStore[data.Actor] {
	return newMemStore(
		func(a *data.Actor) int { return a.ID },
		func(a *data.Actor, id int) { a.ID = id },
	)
}

func newMovieStore() *memStore[data.Movie] {
	return newMemStore(
		func(m *data.Movie) int { return m.ID },
		func(m *data.Movie, id int) { m.ID = id },
	)
}

func (s *memStore[T]) Insert(ctx context.Context, record *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return s.err
	}

	s.nextID++
	s.setID(record, s.nextID)
	s.records[s.nextID] = *record
	s.mutations++
	return nil
}

func (s *memStore[T]) Get(ctx context.Context, id int) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}

	record, ok := s.records[id]
	if !ok {
		return nil, data.ErrRecordNotFound
	}
	return &record, nil
}

func (s *memStore[T]) GetAll(ctx context.Context) ([]*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}

	list := []*T{}
	for _, id := range slices.Sorted(maps.Keys(s.records)) {
		record := s.records[id]
		list = append(list, &record)
	}
	return list, nil
}

func (s *memStore[T]) Update(ctx context.Context, record *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return s.err
	}

	id := s.getID(record)
	if _, ok := s.records[id]; !ok {
		return data.ErrRecordNotFound
	}
	s.records[id] = *record
	s.mutations++
	return nil
}

func (s *memStore[T]) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return s.err
	}

	if _, ok := s.records[id]; !ok {
		return data.ErrRecordNotFound
	}
	delete(s.records, id)
	s.mutations++
	return nil
}

func (s *memStore[T]) seed(records ...T) {
	for _, record := range records {
		s.Insert(context.Background(), &record)
	}
	s.mu.Lock()
	s.mutations = 0
	s.mu.Unlock()
}

func (s *memStore[T]) mutationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mutations
}

type testApp struct {
	*application
	actors *memStore[data.Actor]
	movies *memStore[data.Movie]
}

func newTestApplication(t *testing.T, cfg config) testApp {
	t.Helper()

	actors := newActorStore()
	movies := newMovieStore()

	app := &application{
		config: cfg,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		models: data.Models{Actors: actors, Movies: movies},
	}

	return testApp{application: app, actors: actors, movies: movies}
}

type response struct {
	status  int
	headers http.Header
	body    map[string]any
}

// do sends a request through the full middleware chain and decodes the JSON body.
func (ta testApp) do(t *testing.T, method, path, body string, headers map[string]string) response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	rr := httptest.NewRecorder()
	ta.routes().ServeHTTP(rr, req)

	res := response{status: rr.Code, headers: rr.Header()}

	if rr.Body.Len() > 0 {
		err := json.Unmarshal(rr.Body.Bytes(), &res.body)
		if err != nil {
			t.Fatalf("%s %s: decoding body %q: %v", method, path, rr.Body.String(), err)
		}
	}

	return res
}

func errorBody(status int, message string) map[string]any {
	return map[string]any{
		"success": false,
		"error":   float64(status),
		"message": message,
	}
}

var releasedAt = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
