package mockserver

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/mmeshcher/rewardful-client/pkg/validation"
)

// Record: запись ресурса в виде дерева JSON.
type Record = map[string]any

// Имена ресурсов совпадают с первым сегментом пути API.
const (
	Affiliates       = "affiliates"
	Campaigns        = "campaigns"
	Commissions      = "commissions"
	Payouts          = "payouts"
	Referrals        = "referrals"
	AffiliateCoupons = "affiliate_coupons"
	AffiliateLinks   = "affiliate_links"
)

var resources = []string{Affiliates, Campaigns, Commissions, Payouts, Referrals, AffiliateCoupons, AffiliateLinks}

// ErrNotFound возвращается, если записи с таким идентификатором нет.
var ErrNotFound = errors.New("record not found")

//go:embed fixtures/rewardful.yaml
var defaultFixtures []byte

type table struct {
	ids  []string
	rows map[string]Record
}

// Store хранит записи фиктивного API в памяти.
type Store struct {
	mu     sync.RWMutex
	tables map[string]*table
}

// NewStore создаёт пустое хранилище.
func NewStore() *Store {
	s := &Store{tables: make(map[string]*table, len(resources))}
	for _, name := range resources {
		s.tables[name] = &table{rows: make(map[string]Record)}
	}
	return s
}

// DefaultStore создаёт хранилище со встроенными исходными данными.
func DefaultStore() (*Store, error) {
	s := NewStore()
	if err := s.Load(defaultFixtures); err != nil {
		return nil, err
	}
	return s, nil
}

// Load добавляет записи из YAML-документа вида {ресурс: [записи]}.
func (s *Store) Load(data []byte) error {
	var doc map[string][]map[string]any
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("decode fixtures: %w", err)
	}

	for resource, items := range doc {
		for i, item := range items {
			tree, err := validation.Normalize(item)
			if err != nil {
				return fmt.Errorf("fixtures %s[%d]: %w", resource, i, err)
			}
			rec, ok := tree.(Record)
			if !ok {
				return fmt.Errorf("fixtures %s[%d]: not an object", resource, i)
			}
			if err := s.Put(resource, rec); err != nil {
				return fmt.Errorf("fixtures %s[%d]: %w", resource, i, err)
			}
		}
	}

	return nil
}

// Put добавляет или заменяет запись. Идентификатор берётся из поля id.
func (s *Store) Put(resource string, rec Record) error {
	id, _ := rec["id"].(string)
	if id == "" {
		return errors.New("record has no id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tables[resource]
	if !ok {
		return fmt.Errorf("unknown resource %q", resource)
	}
	if _, exists := t.rows[id]; !exists {
		t.ids = append(t.ids, id)
	}
	t.rows[id] = clone(rec).(Record)
	return nil
}

// Get возвращает копию записи.
func (s *Store) Get(resource, id string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.tables[resource].rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(rec).(Record), nil
}

// List возвращает копии записей, прошедших фильтр, в порядке добавления.
func (s *Store) List(resource string, keep func(Record) bool) []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t := s.tables[resource]
	out := make([]Record, 0, len(t.ids))
	for _, id := range t.ids {
		rec := t.rows[id]
		if keep == nil || keep(rec) {
			out = append(out, clone(rec).(Record))
		}
	}
	return out
}

// Update изменяет запись под блокировкой и возвращает её копию.
func (s *Store) Update(resource, id string, apply func(Record)) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.tables[resource].rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	apply(rec)
	return clone(rec).(Record), nil
}

// Delete удаляет запись.
func (s *Store) Delete(resource, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.tables[resource]
	if _, ok := t.rows[id]; !ok {
		return ErrNotFound
	}
	delete(t.rows, id)
	for i, existing := range t.ids {
		if existing == id {
			t.ids = append(t.ids[:i], t.ids[i+1:]...)
			break
		}
	}
	return nil
}

func clone(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = clone(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = clone(item)
		}
		return out
	default:
		return v
	}
}
