package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/microcosm-cc/bluemonday"
	bolt "go.etcd.io/bbolt"

	"github.com/mmcdole/showcraft/internal/domain"
)

var bucketSeries = []byte("series")

// Entry is a stored series with its catalog id
type Entry struct {
	ID      string        `json:"id"`
	SavedAt int64         `json:"saved_at"` // Unix timestamp
	Series  domain.Series `json:"series"`

	// Markup names the free-text fields an HTML reader would not show
	// literally. The text itself is stored as entered.
	Markup []string `json:"markup,omitempty"`
}

// CatalogStore keeps finalized series in BoltDB.
type CatalogStore struct {
	db     *bolt.DB
	mu     sync.RWMutex // Protects memory cache
	policy *bluemonday.Policy

	// In-memory cache for hot-path reads (promoted on access).
	// In memory-only mode this is the whole catalog.
	cache map[string][]byte

	now func() time.Time
}

// Open opens the catalog in dir. An empty dir keeps everything in memory.
func Open(dir string) (*CatalogStore, error) {
	s := &CatalogStore{
		policy: bluemonday.StrictPolicy(),
		cache:  make(map[string][]byte),
		now:    time.Now,
	}
	if dir == "" {
		// Memory-only mode (no persistence)
		return s, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "catalog.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSeries)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	s.db = db
	return s, nil
}

func (s *CatalogStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save stores series verbatim under a new id
func (s *CatalogStore) Save(series domain.Series) (string, error) {
	entry := Entry{
		ID:      uuid.NewString(),
		SavedAt: s.now().Unix(),
		Series:  series.Clone(),
		Markup:  s.markup(series),
	}
	if err := s.put(entry); err != nil {
		return "", fmt.Errorf("save series %q: %w", series.Title, err)
	}
	return entry.ID, nil
}

// Get returns the stored series for id
func (s *CatalogStore) Get(id string) (domain.Series, error) {
	entry, ok := s.get(id)
	if !ok {
		return domain.Series{}, fmt.Errorf("%w: %s", domain.ErrSeriesNotFound, id)
	}
	return entry.Series, nil
}

// List returns every entry ordered by title, then save time
func (s *CatalogStore) List() ([]Entry, error) {
	entries, err := s.all()
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool {
		ti := strings.ToLower(entries[i].Series.Title)
		tj := strings.ToLower(entries[j].Series.Title)
		if ti != tj {
			return ti < tj
		}
		return entries[i].SavedAt < entries[j].SavedAt
	})
	return entries, nil
}

// Search returns entries whose title fuzzily matches query, best match first
func (s *CatalogStore) Search(query string) ([]Entry, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.List()
	}

	entries, err := s.all()
	if err != nil {
		return nil, err
	}

	titles := make([]string, len(entries))
	for i, e := range entries {
		titles[i] = e.Series.Title
	}

	ranks := fuzzy.RankFindNormalizedFold(query, titles)
	sort.Stable(ranks)

	results := make([]Entry, 0, len(ranks))
	for _, r := range ranks {
		results = append(results, entries[r.OriginalIndex])
	}
	return results, nil
}

// Delete removes id from the catalog
func (s *CatalogStore) Delete(id string) error {
	if _, ok := s.get(id); !ok {
		return fmt.Errorf("%w: %s", domain.ErrSeriesNotFound, id)
	}

	s.mu.Lock()
	delete(s.cache, id)
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSeries).Delete([]byte(id))
	})
}

// markup returns the free-text fields the strict policy would alter. Plain
// text only differs from its sanitized form by escaping.
func (s *CatalogStore) markup(series domain.Series) []string {
	var fields []string
	check := func(name, v string) {
		if s.policy.Sanitize(v) != html.EscapeString(v) {
			fields = append(fields, name)
		}
	}

	check("title", series.Title)
	check("description", series.Description)
	for i, c := range series.Cast {
		check(fmt.Sprintf("cast[%d]", i), c)
	}
	for i, season := range series.Seasons {
		for j, ep := range season.Episodes {
			check(fmt.Sprintf("seasons[%d].episodes[%d].title", i, j), ep.Title)
			check(fmt.Sprintf("seasons[%d].episodes[%d].summary", i, j), ep.Summary)
		}
	}
	return fields
}

// === Generic helpers ===

func (s *CatalogStore) get(id string) (Entry, bool) {
	var entry Entry

	// Check memory cache first
	s.mu.RLock()
	data, ok := s.cache[id]
	s.mu.RUnlock()
	if ok {
		return entry, json.Unmarshal(data, &entry) == nil
	}

	if s.db == nil {
		return entry, false
	}

	s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketSeries).Get([]byte(id)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if data == nil {
		return entry, false
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[id] = data
	s.mu.Unlock()

	return entry, json.Unmarshal(data, &entry) == nil
}

func (s *CatalogStore) put(entry Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cache[entry.ID] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSeries).Put([]byte(entry.ID), data)
	})
}

func (s *CatalogStore) all() ([]Entry, error) {
	var raw [][]byte

	if s.db == nil {
		s.mu.RLock()
		for _, data := range s.cache {
			raw = append(raw, data)
		}
		s.mu.RUnlock()
	} else {
		err := s.db.View(func(tx *bolt.Tx) error {
			return tx.Bucket(bucketSeries).ForEach(func(_, v []byte) error {
				raw = append(raw, append([]byte(nil), v...))
				return nil
			})
		})
		if err != nil {
			return nil, err
		}
	}

	entries := make([]Entry, 0, len(raw))
	var errs []error
	for _, data := range raw {
		var e Entry
		if err := json.Unmarshal(data, &e); err != nil {
			errs = append(errs, err)
			continue
		}
		entries = append(entries, e)
	}
	if len(errs) > 0 {
		return entries, fmt.Errorf("decode catalog entries: %w", errors.Join(errs...))
	}
	return entries, nil
}
