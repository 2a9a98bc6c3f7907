// Package settings resolves site-wide configuration from the database with a
// built-in default for every known key, so public pages render even when the
// store is down or a deployment has never been seeded.
package settings

import (
	"sort"
	"sync"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tripveda/tripveda/internal/domain"
	"github.com/tripveda/tripveda/pkg/common"
)

// State is the resolver lifecycle. Reads before Init finishes serve defaults.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReadyStore    // values loaded from the database
	StateReadyDefaults // store unreachable, serving built-in defaults
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReadyStore:
		return "ready"
	case StateReadyDefaults:
		return "ready-defaults"
	default:
		return "uninitialized"
	}
}

// Repository abstracts the sys_config rows the resolver reads and writes.
type Repository interface {
	LoadAll() (map[string]string, error)
	Save(name, value string) error
}

// GormRepository stores settings as sys_config rows under the site category.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) LoadAll() (map[string]string, error) {
	var rows []domain.SysConfig
	if err := r.db.Where("type = ?", TypeSite).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "load site settings")
	}
	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.Name] = row.Value
	}
	return values, nil
}

func (r *GormRepository) Save(name, value string) error {
	var row domain.SysConfig
	err := r.db.Where("type = ? and name = ?", TypeSite, name).First(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		row = domain.SysConfig{Type: TypeSite, Name: name, Value: value}
		return errors.Wrapf(r.db.Create(&row).Error, "create setting %s", name)
	case err != nil:
		return errors.Wrapf(err, "query setting %s", name)
	default:
		return errors.Wrapf(r.db.Model(&row).Update("value", value).Error,
			"update setting %s", name)
	}
}

// KeyError pairs a failed key with its error message.
type KeyError struct {
	Key   string `json:"key"`
	Error string `json:"error"`
}

// BatchResult reports a batch save. Keys are processed in sorted order and the
// batch aborts on the first failure, so Skipped holds everything after it.
type BatchResult struct {
	Succeeded []string   `json:"succeeded"`
	Failed    []KeyError `json:"failed"`
	Skipped   []string   `json:"skipped"`
}

// Manager caches resolved settings and writes through to the repository.
type Manager struct {
	mu     sync.RWMutex
	state  State
	values map[string]string
	repo   Repository
	log    *zap.Logger
}

func NewManager(repo Repository, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		state:  StateUninitialized,
		values: map[string]string{},
		repo:   repo,
		log:    log,
	}
}

// Init loads settings from the repository. On failure it degrades to the
// built-in defaults instead of blocking startup.
func (m *Manager) Init() {
	m.mu.Lock()
	m.state = StateLoading
	m.mu.Unlock()

	stored, err := m.repo.LoadAll()

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.log.Error("settings load failed, serving defaults", zap.Error(err))
		m.values = map[string]string{}
		m.state = StateReadyDefaults
		return
	}
	m.values = stored
	m.state = StateReadyStore
	m.log.Info("settings loaded", zap.Int("stored_keys", len(stored)))
}

// Refresh re-reads the store. A failed refresh keeps the current cache.
func (m *Manager) Refresh() error {
	stored, err := m.repo.LoadAll()
	if err != nil {
		m.log.Error("settings refresh failed", zap.Error(err))
		return err
	}
	m.mu.Lock()
	m.values = stored
	m.state = StateReadyStore
	m.mu.Unlock()
	return nil
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// GetString resolves a key, falling back to the built-in default. Unknown keys
// resolve to the empty string.
func (m *Manager) GetString(name string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state == StateReadyStore {
		if v, ok := m.values[name]; ok {
			return v
		}
	}
	return Defaults[name]
}

// GetBool resolves a key as a boolean. "enabled" counts as true alongside the
// usual spellings.
func (m *Manager) GetBool(name string) bool {
	v := m.GetString(name)
	if v == common.ENABLED {
		return true
	}
	return cast.ToBool(v)
}

// All returns the merged view of every known key plus any extra stored rows.
func (m *Manager) All() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	merged := make(map[string]string, len(Defaults)+len(m.values))
	for k, v := range Defaults {
		merged[k] = v
	}
	if m.state == StateReadyStore {
		for k, v := range m.values {
			merged[k] = v
		}
	}
	return merged
}

// Site returns the typed public view of the merged settings.
func (m *Manager) Site() SiteSettings {
	var site SiteSettings
	all := m.All()
	input := make(map[string]interface{}, len(all))
	for k, v := range all {
		input[k] = v
	}
	if err := mapstructure.Decode(input, &site); err != nil {
		m.log.Error("decode site settings", zap.Error(err))
	}
	return site
}

// Save writes one key through to the store and updates the cache only after
// the write succeeds.
func (m *Manager) Save(name, value string) error {
	if name == "" {
		return errors.New("setting name is empty")
	}
	if err := m.repo.Save(name, value); err != nil {
		return err
	}
	m.mu.Lock()
	m.values[name] = value
	if m.state != StateReadyStore {
		m.state = StateReadyStore
	}
	m.mu.Unlock()
	return nil
}

// SaveBatch saves multiple keys in deterministic (sorted) order, stopping at
// the first failure. Keys after the failure are reported as skipped and the
// cache only reflects the writes that succeeded.
func (m *Manager) SaveBatch(updates map[string]string) BatchResult {
	keys := make([]string, 0, len(updates))
	for k := range updates {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var result BatchResult
	result.Succeeded = []string{}
	result.Failed = []KeyError{}
	result.Skipped = []string{}

	for i, key := range keys {
		if err := m.Save(key, updates[key]); err != nil {
			m.log.Error("batch save aborted",
				zap.String("key", key), zap.Error(err))
			result.Failed = append(result.Failed, KeyError{Key: key, Error: err.Error()})
			result.Skipped = append(result.Skipped, keys[i+1:]...)
			return result
		}
		result.Succeeded = append(result.Succeeded, key)
	}
	return result
}
