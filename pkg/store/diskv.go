// Package store persists schedule events on disk. It is the collaborator
// that owns create/update/delete; the calendar core only ever reads the
// collections it hands out.
package store

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/bakeplan/pkg/event"
)

// Persistence defines the persistence contract for schedule events.
type Persistence interface {
	List(ctx context.Context) []*event.Event
	Get(ctx context.Context, id string) (*event.Event, error)
	Store(e *event.Event) error
	Delete(id string) error
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// Events are keyed "<yyyy-mm>/<id>" so a month's entries share a directory.
func toKey(e *event.Event) string {
	return e.Start.Local().Format("2006-01") + "/" + e.ID
}

func keyToPathTransform(key string) *diskv.PathKey {
	parts := strings.Split(key, "/")
	last := len(parts) - 1
	return &diskv.PathKey{
		Path:     parts[:last],
		FileName: parts[last] + ".json",
	}
}

func pathToKeyTransform(pk *diskv.PathKey) string {
	name := strings.TrimSuffix(pk.FileName, ".json")
	if len(pk.Path) == 0 {
		return name
	}
	return strings.Join(pk.Path, "/") + "/" + name
}

// EnsureID derives a stable identifier from the event's title and start when
// one was not provided by the source.
func EnsureID(e *event.Event) {
	if e.ID != "" {
		return
	}
	sum := md5.Sum([]byte(e.Title + "|" + e.Start.String()))
	e.ID = fmt.Sprintf("%x", sum[:8])
}

func (p *persistence) read(key string) (*event.Event, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	e := &event.Event{}
	if err := json.Unmarshal(val, e); err != nil {
		return nil, err
	}
	if e.ID == "" {
		pk := keyToPathTransform(key)
		e.ID = strings.TrimSuffix(pk.FileName, ".json")
	}
	e.Normalize()
	return e, nil
}

func (p *persistence) List(ctx context.Context) []*event.Event {
	all := make([]*event.Event, 0)
	for key := range p.d.Keys(ctx.Done()) {
		e, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, e)
	}
	sortEvents(all)
	return all
}

func (p *persistence) Get(ctx context.Context, id string) (*event.Event, error) {
	for key := range p.d.Keys(ctx.Done()) {
		if strings.HasSuffix(key, "/"+id) || key == id {
			return p.read(key)
		}
	}
	return nil, fmt.Errorf("store: no event with id %q", id)
}

func (p *persistence) Store(e *event.Event) error {
	e.Normalize()
	if err := e.Validate(); err != nil {
		return err
	}
	EnsureID(e)
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return p.d.Write(toKey(e), data)
}

func (p *persistence) Delete(id string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	for key := range p.d.Keys(ctx.Done()) {
		if strings.HasSuffix(key, "/"+id) || key == id {
			return p.d.Erase(key)
		}
	}
	return fmt.Errorf("store: no event with id %q", id)
}

func sortEvents(events []*event.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Start.Equal(events[j].Start.Time) {
			return events[i].ID < events[j].ID
		}
		return events[i].Start.Before(events[j].Start.Time)
	})
}
