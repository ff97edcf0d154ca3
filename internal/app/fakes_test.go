package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"smart_travel/internal/domain"
)

// ---- fakes ----

type fakeWiki struct {
	mu       sync.Mutex
	images   map[string]string // place name -> image
	category map[string][]domain.Place
	calls    int32
	catCalls int32

	delay    time.Duration
	inFlight int32
	peak     int32
}

func (f *fakeWiki) LookupImage(ctx context.Context, name, region string) (string, bool) {
	atomic.AddInt32(&f.calls, 1)
	n := atomic.AddInt32(&f.inFlight, 1)
	defer atomic.AddInt32(&f.inFlight, -1)
	for {
		p := atomic.LoadInt32(&f.peak)
		if n <= p || atomic.CompareAndSwapInt32(&f.peak, p, n) {
			break
		}
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	img, ok := f.images[name]
	return img, ok
}

func (f *fakeWiki) LookupCategory(ctx context.Context, region string) []domain.Place {
	atomic.AddInt32(&f.catCalls, 1)
	ps := f.category[region]
	out := make([]domain.Place, len(ps))
	copy(out, ps)
	if len(out) == 0 {
		return nil
	}
	return out
}

type fakeOracle struct {
	reply   string
	replies []string // consumed in order, then reply
	calls   int32
	prompts []string
	mu      sync.Mutex
}

func (f *fakeOracle) Complete(ctx context.Context, prompt string) any {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.prompts = append(f.prompts, prompt)
	text := f.reply
	if len(f.replies) > 0 {
		text, f.replies = f.replies[0], f.replies[1:]
	}
	if text == "" {
		return nil
	}
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil
	}
	return v
}

type fakeCache struct {
	mu    sync.Mutex
	store map[string][]byte
	sets  int
	fail  bool
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return false, errors.New("cache down")
	}
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return errors.New("cache down")
	}
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	c.sets++
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.store, key)
	return nil
}

func activities(d domain.Day) []domain.Activity {
	out := make([]domain.Activity, 0, len(d.Activities))
	for _, k := range d.SlotKeys() {
		out = append(out, d.Activities[k])
	}
	return out
}

func day(n int, costs ...int) domain.Day {
	d := domain.Day{Day: n, Title: "Test", Activities: map[string]domain.Activity{}}
	for i, c := range costs {
		d.Activities[domain.Slots[i]] = domain.Activity{Name: "Place " + domain.Slots[i], Cost: c, Insight: "original"}
	}
	return d
}
