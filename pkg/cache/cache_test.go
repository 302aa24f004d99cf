package cache

import (
	"errors"
	"sync"
	"testing"
)

func TestSetGet(t *testing.T) {
	c := New[string, int]()

	_, ok := c.Get("nonexistent")
	if ok {
		t.Error("expected ok=false for non-existent key")
	}

	c.Set("key1", 100)
	val, ok := c.Get("key1")
	if !ok {
		t.Error("expected ok=true for existing key")
	}
	if val != 100 {
		t.Errorf("expected value 100, got %d", val)
	}

	c.Set("key1", 200)
	val, _ = c.Get("key1")
	if val != 200 {
		t.Errorf("expected value 200 after overwrite, got %d", val)
	}
	if c.Size() != 1 {
		t.Errorf("expected size 1 after overwrite, got %d", c.Size())
	}
}

func TestDelete(t *testing.T) {
	c := New[string, int]()

	c.Delete("nonexistent")
	c.Set("key1", 100)
	c.Set("key2", 200)

	c.Delete("key1")
	if c.Size() != 1 {
		t.Errorf("expected size 1 after delete, got %d", c.Size())
	}

	if _, ok := c.Get("key1"); ok {
		t.Error("expected key1 to be deleted")
	}

	val, ok := c.Get("key2")
	if !ok || val != 200 {
		t.Error("expected key2 to still exist with value 200")
	}
}

func TestGetOrSet(t *testing.T) {
	c := New[string, int]()

	var calls int
	fn := func() (int, error) {
		calls++
		return 42, nil
	}

	val, err := c.GetOrSet("key", fn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val != 42 {
		t.Errorf("expected 42, got %d", val)
	}

	val, err = c.GetOrSet("key", fn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val != 42 {
		t.Errorf("expected 42 from cache, got %d", val)
	}
	if calls != 1 {
		t.Errorf("expected fn to be called once, got %d", calls)
	}
}

func TestGetOrSetError(t *testing.T) {
	c := New[string, int]()

	wantErr := errors.New("expected testing error")
	_, err := c.GetOrSet("key", func() (int, error) {
		return 0, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected error %v, got %v", wantErr, err)
	}

	if c.Size() != 0 {
		t.Errorf("expected failed fn to leave cache empty, got size %d", c.Size())
	}

	val, err := c.GetOrSet("key", func() (int, error) {
		return 7, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val != 7 {
		t.Errorf("expected retry to store 7, got %d", val)
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New[int, int]()
	var wg sync.WaitGroup
	numGoroutines := 100
	numOperations := 100

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOperations; j++ {
				key := id*numOperations + j
				c.Set(key, key)
			}
		}(i)
	}
	wg.Wait()

	expectedSize := numGoroutines * numOperations
	if c.Size() != expectedSize {
		t.Errorf("expected size %d after concurrent writes, got %d", expectedSize, c.Size())
	}
}
