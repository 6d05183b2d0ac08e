package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"sunlight-vm-backend/internal/domain"
)

func unit(id, name string) domain.Unit {
	return domain.Unit{ID: id, Name: name, Category: domain.UnitCategoryChalet}
}

func TestCollection_InsertHeadAndSnapshot(t *testing.T) {
	var c Collection[domain.Unit]
	c.InsertHead(unit("u1", "Palm Chalet"))
	c.InsertHead(unit("u2", "Sea Villa"))

	snap := c.Snapshot()
	assert.Len(t, snap, 2)
	assert.Equal(t, "u2", snap[0].ID, "newest entry sits at the head")

	// The snapshot is a copy; mutating it leaves the collection alone.
	snap[0].Name = "changed"
	got, ok := c.Get("u2")
	assert.True(t, ok)
	assert.Equal(t, "Sea Villa", got.Name)
}

func TestCollection_RemoveAndInsertAtRestoresPosition(t *testing.T) {
	var c Collection[domain.Unit]
	c.Reset([]domain.Unit{unit("u3", "c"), unit("u2", "b"), unit("u1", "a")})

	removed, idx, ok := c.Remove("u2")
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, "b", removed.Name)
	assert.Equal(t, 2, c.Len())

	c.InsertAt(idx, removed)
	snap := c.Snapshot()
	assert.Equal(t, []string{"u3", "u2", "u1"}, []string{snap[0].ID, snap[1].ID, snap[2].ID})
}

func TestCollection_RemoveMissing(t *testing.T) {
	var c Collection[domain.Unit]
	c.Reset([]domain.Unit{unit("u1", "a")})

	_, _, ok := c.Remove("nope")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())
}

func TestCollection_Replace(t *testing.T) {
	var c Collection[domain.Unit]
	c.Reset([]domain.Unit{unit("u1", "a"), unit("u2", "b")})

	prev, ok := c.Replace(unit("u2", "renamed"))
	assert.True(t, ok)
	assert.Equal(t, "b", prev.Name)

	got, _ := c.Get("u2")
	assert.Equal(t, "renamed", got.Name)

	_, ok = c.Replace(unit("u9", "ghost"))
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestCollection_RemoveWhere(t *testing.T) {
	var c Collection[domain.Expense]
	c.Reset([]domain.Expense{
		{ID: "e1", UnitID: "u1"},
		{ID: "e2", UnitID: "u2"},
		{ID: "e3", UnitID: "u1"},
	})

	removed := c.RemoveWhere(func(e domain.Expense) bool { return e.UnitID == "u1" })
	assert.Len(t, removed, 2)
	assert.Equal(t, "e1", removed[0].ID)
	assert.Equal(t, "e3", removed[1].ID)
	assert.Equal(t, 1, c.Len())
}

func TestCollection_ResetRestoresWholesale(t *testing.T) {
	var c Collection[domain.Expense]
	orig := []domain.Expense{{ID: "e1"}, {ID: "e2"}}
	c.Reset(orig)

	c.RemoveWhere(func(domain.Expense) bool { return true })
	assert.Equal(t, 0, c.Len())

	c.Reset(orig)
	snap := c.Snapshot()
	assert.Len(t, snap, 2)
	assert.Equal(t, "e1", snap[0].ID)
}

// Readers must be able to observe the collection while a mutation holds the
// operation lock, which is the in-flight window of a remote call.
func TestCollection_ReadableDuringMutation(t *testing.T) {
	var c Collection[domain.Unit]
	c.Reset([]domain.Unit{unit("u1", "a")})

	c.BeginMutation()
	defer c.EndMutation()

	c.InsertHead(unit("u2", "optimistic"))

	done := make(chan struct{})
	go func() {
		defer close(done)
		snap := c.Snapshot()
		assert.Len(t, snap, 2)
		assert.Equal(t, "u2", snap[0].ID)
	}()
	<-done
}

func TestCollection_ConcurrentMutationsSerialize(t *testing.T) {
	var c Collection[domain.Unit]

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			c.BeginMutation()
			defer c.EndMutation()
			c.InsertHead(unit(string(rune('a'+n%26))+"-id", "x"))
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, c.Len())
}

func TestManager(t *testing.T) {
	m := NewManager()
	st := NewStore("sess-1", "user-1")

	m.Put(st)
	got, ok := m.Get("sess-1")
	assert.True(t, ok)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, 1, m.Count())

	m.Remove("sess-1")
	_, ok = m.Get("sess-1")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Count())
}
