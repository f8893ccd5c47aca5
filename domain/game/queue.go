package game

import (
	"fmt"

	"github.com/idsulik/go-collections/v3/queue"
)

// PlayerQueue is the turn order. The player at the front is the active one.
type PlayerQueue struct {
	q *queue.Queue[int]
}

// NewPlayerQueue builds the queue 0..count-1 and rotates it until starting
// is at the front.
func NewPlayerQueue(count int, starting int) (*PlayerQueue, error) {
	if count <= 0 {
		return nil, fmt.Errorf("player queue needs at least one player, got %d", count)
	}
	if starting < 0 || starting >= count {
		return nil, fmt.Errorf("starting player %d not in [0, %d)", starting, count)
	}
	pq := &PlayerQueue{q: queue.New[int](count)}
	for i := range count {
		pq.q.Enqueue(i)
	}
	for pq.Current() != starting {
		pq.Cycle()
	}
	return pq, nil
}

// Cycle moves the front player to the back.
func (pq *PlayerQueue) Cycle() {
	if id, ok := pq.q.Dequeue(); ok {
		pq.q.Enqueue(id)
	}
}

// Current returns the id of the active player.
func (pq *PlayerQueue) Current() int {
	return pq.Order()[0]
}

// Order returns the queue from front to back.
func (pq *PlayerQueue) Order() []int {
	order := make([]int, 0, pq.q.Len())
	pq.q.ForEach(func(id int) {
		order = append(order, id)
	})
	return order
}

func (pq *PlayerQueue) Len() int {
	return pq.q.Len()
}
