package notify

// queueItem pairs a pending notification with its requested channel set.
type queueItem struct {
	n        Notification
	channels []Channel
}

// priorityQueue holds admitted notifications pending dispatch, ordered by
// priority then arrival. Not safe for concurrent use; the engine mutex
// guards it.
type priorityQueue struct {
	items []queueItem
}

// enqueue inserts before the first item with strictly lower priority, which
// yields FIFO ordering within equal priority by construction.
func (q *priorityQueue) enqueue(item queueItem) {
	pos := len(q.items)
	for i, existing := range q.items {
		if existing.n.Priority.rank() < item.n.Priority.rank() {
			pos = i
			break
		}
	}
	q.items = append(q.items, queueItem{})
	copy(q.items[pos+1:], q.items[pos:])
	q.items[pos] = item
}

// dequeue removes and returns the highest-priority item.
func (q *priorityQueue) dequeue() (queueItem, bool) {
	if len(q.items) == 0 {
		return queueItem{}, false
	}
	item := q.items[0]
	q.items[0] = queueItem{}
	q.items = q.items[1:]
	return item, true
}

func (q *priorityQueue) len() int {
	return len(q.items)
}
