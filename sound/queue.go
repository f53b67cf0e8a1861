// This file is part of tiasound.
//
// tiasound is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// tiasound is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with tiasound.  If not, see <https://www.gnu.org/licenses/>.

package sound

// RegWrite is a single timestamped write to a sound register.
type RegWrite struct {
	Addr  uint16
	Value uint8

	// real time in seconds since the previous write. the fragment resampler
	// reduces this value when only part of the delay has been rendered
	Delta float64
}

// DefaultQueueCapacity is the initial capacity of a RegWriteQueue.
const DefaultQueueCapacity = 512

// RegWriteQueue is a first-in first-out queue of register writes. The
// capacity of the queue grows as required and never shrinks.
//
// The queue is not safe for concurrent use.
type RegWriteQueue struct {
	buf  []RegWrite
	head int
	size int
}

// NewRegWriteQueue is the preferred method of initialisation for the
// RegWriteQueue type. A capacity of less than one is replaced by
// DefaultQueueCapacity.
func NewRegWriteQueue(capacity int) *RegWriteQueue {
	if capacity < 1 {
		capacity = DefaultQueueCapacity
	}
	return &RegWriteQueue{
		buf: make([]RegWrite, capacity),
	}
}

// Enqueue adds a write to the end of the queue.
func (q *RegWriteQueue) Enqueue(w RegWrite) {
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.size)%len(q.buf)] = w
	q.size++
}

// double the capacity of the queue. entries are copied in queue order so that
// the head of the queue is at index zero
func (q *RegWriteQueue) grow() {
	n := make([]RegWrite, len(q.buf)*2)
	c := copy(n, q.buf[q.head:])
	copy(n[c:], q.buf[:q.head])
	q.buf = n
	q.head = 0
}

// Dequeue removes the oldest write. Does nothing if the queue is empty.
func (q *RegWriteQueue) Dequeue() {
	if q.size == 0 {
		return
	}
	q.head = (q.head + 1) % len(q.buf)
	q.size--
}

// Front returns the oldest write in the queue. The Delta field of the write
// can be changed through the returned pointer.
//
// Calling Front() on an empty queue is a programming error and will panic.
func (q *RegWriteQueue) Front() *RegWrite {
	if q.size == 0 {
		panic("sound: front of empty register write queue")
	}
	return &q.buf[q.head]
}

// Size returns the number of writes in the queue.
func (q *RegWriteQueue) Size() int {
	return q.size
}

// Capacity returns the number of writes the queue can hold before it needs to
// grow.
func (q *RegWriteQueue) Capacity() int {
	return len(q.buf)
}

// Clear removes all writes from the queue. The capacity is unchanged.
func (q *RegWriteQueue) Clear() {
	q.head = 0
	q.size = 0
}

// Duration is the sum of the Delta field of every write in the queue.
func (q *RegWriteQueue) Duration() float64 {
	var d float64
	for i := 0; i < q.size; i++ {
		d += q.buf[(q.head+i)%len(q.buf)].Delta
	}
	return d
}
