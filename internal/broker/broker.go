package broker

import "sync"

// Broker is a minimal in-process pub/sub: one buffered channel per topic,
// created lazily by the first publisher or subscriber.
type Broker[T any] struct {
	mu          sync.RWMutex
	topics      map[string]chan T
	maxSizeChan uint
}

func New[T any](maxCountMsgInTopic uint) *Broker[T] {
	return &Broker[T]{
		topics:      make(map[string]chan T),
		maxSizeChan: maxCountMsgInTopic,
	}
}

func (b *Broker[T]) topic(name string) chan T {
	b.mu.RLock()
	ch, ok := b.topics[name]
	b.mu.RUnlock()
	if ok {
		return ch
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if ch, ok := b.topics[name]; ok {
		return ch
	}
	ch = make(chan T, b.maxSizeChan)
	b.topics[name] = ch
	return ch
}

// Publish puts msg on the topic buffer and reports whether it was accepted.
// A full buffer drops the message rather than blocking the publisher; live
// pushes are best-effort, the history store is the source of truth.
func (b *Broker[T]) Publish(topic string, msg T) bool {
	select {
	case b.topic(topic) <- msg:
		return true
	default:
		return false
	}
}

func (b *Broker[T]) Subscribe(topic string) <-chan T {
	return b.topic(topic)
}

// CloseTopic closes the topic channel so subscribers ranging over it exit.
// Meant for shutdown; publishing to the topic afterwards recreates it.
func (b *Broker[T]) CloseTopic(topic string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.topics[topic]; ok {
		close(ch)
	}
	delete(b.topics, topic)
}
