package event

// Handler Each kind of event has his own handler
// Based on the Chain of responsibility pattern
type Handler interface {
	Handle(event Event)
}

// CountingHandler increments the counter for every event it sees
type CountingHandler struct {
	counter *Counter
}

func NewCountingHandler(counter *Counter) CountingHandler {
	return CountingHandler{counter: counter}
}

func (h CountingHandler) Handle(event Event) {
	h.counter.Increment(event.Type)
}
