package event

// Context represents the context of an event. Handlers may cancel the event
// through the Context before it takes effect.
type Context[T any] struct {
	cancel bool
	val    T
}

// C returns a new event context with a value attached, usable to cancel the
// event it is created for.
func C[T any](v T) *Context[T] {
	return &Context[T]{val: v}
}

// Val returns the value attached to the Context.
func (ctx *Context[T]) Val() T {
	return ctx.val
}

// Cancelled returns whether the Context has been cancelled.
func (ctx *Context[T]) Cancelled() bool {
	return ctx.cancel
}

// Cancel cancels the Context.
func (ctx *Context[T]) Cancel() {
	ctx.cancel = true
}
