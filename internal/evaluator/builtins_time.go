package evaluator

import "time"

// timeNamespace: now() in milliseconds and sleep(ms), the canonical
// suspend-point builtin. sleep returns a promise settled by a timer
// goroutine, so `await time.sleep(10)` suspends the calling strand.
func timeNamespace() *PlainObject {
	return namespace([]namespaceEntry{
		{name: "now", fn: func(e *Evaluator, this Object, args []Object) Object {
			return &Number{Value: float64(time.Now().UnixMilli())}
		}},
		{name: "sleep", fn: func(e *Evaluator, this Object, args []Object) Object {
			ms := ToNumber(argAt(args, 0))
			if ms < 0 {
				ms = 0
			}
			promise := NewPromise()
			go func() {
				timer := time.NewTimer(time.Duration(ms) * time.Millisecond)
				defer timer.Stop()
				select {
				case <-timer.C:
					promise.Resolve(UNDEFINED)
				case <-e.Ctx.Done():
					promise.Reject(&ErrorObject{Kind: "Aborted", Message: e.Ctx.Err().Error()})
				}
			}()
			return promise
		}},
	})
}
