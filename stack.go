// stack.go — opt-in stack capture for xgx-status core.
//
// Uses runtime.Callers + runtime.CallersFrames so inlined frames resolve
// correctly. Stacks are diagnostic only: they render under %+v and are never
// part of the wire form.
package xgxstatus

import "runtime"

// Frame is a single call site in a captured stack.
type Frame struct {
	File     string
	Line     int
	Function string
}

// Stack is a slice of frames from the capture site outward.
type Stack []Frame

// stackMaxDepth bounds capture work on exceptional paths.
const stackMaxDepth = 64

// captureStack records the current stack, skipping 'skip' frames beyond
// this function.
func captureStack(skip int) Stack {
	pcs := make([]uintptr, stackMaxDepth)
	// +2 skips runtime.Callers and captureStack itself.
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])
	out := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{File: fr.File, Line: fr.Line, Function: fr.Function})
		if !more {
			break
		}
	}
	return out
}
