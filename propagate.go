package zwutil

// The helpers below replace hand-written "check, clean up, propagate"
// branches. Each takes the code of an operation that has already run, so Go's
// argument evaluation order gives the fixed sequence:
//
//	operation -> cleanup (always) -> onError (failure only) -> exit
//
// cleanup and onError may be nil.

// ReturnOnError runs cleanup, then onError if code is not OK, and returns
// code for the caller to propagate:
//
//	if rc := zwutil.ReturnOnError(start(timer), disarm, markFailed); rc != zwutil.OK {
//		return rc
//	}
func ReturnOnError(code Code, cleanup, onError func()) Code {
	if !settle(code, cleanup, onError) {
		tracePropagation(code, 1)
	}
	return code
}

// BreakOnError is ReturnOnError for loops: it reports whether the caller
// should stop iterating.
//
//	for {
//		if zwutil.BreakOnError(drainOne(q), nil, nil) {
//			break
//		}
//	}
func BreakOnError(code Code, cleanup, onError func()) bool {
	if settle(code, cleanup, onError) {
		return false
	}
	tracePropagation(code, 1)
	return true
}

// GotoOnError runs cleanup and reports whether code failed, for call sites
// that funnel several steps into one teardown label:
//
//	if zwutil.GotoOnError(step1(), nil) {
//		goto failed
//	}
func GotoOnError(code Code, cleanup func()) bool {
	if settle(code, cleanup, nil) {
		return false
	}
	tracePropagation(code, 1)
	return true
}

// Sequence runs steps in order until one fails, then passes the outcome
// (OK if every step succeeded) to teardown and returns teardown's code. A nil
// teardown returns the outcome unchanged. It is the structured form of
// several GotoOnError calls sharing one label.
func Sequence(teardown func(Code) Code, steps ...func() Code) Code {
	rc := OK
	for _, step := range steps {
		if rc = step(); rc != OK {
			tracePropagation(rc, 1)
			break
		}
	}
	if teardown == nil {
		return rc
	}
	return teardown(rc)
}

// AssignOrReturn moves the value of r into dest and returns OK, or returns
// r's failure code and leaves dest untouched:
//
//	var cfg Config
//	if rc := zwutil.AssignOrReturn(&cfg, loadConfig()); rc != zwutil.OK {
//		return rc
//	}
func AssignOrReturn[T any](dest *T, r Result[T]) Code {
	if !r.ok {
		code := r.ErrorCode()
		tracePropagation(code, 1)
		return code
	}
	*dest = r.value
	return OK
}

// settle runs cleanup and, on failure, onError. It reports whether code is OK.
func settle(code Code, cleanup, onError func()) bool {
	if cleanup != nil {
		cleanup()
	}
	if code == OK {
		return true
	}
	if onError != nil {
		onError()
	}
	return false
}
