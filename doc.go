// Package zwutil provides error-code plumbing for firmware-style code:
// scoped release of acquired resources, a value-or-error Result, and small
// helpers that turn "run, clean up, propagate" into one statement.
//
// # Codes and errors
//
// A Code is an integer status; OK (0) means success and is never stored in
// an Error. Error carries a non-OK code and an optional message and
// implements error. Status is the payload-free outcome, Result[T] the one
// with a payload:
//
//	func readConfig() zwutil.Result[Config] {
//	    raw, err := os.ReadFile(path)
//	    if err != nil {
//	        return zwutil.MakeErrorf[Config](zwutil.CodeNotFound, "read %s: %v", path, err)
//	    }
//	    return zwutil.MakeValue(parse(raw))
//	}
//
// Reading the value of a failed Result with Unwrap panics; Get returns the
// failure alongside the zero value instead.
//
// # Scoped release
//
// Guard and Resource tie a release action to a scope through defer. The
// action runs once, in reverse order of acquisition for nested scopes, and
// is skipped for anything handed off with Disarm, Drop, Swap or Move:
//
//	r := zwutil.NewResource(openHandle(), closeHandle)
//	defer r.Close()
//
// # Propagation
//
//	if rc := zwutil.ReturnOnError(step(), unlock, markFailed); rc != zwutil.OK {
//	    return rc
//	}
//
//	var cfg Config
//	if rc := zwutil.AssignOrReturn(&cfg, readConfig()); rc != zwutil.OK {
//	    return rc
//	}
//
// Nothing in this package logs unless a logger is installed with SetLogger.
//
// # Thread Safety
//
// Guard, Resource and Result do no locking. CodeRegistry and SetLogger are
// safe for concurrent use.
package zwutil
