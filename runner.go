package main

// Runner executes scripts against a single shared environment. Parsed
// statement lists are cached by exact source text, so the per-point script
// of a node is lexed and parsed once, not tens of thousands of times per
// second.
type Runner struct {
	env        Env
	cache      map[string][]Expr
	errorCount int
	lastError  error
}

func CreateRunner() *Runner {
	return &Runner{
		env:   CreateEnv(),
		cache: make(map[string][]Expr, 8),
	}
}

// Execute parses (with cache) and runs every statement of script in order.
// All engine errors are absorbed here: a broken script degrades the visual
// output, it never aborts the frame. Execution stops at the first failing
// statement; assignments made by earlier statements stay in effect.
func (r *Runner) Execute(script string) {
	if script == "" {
		return
	}
	stmts, ok := r.cache[script]
	if !ok {
		var err error
		stmts, err = Parse(script)
		if err != nil {
			r.fail(err)
			// cache the failure too, so a broken point script is not
			// re-parsed once per point
			r.cache[script] = nil
			return
		}
		r.cache[script] = stmts
	}
	for _, stmt := range stmts {
		if _, err := evalExpr(stmt, r.env); err != nil {
			r.fail(err)
			return
		}
	}
}

func (r *Runner) fail(err error) {
	r.errorCount++
	r.lastError = err
	logger.Warn("script error", "error", err)
}

func (r *Runner) Set(name string, value float64) {
	r.env.Set(name, value)
}

func (r *Runner) Get(name string, def float64) float64 {
	return r.env.Get(name, def)
}

// ErrorCount reports how many Execute calls have failed since creation or
// the last ResetErrors. Tests and the HUD read this instead of scraping
// the log.
func (r *Runner) ErrorCount() int {
	return r.errorCount
}

func (r *Runner) LastError() error {
	return r.lastError
}

func (r *Runner) ResetErrors() {
	r.errorCount = 0
	r.lastError = nil
}

// InvalidateCache drops the parsed form of a script, e.g. after the user
// edits a preset in place.
func (r *Runner) InvalidateCache(script string) {
	delete(r.cache, script)
}
