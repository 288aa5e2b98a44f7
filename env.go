package main

// Env is the mutable variable table shared by every script a node runs.
// One instance per engine; it is not safe for concurrent use and must not
// be shared between node instances.
type Env map[string]float64

func CreateEnv() Env {
	return make(Env, 32)
}

func (env Env) Set(name string, value float64) {
	env[name] = value
}

// Get returns the bound value, or def when the name was never written.
// Unknown reads defaulting instead of failing matches how scripts probe
// host-seeded context variables.
func (env Env) Get(name string, def float64) float64 {
	if v, ok := env[name]; ok {
		return v
	}
	return def
}

func (env Env) Has(name string) bool {
	_, ok := env[name]
	return ok
}

func (env Env) Clear() {
	for name := range env {
		delete(env, name)
	}
}

// Snapshot copies the current bindings, e.g. to seed a per-worker
// environment from frame-level state.
func (env Env) Snapshot() Env {
	out := make(Env, len(env))
	for name, value := range env {
		out[name] = value
	}
	return out
}
