package main

type KeyMap map[string]func()

func CreateKeyMap() KeyMap {
	return KeyMap{}
}

func (km KeyMap) Bind(key string, handler func()) {
	km[key] = handler
}

func (km KeyMap) HandleKey(key string) bool {
	if handler, ok := km[key]; ok {
		handler()
		return true
	}
	return false
}
