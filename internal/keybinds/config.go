package keybinds

import "fmt"

// Config represents the user's keybinding configuration.
// Each section maps a key to an action; the action "noop" unbinds the key.
type Config struct {
	Global     map[string]string `json:"global,omitempty" yaml:"global,omitempty"`
	Main       map[string]string `json:"main,omitempty" yaml:"main,omitempty"`
	NewRequest map[string]string `json:"new_request,omitempty" yaml:"new_request,omitempty"`
}

// sections maps each context to its config section
func (c *Config) sections() map[Context]map[string]string {
	return map[Context]map[string]string{
		ContextGlobal:     c.Global,
		ContextMain:       c.Main,
		ContextNewRequest: c.NewRequest,
	}
}

// IsEmpty reports whether the config overrides nothing
func (c *Config) IsEmpty() bool {
	if c == nil {
		return true
	}
	for _, bindings := range c.sections() {
		if len(bindings) > 0 {
			return false
		}
	}
	return true
}

// ApplyConfig applies user configuration to a registry.
// User bindings override default bindings.
func ApplyConfig(registry *Registry, config *Config) error {
	if config == nil {
		return nil
	}

	for _, context := range Contexts {
		for key, actionStr := range config.sections()[context] {
			if err := ValidateKey(key); err != nil {
				return fmt.Errorf("context '%s': %w", context, err)
			}
			action := Action(actionStr)
			if !IsKnownAction(action) {
				return fmt.Errorf("context '%s': unknown action '%s' for key '%s'", context, actionStr, key)
			}
			if action == ActionNoOp {
				registry.Unbind(context, key)
				continue
			}
			registry.Register(context, key, action)
		}
	}

	return nil
}

// LoadOrDefault returns the default registry with the user config applied over it
func LoadOrDefault(config *Config) (*Registry, error) {
	registry := NewDefaultRegistry()
	if err := ApplyConfig(registry, config); err != nil {
		return nil, fmt.Errorf("failed to apply keybinds config: %w", err)
	}
	return registry, nil
}

// ExportConfig exports the registry as a config, useful for showing what can be customized
func ExportConfig(registry *Registry) *Config {
	config := &Config{
		Global:     make(map[string]string),
		Main:       make(map[string]string),
		NewRequest: make(map[string]string),
	}

	for context, section := range config.sections() {
		for _, b := range registry.ListBindings(context) {
			section[b.Key] = string(b.Action)
		}
	}

	return config
}
